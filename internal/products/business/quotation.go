package business

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"offerte_api/internal/products/models"
)

var ErrNoItems = errors.New("no items provided")

const pctPlaces = 4

type QuotationService struct {
	products *ProductService
	maxItems int
	cdcCost  decimal.Decimal
	log      *zap.Logger
}

func NewQuotationService(products *ProductService, maxItems int, cdcCost float64, log *zap.Logger) *QuotationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotationService{
		products: products,
		maxItems: maxItems,
		cdcCost:  decimal.NewFromFloat(cdcCost),
		log:      log,
	}
}

type quoteItem struct {
	amount   decimal.Decimal
	proposal *float64
}

// Quote prices up to maxItems items. Only SKUs known to the product source produce a
// line; lines follow request order.
func (s *QuotationService) Quote(ctx context.Context, items []models.QuotationItem) (*models.Quotation, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if s.maxItems > 0 && len(items) > s.maxItems {
		s.log.Info("quotation truncated", zap.Int("items", len(items)), zap.Int("max", s.maxItems))
		items = items[:s.maxItems]
	}

	var skus []string
	byKey := make(map[string]quoteItem, len(items))
	for _, it := range items {
		sku := s.products.FormatSKU(it.SKU)
		if sku == "" {
			continue
		}
		amount := decimal.NewFromFloat(it.Amount)
		if !amount.IsPositive() {
			amount = decimal.NewFromInt(1)
		}
		if _, ok := byKey[sku]; !ok {
			skus = append(skus, sku)
		}
		byKey[sku] = quoteItem{amount: amount, proposal: it.Proposal}
	}
	if len(skus) == 0 {
		return nil, ErrNoItems
	}

	records, err := s.products.Lookup(ctx, skus)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*models.ProductRecord, len(records))
	for _, r := range records {
		if r.InProducts {
			found[r.SKU] = r
		}
	}

	var (
		lines                         []models.QuotationLine
		current, proposed             decimal.Decimal
		profit, proposedProfit, count decimal.Decimal
	)
	for _, sku := range skus {
		r, ok := found[sku]
		if !ok {
			continue
		}
		it := byKey[sku]
		line, l := buildLine(r, it)
		lines = append(lines, line)

		amount := it.amount
		current = current.Add(amount.Mul(l.price))
		proposed = proposed.Add(amount.Mul(l.proposal))
		profit = profit.Add(amount.Mul(l.margin))
		proposedProfit = proposedProfit.Add(amount.Mul(l.proposal.Sub(l.cost)))
		count = count.Add(decimal.NewFromInt(1))
	}

	totals := models.QuotationTotals{
		CurrentPrice:     toFloat(current),
		NewPrice:         toFloat(proposed),
		CurrentMarginPct: toFloat(ratio(profit, current)),
		NewMarginPct:     toFloat(ratio(proposedProfit, proposed)),
		CurrentProfit:    toFloat(profit),
		NewProfit:        toFloat(proposedProfit),
		CDC:              toFloat(count.Mul(s.cdcCost)),
		DiscountEuro:     toFloat(current.Sub(proposed)),
		DiscountPct:      toFloat(ratio(current.Sub(proposed), current)),
	}
	s.log.Debug("quotation built", zap.Int("lines", len(lines)), zap.Float64("new_price", totals.NewPrice))

	if lines == nil {
		lines = []models.QuotationLine{}
	}
	return &models.Quotation{Lines: lines, Totals: totals}, nil
}

type lineAmounts struct {
	price, proposal, cost, margin decimal.Decimal
}

func buildLine(r *models.ProductRecord, it quoteItem) (models.QuotationLine, lineAmounts) {
	l := lineAmounts{
		price:  decimal.NewFromFloat(r.Price),
		cost:   decimal.NewFromFloat(r.Cost),
		margin: decimal.NewFromFloat(r.Margin),
	}
	l.proposal = l.price
	if it.proposal != nil {
		l.proposal = decimal.NewFromFloat(*it.proposal)
	}

	return models.QuotationLine{
		SKU:               r.SKU,
		Name:              r.Name,
		SupplierReference: r.SupplierReference,
		Amount:            it.amount.InexactFloat64(),
		Price:             r.Price,
		Discount:          r.Discount,
		DiscountPct:       r.DiscountPct,
		Cost:              r.Cost,
		Margin:            r.Margin,
		MarginPct:         toFloat(ratio(l.margin, l.price)),
		Proposal:          toFloat(l.proposal),
		ProposalMarginPct: toFloat(ratio(l.proposal.Sub(l.cost), l.proposal)),
		ForSale:           YesNo(r.Active),
		OnBE:              YesNo(r.VisibilityBE),
		OnNL:              YesNo(r.VisibilityNL),
		OnCOM:             YesNo(r.VisibilityCOM),
		Ecotax:            r.Ecotax,
		Stock:             r.Stock,
		MSQ:               r.MSQ,
		UOM:               r.UOM,
	}, l
}

// ratio returns num/den, or zero when den is zero.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(pctPlaces).Float64()
	return f
}
