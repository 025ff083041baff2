package business

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"offerte_api/internal/products/models"
)

var ErrNoSKUs = errors.New("no SKUs provided")

// LookupSession is one request's view of the three product sources.
type LookupSession interface {
	Products(ctx context.Context, skus []string) ([]models.ProductRow, error)
	Stocks(ctx context.Context, skus []string) ([]models.StockRow, error)
	SalesUnits(ctx context.Context, skus []string) ([]models.SalesUnitRow, error)
	Close() error
}

type SessionOpener interface {
	Open(ctx context.Context) (LookupSession, error)
}

type OpenerFunc func(ctx context.Context) (LookupSession, error)

func (f OpenerFunc) Open(ctx context.Context) (LookupSession, error) {
	return f(ctx)
}

type ProductService struct {
	opener   SessionOpener
	skuWidth int
	log      *zap.Logger
}

func NewProductService(opener SessionOpener, skuWidth int, log *zap.Logger) *ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{opener: opener, skuWidth: skuWidth, log: log}
}

// ParseSKUs normalises the raw query parameter and fails with ErrNoSKUs when nothing is left.
func (s *ProductService) ParseSKUs(raw string) ([]string, error) {
	skus := ParseSKUs(raw, s.skuWidth)
	if len(skus) == 0 {
		return nil, ErrNoSKUs
	}
	return skus, nil
}

func (s *ProductService) FormatSKU(sku string) string {
	return FormatSKU(sku, s.skuWidth)
}

// Lookup queries the three sources on one session and merges the rows by SKU.
func (s *ProductService) Lookup(ctx context.Context, skus []string) ([]*models.ProductRecord, error) {
	if len(skus) == 0 {
		return nil, ErrNoSKUs
	}

	session, err := s.opener.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open lookup session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			s.log.Warn("failed to release lookup session", zap.Error(err))
		}
	}()

	products, err := session.Products(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}
	stocks, err := session.Stocks(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("lookup stock: %w", err)
	}
	units, err := session.SalesUnits(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("lookup sales units: %w", err)
	}

	records := Merge(products, stocks, units)
	s.log.Debug("products merged",
		zap.Int("requested", len(skus)),
		zap.Int("products", len(products)),
		zap.Int("stock", len(stocks)),
		zap.Int("sales_units", len(units)),
		zap.Int("records", len(records)),
	)
	return records, nil
}

// Display parses raw, looks the SKUs up and projects the result for the API.
func (s *ProductService) Display(ctx context.Context, raw string) ([]models.DisplayRecord, error) {
	skus, err := s.ParseSKUs(raw)
	if err != nil {
		return nil, err
	}
	records, err := s.Lookup(ctx, skus)
	if err != nil {
		return nil, err
	}
	return ProjectAll(records), nil
}

// Merge joins the three result sets by SKU. A record is created the first time its SKU
// shows up in any source, so output order is primary rows first, then stock-only, then
// sales-unit-only SKUs. Later rows for the same SKU and source overwrite earlier ones.
func Merge(products []models.ProductRow, stocks []models.StockRow, units []models.SalesUnitRow) []*models.ProductRecord {
	index := make(map[string]*models.ProductRecord)
	var ordered []*models.ProductRecord
	get := func(sku string) *models.ProductRecord {
		if r, ok := index[sku]; ok {
			return r
		}
		r := &models.ProductRecord{SKU: sku}
		index[sku] = r
		ordered = append(ordered, r)
		return r
	}

	for _, p := range products {
		r := get(p.SKU)
		r.InProducts = true
		r.SupplierReference = p.SupplierReference.String
		r.Name = p.Name.String
		r.Price = p.Price.Float64
		r.Discount = p.Discount.Float64
		r.DiscountPct = p.DiscountPct.Float64
		r.Ecotax = p.Ecotax.Float64
		r.Cost = p.Cost.Float64
		r.Margin = p.Margin.Float64
		r.MarginPct = p.MarginPct.Float64
		r.Active = p.Active
		r.VisibilityBE = p.VisibilityBE
		r.VisibilityNL = p.VisibilityNL
		r.VisibilityCOM = p.VisibilityCOM
	}
	for _, st := range stocks {
		r := get(st.SKU)
		r.InStock = true
		r.Stock = st.Stock.Float64
	}
	for _, u := range units {
		r := get(u.SKU)
		r.InSalesUnits = true
		r.MSQ = u.SalesQuantity.Float64
		r.UOM = u.UOM.String
	}
	return ordered
}
