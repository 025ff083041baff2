package models

type QuotationItem struct {
	SKU string `json:"sku"`
	// Amount may be fractional (metres, litres); non-positive amounts count as 1.
	Amount float64 `json:"amount"`
	// Proposal overrides the proposed unit price; the current price is used when nil.
	Proposal *float64 `json:"proposal,omitempty"`
}

type QuotationRequest struct {
	Items []QuotationItem `json:"items"`
}

var QuotationLineColumns = []string{
	"SKU", "Name", "SUPPLIER_REFERENCE", "amount", "Price", "Discount", "Discount%", "Cost",
	"M€", "M%", "Proposal", "M%P", "Voor Sale", "Op BE", "Op NL", "Op COM", "Ecotax",
	"Stock", "MSQ", "UOM",
}

type QuotationLine struct {
	SKU               string
	Name              string
	SupplierReference string
	Amount            float64
	Price             float64
	Discount          float64
	DiscountPct       float64
	Cost              float64
	Margin            float64
	MarginPct         float64
	Proposal          float64
	ProposalMarginPct float64
	ForSale           string
	OnBE              string
	OnNL              string
	OnCOM             string
	Ecotax            float64
	Stock             float64
	MSQ               float64
	UOM               string
}

func (l QuotationLine) MarshalJSON() ([]byte, error) {
	return marshalOrdered(QuotationLineColumns, []interface{}{
		l.SKU, l.Name, l.SupplierReference, l.Amount, l.Price, l.Discount, l.DiscountPct, l.Cost,
		l.Margin, l.MarginPct, l.Proposal, l.ProposalMarginPct, l.ForSale, l.OnBE, l.OnNL, l.OnCOM,
		l.Ecotax, l.Stock, l.MSQ, l.UOM,
	})
}

func (l *QuotationLine) UnmarshalJSON(data []byte) error {
	var out QuotationLine
	err := unmarshalOrdered(data, QuotationLineColumns, []interface{}{
		&out.SKU, &out.Name, &out.SupplierReference, &out.Amount, &out.Price, &out.Discount,
		&out.DiscountPct, &out.Cost, &out.Margin, &out.MarginPct, &out.Proposal,
		&out.ProposalMarginPct, &out.ForSale, &out.OnBE, &out.OnNL, &out.OnCOM, &out.Ecotax,
		&out.Stock, &out.MSQ, &out.UOM,
	})
	if err != nil {
		return err
	}
	*l = out
	return nil
}

type QuotationTotals struct {
	CurrentPrice     float64 `json:"currentPrice"`
	NewPrice         float64 `json:"newPrice"`
	CurrentMarginPct float64 `json:"currentMarginPct"`
	NewMarginPct     float64 `json:"newMarginPct"`
	CurrentProfit    float64 `json:"currentProfit"`
	NewProfit        float64 `json:"newProfit"`
	CDC              float64 `json:"cdc"`
	DiscountEuro     float64 `json:"discountEuro"`
	DiscountPct      float64 `json:"discountPct"`
}

type Quotation struct {
	Lines  []QuotationLine `json:"products"`
	Totals QuotationTotals `json:"totals"`
}
