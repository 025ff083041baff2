package business

import (
	"database/sql"

	"offerte_api/internal/products/models"
)

// YesNo maps a boolean-like integer flag: only 1 is "Yes", anything else (NULL included) is "No".
func YesNo(flag sql.NullInt64) string {
	if flag.Valid && flag.Int64 == 1 {
		return "Yes"
	}
	return "No"
}

func Project(r *models.ProductRecord) models.DisplayRecord {
	return models.DisplayRecord{
		SKU:               r.SKU,
		Name:              r.Name,
		Price:             r.Price,
		Discount:          r.Discount,
		DiscountPct:       r.DiscountPct,
		Cost:              r.Cost,
		Margin:            r.Margin,
		MarginPct:         r.MarginPct,
		ForSale:           YesNo(r.Active),
		OnBE:              YesNo(r.VisibilityBE),
		OnNL:              YesNo(r.VisibilityNL),
		OnCOM:             YesNo(r.VisibilityCOM),
		Stock:             r.Stock,
		MSQ:               r.MSQ,
		UOM:               r.UOM,
		Ecotax:            r.Ecotax,
		SupplierReference: r.SupplierReference,
	}
}

func ProjectAll(records []*models.ProductRecord) []models.DisplayRecord {
	out := make([]models.DisplayRecord, len(records))
	for i, r := range records {
		out[i] = Project(r)
	}
	return out
}
