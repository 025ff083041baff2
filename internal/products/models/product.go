package models

import "database/sql"

// ProductRow is one row of the primary product-attributes relation.
type ProductRow struct {
	SKU               string
	SupplierReference sql.NullString
	Name              sql.NullString
	Price             sql.NullFloat64
	Discount          sql.NullFloat64
	DiscountPct       sql.NullFloat64
	Ecotax            sql.NullFloat64
	Cost              sql.NullFloat64
	Margin            sql.NullFloat64
	MarginPct         sql.NullFloat64
	Active            sql.NullInt64
	VisibilityBE      sql.NullInt64
	VisibilityNL      sql.NullInt64
	VisibilityCOM     sql.NullInt64
}

type StockRow struct {
	SKU   string
	Stock sql.NullFloat64
}

// SalesUnitRow carries the minimum sales quantity and unit of measure.
type SalesUnitRow struct {
	SKU           string
	SalesQuantity sql.NullFloat64
	UOM           sql.NullString
}

// ProductRecord is the merged, per-request view of one SKU. Fields a source did not
// provide keep their zero value.
type ProductRecord struct {
	SKU               string
	SupplierReference string
	Name              string
	Price             float64
	Discount          float64
	DiscountPct       float64
	Ecotax            float64
	Cost              float64
	Margin            float64
	MarginPct         float64
	Active            sql.NullInt64
	VisibilityBE      sql.NullInt64
	VisibilityNL      sql.NullInt64
	VisibilityCOM     sql.NullInt64
	Stock             float64
	MSQ               float64
	UOM               string

	InProducts   bool
	InStock      bool
	InSalesUnits bool
}
