package repositories

import (
	"context"
	"fmt"

	"offerte_api/internal/products/models"
	"offerte_api/pkg/dbconnect"
)

type ProductRepository struct {
	q       Querier
	dialect dbconnect.Dialect
	table   string
	columns []string
}

func NewProductRepository(q Querier, dialect dbconnect.Dialect, tables Tables) *ProductRepository {
	return &ProductRepository{
		q:       q,
		dialect: dialect,
		table:   tables.Products,
		columns: []string{
			"SKU", "SUPPLIER_REFERENCE", tables.NameColumn, "PRICE", "DISCOUNT", "DISCOUNT_PCT_INT",
			"ECOTAX", "COST", "MARGIN", "MARGIN_PCT", "ACTIVE", "VISIBILITY_BE", "VISIBILITY_NL",
			"VISIBILITY_COM",
		},
	}
}

// GetBySKUs returns the primary attributes of every requested SKU found in one batched query.
func (r *ProductRepository) GetBySKUs(ctx context.Context, skus []string) ([]models.ProductRow, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	query := selectBySKU(r.dialect, r.table, r.columns, len(skus))
	rows, err := r.q.QueryContext(ctx, query, skuArgs(skus)...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	if err := expectColumns(rows, r.columns); err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}

	var products []models.ProductRow
	for rows.Next() {
		var p models.ProductRow
		if err := rows.Scan(
			&p.SKU, &p.SupplierReference, &p.Name, &p.Price, &p.Discount, &p.DiscountPct,
			&p.Ecotax, &p.Cost, &p.Margin, &p.MarginPct, &p.Active, &p.VisibilityBE,
			&p.VisibilityNL, &p.VisibilityCOM,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}
