package repositories

import (
	"context"
	"fmt"

	"offerte_api/internal/products/models"
	"offerte_api/pkg/dbconnect"
)

type SalesUnitRepository struct {
	q       Querier
	dialect dbconnect.Dialect
	table   string
	columns []string
}

func NewSalesUnitRepository(q Querier, dialect dbconnect.Dialect, tables Tables) *SalesUnitRepository {
	return &SalesUnitRepository{
		q:       q,
		dialect: dialect,
		table:   tables.SalesUnits,
		columns: []string{"SKU", "SALES_QUANTITY", "UOM"},
	}
}

func (r *SalesUnitRepository) GetBySKUs(ctx context.Context, skus []string) ([]models.SalesUnitRow, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	query := selectBySKU(r.dialect, r.table, r.columns, len(skus))
	rows, err := r.q.QueryContext(ctx, query, skuArgs(skus)...)
	if err != nil {
		return nil, fmt.Errorf("query sales units: %w", err)
	}
	defer rows.Close()

	if err := expectColumns(rows, r.columns); err != nil {
		return nil, fmt.Errorf("sales units: %w", err)
	}

	var units []models.SalesUnitRow
	for rows.Next() {
		var u models.SalesUnitRow
		if err := rows.Scan(&u.SKU, &u.SalesQuantity, &u.UOM); err != nil {
			return nil, fmt.Errorf("scan sales unit row: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales unit rows: %w", err)
	}
	return units, nil
}
