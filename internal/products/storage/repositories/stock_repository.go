package repositories

import (
	"context"
	"fmt"

	"offerte_api/internal/products/models"
	"offerte_api/pkg/dbconnect"
)

type StockRepository struct {
	q       Querier
	dialect dbconnect.Dialect
	table   string
	columns []string
}

func NewStockRepository(q Querier, dialect dbconnect.Dialect, tables Tables) *StockRepository {
	return &StockRepository{
		q:       q,
		dialect: dialect,
		table:   tables.Stock,
		columns: []string{"SKU", tables.StockColumn},
	}
}

func (r *StockRepository) GetBySKUs(ctx context.Context, skus []string) ([]models.StockRow, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	query := selectBySKU(r.dialect, r.table, r.columns, len(skus))
	rows, err := r.q.QueryContext(ctx, query, skuArgs(skus)...)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()

	if err := expectColumns(rows, r.columns); err != nil {
		return nil, fmt.Errorf("stock: %w", err)
	}

	var stocks []models.StockRow
	for rows.Next() {
		var s models.StockRow
		if err := rows.Scan(&s.SKU, &s.Stock); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}
	return stocks, nil
}
