package business

import (
	"context"
	"database/sql"
	"errors"

	"offerte_api/internal/products/models"
)

// fakeSession serves rows from memory and filters them by the requested SKUs.
type fakeSession struct {
	products []models.ProductRow
	stocks   []models.StockRow
	units    []models.SalesUnitRow

	stockErr error
	queries  int
	opened   int
	closed   int
}

func (f *fakeSession) Open(context.Context) (LookupSession, error) {
	f.opened++
	return f, nil
}

func (f *fakeSession) Products(_ context.Context, skus []string) ([]models.ProductRow, error) {
	f.queries++
	var out []models.ProductRow
	for _, p := range f.products {
		if contains(skus, p.SKU) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSession) Stocks(_ context.Context, skus []string) ([]models.StockRow, error) {
	f.queries++
	if f.stockErr != nil {
		return nil, f.stockErr
	}
	var out []models.StockRow
	for _, s := range f.stocks {
		if contains(skus, s.SKU) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSession) SalesUnits(_ context.Context, skus []string) ([]models.SalesUnitRow, error) {
	f.queries++
	var out []models.SalesUnitRow
	for _, u := range f.units {
		if contains(skus, u.SKU) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeSession) Close() error {
	f.closed++
	return nil
}

var errUnreachable = errors.New("connection refused")

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func str(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func num(f float64) sql.NullFloat64 { return sql.NullFloat64{Float64: f, Valid: true} }
func flag(i int64) sql.NullInt64 { return sql.NullInt64{Int64: i, Valid: true} }
