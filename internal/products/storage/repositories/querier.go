package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"offerte_api/pkg/dbconnect"
)

// ErrMissingColumn is returned when a result set does not have the expected shape.
var ErrMissingColumn = errors.New("unexpected result columns")

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Tables names the relations and the two columns whose names are not plain identifiers.
type Tables struct {
	Products    string
	Stock       string
	SalesUnits  string
	NameColumn  string
	StockColumn string
}

func quoteColumns(d dbconnect.Dialect, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	return strings.Join(quoted, ", ")
}

// quoteTable quotes each part of a possibly schema-qualified table name.
func quoteTable(d dbconnect.Dialect, table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = d.QuoteIdent(p)
	}
	return strings.Join(parts, ".")
}

func inList(d dbconnect.Dialect, n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = d.Placeholder(i + 1)
	}
	return strings.Join(marks, ", ")
}

func selectBySKU(d dbconnect.Dialect, table string, cols []string, n int) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s IN (%s)",
		quoteColumns(d, cols), quoteTable(d, table), d.QuoteIdent("SKU"), inList(d, n))
}

func skuArgs(skus []string) []any {
	args := make([]any, len(skus))
	for i, s := range skus {
		args[i] = s
	}
	return args
}

// expectColumns verifies the driver returned exactly the requested columns in order.
func expectColumns(rows *sql.Rows, want []string) error {
	got, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("read columns: %w", err)
	}
	if len(got) != len(want) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrMissingColumn, len(got), len(want))
	}
	for i := range want {
		if !strings.EqualFold(got[i], want[i]) {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrMissingColumn, i, got[i], want[i])
		}
	}
	return nil
}
