// Package storagetest builds SQLite databases shaped like the ERP product relations.
package storagetest

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"offerte_api/internal/products/storage/repositories"
)

var Tables = repositories.Tables{
	Products:    "business",
	Stock:       "storage_stock_update",
	SalesUnits:  "storage_article_price",
	NameColumn:  "PRODUCT_NAME_H1.nl_BE",
	StockColumn: "LAST_STATE@IMH_HAS",
}

const schema = `
CREATE TABLE business (
	"SKU" TEXT NOT NULL,
	"SUPPLIER_REFERENCE" TEXT,
	"PRODUCT_NAME_H1.nl_BE" TEXT,
	"PRICE" REAL,
	"DISCOUNT" REAL,
	"DISCOUNT_PCT_INT" INTEGER,
	"ECOTAX" REAL,
	"COST" REAL,
	"MARGIN" REAL,
	"MARGIN_PCT" REAL,
	"ACTIVE" INTEGER,
	"VISIBILITY_BE" INTEGER,
	"VISIBILITY_NL" INTEGER,
	"VISIBILITY_COM" INTEGER
);
CREATE TABLE storage_stock_update (
	"SKU" TEXT NOT NULL,
	"LAST_STATE@IMH_HAS" INTEGER
);
CREATE TABLE storage_article_price (
	"SKU" TEXT NOT NULL,
	"SALES_QUANTITY" REAL,
	"UOM" TEXT
);
`

// Product is a business row; nil pointers are stored as NULL.
type Product struct {
	SKU               string
	SupplierReference string
	Name              string
	Price             float64
	Discount          float64
	DiscountPct       int
	Ecotax            float64
	Cost              float64
	Margin            float64
	MarginPct         float64
	Active            *int
	VisibilityBE      *int
	VisibilityNL      *int
	VisibilityCOM     *int
}

type Stock struct {
	SKU   string
	Stock int
}

type SalesUnit struct {
	SKU           string
	SalesQuantity float64
	UOM           string
}

type Fixture struct {
	Products   []Product
	Stocks     []Stock
	SalesUnits []SalesUnit
}

func Flag(v int) *int {
	return &v
}

// DSN returns the path of a fresh database file populated with f.
func DSN(t testing.TB, f Fixture) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "erp.db")
	db := open(t, path)
	defer db.Close()

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) != "" {
			mustExec(t, db, stmt)
		}
	}
	for _, p := range f.Products {
		mustExec(t, db, `INSERT INTO business VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			p.SKU, p.SupplierReference, p.Name, p.Price, p.Discount, p.DiscountPct, p.Ecotax,
			p.Cost, p.Margin, p.MarginPct, nullable(p.Active), nullable(p.VisibilityBE),
			nullable(p.VisibilityNL), nullable(p.VisibilityCOM))
	}
	for _, s := range f.Stocks {
		mustExec(t, db, `INSERT INTO storage_stock_update VALUES (?,?)`, s.SKU, s.Stock)
	}
	for _, u := range f.SalesUnits {
		mustExec(t, db, `INSERT INTO storage_article_price VALUES (?,?,?)`, u.SKU, u.SalesQuantity, u.UOM)
	}
	return path
}

// Open returns a handle on a populated database, closed at test cleanup.
func Open(t testing.TB, f Fixture) *sql.DB {
	t.Helper()
	db := open(t, DSN(t, f))
	t.Cleanup(func() { db.Close() })
	return db
}

func open(t testing.TB, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	return db
}

func mustExec(t testing.TB, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func nullable(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
