package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"offerte_api/internal/products/models"
	"offerte_api/internal/products/storage/repositories"
	"offerte_api/metrics"
	"offerte_api/pkg/dbconnect"
)

// Store hands out per-request sessions bound to a dedicated pool connection.
type Store struct {
	db           *sql.DB
	dialect      dbconnect.Dialect
	tables       repositories.Tables
	queryTimeout time.Duration
}

func NewStore(db *sql.DB, dialect dbconnect.Dialect, tables repositories.Tables, queryTimeout time.Duration) *Store {
	return &Store{db: db, dialect: dialect, tables: tables, queryTimeout: queryTimeout}
}

func (s *Store) Open(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &Session{
		conn:         conn,
		queryTimeout: s.queryTimeout,
		products:     repositories.NewProductRepository(conn, s.dialect, s.tables),
		stocks:       repositories.NewStockRepository(conn, s.dialect, s.tables),
		salesUnits:   repositories.NewSalesUnitRepository(conn, s.dialect, s.tables),
	}, nil
}

// Session runs the three source lookups sequentially on one connection.
type Session struct {
	conn         *sql.Conn
	queryTimeout time.Duration
	products     *repositories.ProductRepository
	stocks       *repositories.StockRepository
	salesUnits   *repositories.SalesUnitRepository
}

func (s *Session) Products(ctx context.Context, skus []string) ([]models.ProductRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	rows, err := s.products.GetBySKUs(ctx, skus)
	metrics.RecordLookup("products", len(rows), time.Since(start), err)
	return rows, err
}

func (s *Session) Stocks(ctx context.Context, skus []string) ([]models.StockRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	rows, err := s.stocks.GetBySKUs(ctx, skus)
	metrics.RecordLookup("stock", len(rows), time.Since(start), err)
	return rows, err
}

func (s *Session) SalesUnits(ctx context.Context, skus []string) ([]models.SalesUnitRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	start := time.Now()
	rows, err := s.salesUnits.GetBySKUs(ctx, skus)
	metrics.RecordLookup("sales_units", len(rows), time.Since(start), err)
	return rows, err
}

// Close returns the connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
