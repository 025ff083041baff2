package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"offerte_api/config"
	"offerte_api/internal/products/app/web"
	"offerte_api/internal/products/app/web/handlers/h"
	"offerte_api/internal/products/business"
	"offerte_api/internal/products/storage"
	"offerte_api/internal/products/storage/repositories"
	"offerte_api/pkg/dbconnect"
	"offerte_api/pkg/dbconnect/postgres"
	"offerte_api/pkg/dbconnect/sqlite"
	"offerte_api/pkg/logger"
)

// NewDatabase picks the connector for the configured driver.
func NewDatabase(cfg *config.DatabaseConfig, log *zap.Logger) (dbconnect.Database, error) {
	base := logger.NewLogger(log, "db")
	switch cfg.GetDriver() {
	case postgres.DriverName:
		return postgres.NewPgConnector(cfg, base.WithPrefix(postgres.DriverName)), nil
	case sqlite.DriverName:
		return sqlite.NewSqliteConnector(cfg, base.WithPrefix(sqlite.DriverName)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.GetDriver())
	}
}

type Services struct {
	Products  *business.ProductService
	Quotation *business.QuotationService
}

// NewServices connects db and builds the product and quotation services on top of it.
func NewServices(cfg *config.AppConfig, db dbconnect.Database, log *zap.Logger) (*Services, error) {
	sqlDB, err := db.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	store := storage.NewStore(sqlDB, db.Dialect(), repositories.Tables{
		Products:    cfg.Sources.ProductsTable,
		Stock:       cfg.Sources.StockTable,
		SalesUnits:  cfg.Sources.SalesUnitTable,
		NameColumn:  cfg.Sources.NameColumn,
		StockColumn: cfg.Sources.StockColumn,
	}, cfg.Database.QueryTimeout)

	opener := business.OpenerFunc(func(ctx context.Context) (business.LookupSession, error) {
		session, err := store.Open(ctx)
		if err != nil {
			return nil, err
		}
		return session, nil
	})

	products := business.NewProductService(opener, cfg.Products.SkuWidth, log.Named("products"))
	quotation := business.NewQuotationService(products, cfg.Quotation.MaxItems, cfg.Quotation.CdcCost, log.Named("quotation"))
	return &Services{Products: products, Quotation: quotation}, nil
}

type Server struct {
	cfg     *config.AppConfig
	handler http.Handler
	log     *zap.Logger
}

func NewServer(cfg *config.AppConfig, db dbconnect.Database, log *zap.Logger) (*Server, error) {
	services, err := NewServices(cfg, db, log)
	if err != nil {
		return nil, err
	}

	handler := web.NewRouter(web.Handlers{
		Products:      h.NewProductsHandler(services.Products, cfg.Products.Envelope, log),
		Export:        h.NewExportHandler(services.Products, log),
		Quotation:     h.NewQuotationHandler(services.Quotation, log),
		QuotationXLSX: h.NewQuotationXLSXHandler(services.Quotation, cfg.Quotation.Title, log),
		Health:        h.NewHealthHandler(db, log),
	}, web.RouterOptions{
		Log:       log.Named("http"),
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	return &Server{cfg: cfg, handler: handler, log: log}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln and shuts down gracefully once ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("serving product api", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down product api")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
