package web

import (
	"net/http"

	"go.uber.org/zap"

	"offerte_api/metrics"
	"offerte_api/pkg/middleware"
)

// Handlers groups the endpoint handlers; nil entries are not routed.
type Handlers struct {
	Products      http.Handler
	Export        http.Handler
	Quotation     http.Handler
	QuotationXLSX http.Handler
	Health        http.Handler
}

type RouterOptions struct {
	Log       *zap.Logger
	RateLimit float64
	RateBurst int
}

// routeConfig binds a method+path pattern to a handler.
type routeConfig struct {
	pattern string
	handler http.Handler
}

func NewRouter(hs Handlers, opts RouterOptions) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	routes := []routeConfig{
		{pattern: "GET /products", handler: hs.Products},
		{pattern: "GET /api/products", handler: hs.Products},
		{pattern: "GET /api/products/export", handler: hs.Export},
		{pattern: "POST /api/quotation", handler: hs.Quotation},
		{pattern: "POST /api/quotation/xlsx", handler: hs.QuotationXLSX},
		{pattern: "GET /api/health", handler: hs.Health},
	}

	mux := http.NewServeMux()
	for _, rCfg := range routes {
		if rCfg.handler == nil {
			log.Debug("route disabled", zap.String("pattern", rCfg.pattern))
			continue
		}
		mux.Handle(rCfg.pattern, middleware.PrometheusMiddleware(rCfg.handler))
	}
	mux.Handle("GET /metrics", metrics.MetricsHandler())

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.CORS,
		middleware.RateLimit(opts.RateLimit, opts.RateBurst),
	)
}
