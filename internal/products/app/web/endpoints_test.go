package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func named(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(name))
	})
}

func TestNewRouter(t *testing.T) {
	router := NewRouter(Handlers{
		Products:  named("products"),
		Export:    named("export"),
		Quotation: named("quotation"),
	}, RouterOptions{})

	tests := []struct {
		method, target string
		status         int
		body           string
	}{
		{http.MethodGet, "/products?skus=A", http.StatusOK, "products"},
		{http.MethodGet, "/api/products?skus=A", http.StatusOK, "products"},
		{http.MethodGet, "/api/products/export?skus=A", http.StatusOK, "export"},
		{http.MethodPost, "/api/quotation", http.StatusOK, "quotation"},
		{http.MethodPost, "/api/quotation/xlsx", http.StatusNotFound, ""},
		{http.MethodGet, "/api/health", http.StatusNotFound, ""},
		{http.MethodDelete, "/products", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.target)
		if tt.body != "" {
			assert.Equal(t, tt.body, rec.Body.String())
		}
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestNewRouterServesMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(Handlers{}, RouterOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
