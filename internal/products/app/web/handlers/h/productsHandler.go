package h

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"offerte_api/internal/products/business"
	"offerte_api/internal/products/models"
	"offerte_api/pkg/middleware"
)

const noSKUsMessage = "No SKUs provided"

type productsResponse struct {
	Products []models.DisplayRecord `json:"products"`
}

// ProductsHandler serves GET ?skus=A,B,C. With envelope set the records are wrapped in
// {"products": [...]}, otherwise a bare array is returned.
type ProductsHandler struct {
	service  *business.ProductService
	envelope bool
	log      *zap.Logger
}

func NewProductsHandler(service *business.ProductService, envelope bool, log *zap.Logger) *ProductsHandler {
	return &ProductsHandler{service: service, envelope: envelope, log: log}
}

func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	records, ok := lookupDisplay(w, r, h.service, h.log)
	if !ok {
		return
	}
	if h.envelope {
		writeJSON(w, h.log, http.StatusOK, productsResponse{Products: records})
		return
	}
	writeJSON(w, h.log, http.StatusOK, records)
}

// ExportHandler serves the same lookup as a Windows-1252 CSV attachment.
type ExportHandler struct {
	service *business.ProductService
	log     *zap.Logger
}

func NewExportHandler(service *business.ProductService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{service: service, log: log}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	records, ok := lookupDisplay(w, r, h.service, h.log)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", business.CSVContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	if err := business.WriteDisplayCSV(w, records); err != nil {
		h.log.Error("failed to write csv export", zap.Error(err))
	}
}

func lookupDisplay(w http.ResponseWriter, r *http.Request, service *business.ProductService, log *zap.Logger) ([]models.DisplayRecord, bool) {
	records, err := service.Display(r.Context(), r.URL.Query().Get("skus"))
	if errors.Is(err, business.ErrNoSKUs) {
		writeError(w, log, http.StatusBadRequest, noSKUsMessage)
		return nil, false
	}
	if err != nil {
		log.Error("product lookup failed",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())))
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}
