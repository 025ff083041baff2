package h

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"offerte_api/internal/products/business"
	"offerte_api/internal/products/models"
	"offerte_api/pkg/middleware"
)

const (
	noItemsMessage = "No items provided"
	maxBodyBytes   = 1 << 20
)

type QuotationHandler struct {
	service *business.QuotationService
	log     *zap.Logger
}

func NewQuotationHandler(service *business.QuotationService, log *zap.Logger) *QuotationHandler {
	return &QuotationHandler{service: service, log: log}
}

func (h *QuotationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, ok := quote(w, r, h.service, h.log)
	if !ok {
		return
	}
	writeJSON(w, h.log, http.StatusOK, q)
}

// QuotationXLSXHandler renders the quotation as a workbook download.
type QuotationXLSXHandler struct {
	service *business.QuotationService
	title   string
	log     *zap.Logger
}

func NewQuotationXLSXHandler(service *business.QuotationService, title string, log *zap.Logger) *QuotationXLSXHandler {
	return &QuotationXLSXHandler{service: service, title: title, log: log}
}

func (h *QuotationXLSXHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, ok := quote(w, r, h.service, h.log)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := business.WriteQuotationXLSX(&buf, q, h.title); err != nil {
		h.log.Error("failed to render quotation workbook", zap.Error(err))
		http.Error(w, "Failed to render quotation", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", business.XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="offerte.xlsx"`)
	_, _ = buf.WriteTo(w)
}

func quote(w http.ResponseWriter, r *http.Request, service *business.QuotationService, log *zap.Logger) (*models.Quotation, bool) {
	var req models.QuotationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return nil, false
	}

	q, err := service.Quote(r.Context(), req.Items)
	if errors.Is(err, business.ErrNoItems) {
		writeError(w, log, http.StatusBadRequest, noItemsMessage)
		return nil, false
	}
	if err != nil {
		log.Error("quotation failed",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())))
		http.Error(w, "Failed to build quotation", http.StatusInternalServerError)
		return nil, false
	}
	return q, true
}
