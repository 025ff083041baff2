package h

import (
	"net/http"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		writeJSON(w, h.log, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string]string{"status": "ok"})
}
