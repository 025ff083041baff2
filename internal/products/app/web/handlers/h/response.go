package h

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before writing the header so an encoding failure is still a 500.
func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to encode response", zap.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	writeJSON(w, log, status, errorResponse{Error: msg})
}
