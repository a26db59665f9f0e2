package handlers

import (
	"encoding/json"
	"net/http"

	"buildboard/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, models.APIResponse{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, data any, msg string) {
	respondJSON(w, status, models.APIResponse{Success: true, Data: data, Message: msg})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, models.APIResponse{Success: false, Error: msg})
}

// NotFound replaces the router's default 404 so unknown routes
// still answer with the envelope.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Route not found")
	}
}
