package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type healthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health reports liveness plus upstream Jenkins reachability.
func Health(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  map[string]string{"api": "healthy", "jenkins": "healthy"},
		}
		if err := client.Health(r.Context()); err != nil {
			lg.Warnw("jenkins unreachable", "error", err)
			status.Status = "error"
			status.Services["jenkins"] = "unhealthy"
			respondJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		respondJSON(w, http.StatusOK, status)
	}
}
