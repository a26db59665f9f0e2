package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"buildboard/internal/auth"
	"buildboard/internal/models"
)

type logRequest struct {
	JobName     string `json:"jobName"`
	BuildNumber int64  `json:"buildNumber"`
}

// BuildLogSocket serves console logs over a websocket. Delivery is
// one-shot: each request fetches the full log once and emits a single
// message. Browsers cannot set an Authorization header on the websocket
// handshake, so the token travels as a query parameter.
func BuildLogSocket(svc *auth.Service, client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Verify(r.URL.Query().Get("token")); err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			lg.Warnw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		for {
			var req logRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			if req.JobName == "" || req.BuildNumber <= 0 {
				_ = conn.WriteJSON(models.APIResponse{Success: false, Error: "jobName and buildNumber are required"})
				continue
			}
			content, err := client.BuildLog(r.Context(), req.JobName, req.BuildNumber)
			if err != nil {
				lg.Errorw("build log fetch failed", "job", req.JobName, "build", req.BuildNumber, "error", err)
				_ = conn.WriteJSON(models.APIResponse{Success: false, Error: "Failed to fetch build log"})
				continue
			}
			_ = conn.WriteJSON(models.LogMessage{
				JobName:     req.JobName,
				BuildNumber: req.BuildNumber,
				Content:     content,
				Timestamp:   time.Now().UnixMilli(),
			})
		}
	}
}
