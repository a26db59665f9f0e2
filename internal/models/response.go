package models

// APIResponse is the envelope every HTTP response is wrapped in.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LogMessage is the payload emitted on the build-log websocket channel.
type LogMessage struct {
	JobName     string `json:"jobName"`
	BuildNumber int64  `json:"buildNumber"`
	Content     string `json:"content"`
	Timestamp   int64  `json:"timestamp"`
}
