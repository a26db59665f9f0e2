package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"buildboard/internal/models"
)

// JenkinsAPI is the slice of the upstream client the job and log
// handlers call.
type JenkinsAPI interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, name string) (models.Job, error)
	GetBuild(ctx context.Context, name string, number int64) (models.BuildDetails, error)
	BuildHistory(ctx context.Context, name string, limit int) ([]models.BuildDetails, error)
	BuildLog(ctx context.Context, name string, number int64) (string, error)
	TriggerBuild(ctx context.Context, name string, params map[string]string) (int64, error)
	StopBuild(ctx context.Context, name string, number int64) error
	CreateJob(ctx context.Context, cfg models.JobConfig) error
	DeleteJob(ctx context.Context, name string) error
	Health(ctx context.Context) error
}

// upstreamError logs the cause and answers with a generic message so
// Jenkins internals never leak to the browser.
func upstreamError(w http.ResponseWriter, lg *zap.SugaredLogger, msg string, err error) {
	lg.Errorw("upstream request failed", "error", err)
	respondError(w, http.StatusInternalServerError, msg)
}

func buildNumber(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "buildNumber"), 10, 64)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func ListJobs(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := client.ListJobs(r.Context())
		if err != nil {
			upstreamError(w, lg, "Failed to fetch jobs", err)
			return
		}
		respondData(w, http.StatusOK, jobs)
	}
}

func GetJob(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		job, err := client.GetJob(r.Context(), name)
		if err != nil {
			upstreamError(w, lg, "Failed to fetch job", err)
			return
		}
		respondData(w, http.StatusOK, job)
	}
}

func CreateJob(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg models.JobConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if cfg.Name == "" {
			respondError(w, http.StatusBadRequest, "Job name is required")
			return
		}
		if err := client.CreateJob(r.Context(), cfg); err != nil {
			upstreamError(w, lg, "Failed to create job", err)
			return
		}
		respondJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("Job %s created successfully", cfg.Name),
		})
	}
}

func DeleteJob(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		if err := client.DeleteJob(r.Context(), name); err != nil {
			upstreamError(w, lg, "Failed to delete job", err)
			return
		}
		respondJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("Job %s deleted successfully", name),
		})
	}
}

func TriggerBuild(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		params := map[string]string{}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid build parameters")
				return
			}
		}
		if _, err := client.TriggerBuild(r.Context(), name, params); err != nil {
			upstreamError(w, lg, "Failed to trigger build", err)
			return
		}
		respondJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("Build triggered for %s", name),
		})
	}
}

func BuildHistory(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		limit := queryInt(r, "limit", 10)
		builds, err := client.BuildHistory(r.Context(), name, limit)
		if err != nil {
			upstreamError(w, lg, "Failed to fetch build history", err)
			return
		}
		respondData(w, http.StatusOK, builds)
	}
}

func BuildDetails(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		number, err := buildNumber(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid build number")
			return
		}
		build, err := client.GetBuild(r.Context(), name, number)
		if err != nil {
			upstreamError(w, lg, "Failed to fetch build details", err)
			return
		}
		respondData(w, http.StatusOK, build)
	}
}

func BuildLog(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		number, err := buildNumber(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid build number")
			return
		}
		log, err := client.BuildLog(r.Context(), name, number)
		if err != nil {
			upstreamError(w, lg, "Failed to fetch build log", err)
			return
		}
		respondData(w, http.StatusOK, map[string]string{"log": log})
	}
}

func StopBuild(client JenkinsAPI, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		number, err := buildNumber(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid build number")
			return
		}
		if err := client.StopBuild(r.Context(), name, number); err != nil {
			upstreamError(w, lg, "Failed to stop build", err)
			return
		}
		respondJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("Build %d stopped", number),
		})
	}
}
