package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"buildboard/internal/stats"
)

func Dashboard(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Dashboard(r.Context())
		if err != nil {
			upstreamError(w, lg, "Failed to get dashboard overview", err)
			return
		}
		respondData(w, http.StatusOK, overview)
	}
}

func AllJobsStatistics(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.AllJobsStatistics(r.Context())
		if err != nil {
			upstreamError(w, lg, "Failed to get all jobs statistics", err)
			return
		}
		respondData(w, http.StatusOK, entries)
	}
}

func JobStatistics(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		limit := queryInt(r, "limit", stats.DefaultJobStatsLimit)
		summary, err := svc.JobStatistics(r.Context(), name, limit)
		if err != nil {
			upstreamError(w, lg, "Failed to get job statistics", err)
			return
		}
		respondData(w, http.StatusOK, summary)
	}
}

func TimeSeries(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		days := queryInt(r, "days", stats.DefaultTimeSeriesDays)
		points, err := svc.TimeSeries(r.Context(), name, days)
		if err != nil {
			upstreamError(w, lg, "Failed to get time series data", err)
			return
		}
		respondData(w, http.StatusOK, points)
	}
}

func StatusDistribution(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		limit := queryInt(r, "limit", stats.DefaultDistributionLimit)
		entries, err := svc.StatusDistribution(r.Context(), name, limit)
		if err != nil {
			upstreamError(w, lg, "Failed to get status distribution", err)
			return
		}
		respondData(w, http.StatusOK, entries)
	}
}

func DurationTrend(svc *stats.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "jobName")
		limit := queryInt(r, "limit", stats.DefaultTrendLimit)
		points, err := svc.DurationTrend(r.Context(), name, limit)
		if err != nil {
			upstreamError(w, lg, "Failed to get build duration trend", err)
			return
		}
		respondData(w, http.StatusOK, points)
	}
}
