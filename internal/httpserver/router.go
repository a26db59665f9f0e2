package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"buildboard/internal/auth"
	"buildboard/internal/config"
	"buildboard/internal/httpserver/handlers"
	"buildboard/internal/models"
	"buildboard/internal/stats"
)

func NewRouter(cfg config.Config, lg *zap.SugaredLogger, authSvc *auth.Service, jenkins handlers.JenkinsAPI, statsSvc *stats.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(countRequests)

	r.NotFound(handlers.NotFound())

	r.Get("/health", handlers.Health(jenkins, lg))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/auth/login", handlers.Login(authSvc, lg))
	r.Post("/api/auth/register", handlers.Register(authSvc, lg))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth(cfg.JWTSecret))

		protected.Get("/api/auth/me", handlers.Me())
		protected.Post("/api/auth/refresh", handlers.Refresh(authSvc, lg))

		protected.Get("/api/jobs", handlers.ListJobs(jenkins, lg))
		protected.Get("/api/jobs/{jobName}", handlers.GetJob(jenkins, lg))
		protected.Post("/api/jobs/{jobName}/build", handlers.TriggerBuild(jenkins, lg))
		protected.Get("/api/jobs/{jobName}/builds", handlers.BuildHistory(jenkins, lg))
		protected.Get("/api/jobs/{jobName}/builds/{buildNumber}", handlers.BuildDetails(jenkins, lg))
		protected.Get("/api/jobs/{jobName}/builds/{buildNumber}/log", handlers.BuildLog(jenkins, lg))
		protected.Post("/api/jobs/{jobName}/builds/{buildNumber}/stop", handlers.StopBuild(jenkins, lg))

		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireRole(models.RoleAdmin))
			admin.Post("/api/jobs", handlers.CreateJob(jenkins, lg))
			admin.Delete("/api/jobs/{jobName}", handlers.DeleteJob(jenkins, lg))
		})

		protected.Get("/api/statistics/dashboard", handlers.Dashboard(statsSvc, lg))
		protected.Get("/api/statistics/jobs", handlers.AllJobsStatistics(statsSvc, lg))
		protected.Get("/api/statistics/jobs/{jobName}", handlers.JobStatistics(statsSvc, lg))
		protected.Get("/api/statistics/jobs/{jobName}/timeseries", handlers.TimeSeries(statsSvc, lg))
		protected.Get("/api/statistics/jobs/{jobName}/status-distribution", handlers.StatusDistribution(statsSvc, lg))
		protected.Get("/api/statistics/jobs/{jobName}/duration-trend", handlers.DurationTrend(statsSvc, lg))
	})

	// Websocket handshakes authenticate via query parameter, so this
	// route sits outside the bearer middleware.
	r.Get("/api/ws/logs", handlers.BuildLogSocket(authSvc, jenkins, lg))

	return r
}
