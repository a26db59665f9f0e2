package main

import (
	"log"
	"net/http"

	"buildboard/internal/auth"
	"buildboard/internal/config"
	"buildboard/internal/httpserver"
	"buildboard/internal/jenkins"
	"buildboard/internal/logger"
	"buildboard/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	store := auth.NewStore()
	authSvc := auth.NewService(store, cfg.JWTSecret, cfg.JWTExpiresIn)
	lg.Infow("credential store seeded", "users", store.Count())

	client := jenkins.NewClient(cfg.JenkinsURL, cfg.JenkinsUser, cfg.JenkinsToken, cfg.JenkinsTimeout, lg)
	statsSvc := stats.NewService(client, lg)

	router := httpserver.NewRouter(cfg, lg, authSvc, client, statsSvc)
	lg.Infow("listening", "port", cfg.HTTPPort, "jenkins", cfg.JenkinsURL)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
