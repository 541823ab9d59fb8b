package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atn-virtual/crewcenter/internal/api"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/config"
	"atn-virtual/crewcenter/internal/db"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/routes"
	"atn-virtual/crewcenter/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title ATN-Virtual Crew Center API
// @version 1.0
// @description Backend for the ATN-Virtual crew center: weather, roster, flights and staff forms.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Crew center starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}
	logging.Info("Database ready", "driver", cfg.DBDriver)

	crew, err := cfg.LoadRoster()
	if err != nil {
		log.Fatalf("❌ Failed to load roster: %v", err)
	}

	deps, err := api.InitDependencies(cfg, gormDB, crew, metricsReg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize dependencies: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers.InitWorkers(ctx, deps.Services.MailQueue, common.LogMailer{}, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, cfg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server shutdown failed", "error", err.Error())
		}
	}()

	logging.Info("Server starting",
		"addr", cfg.HTTPAddr,
		"environment", cfg.AppEnv,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("❌ Server failed: %v", err)
	}
	logging.Info("Server stopped")
}
