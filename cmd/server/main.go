package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cargo-route-service/internal/infrastructure/config"
	"cargo-route-service/internal/infrastructure/persistence"
	"cargo-route-service/internal/infrastructure/router"
	"cargo-route-service/internal/interface/httpapi"
	"cargo-route-service/internal/interface/repository"
	"cargo-route-service/internal/routing"
	"cargo-route-service/internal/usecase"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Cargo Route Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(cfg.PostgresURI, 5)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoSettings := persistence.MongoSettings{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDB,
		Username:       cfg.MongoUser,
		Password:       cfg.MongoPassword,
		ConnectTimeout: cfg.MongoConnectTimeout,
	}
	mongoClient, err := persistence.NewMongoClient(ctx, mongoSettings)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.AuditDatabase(mongoClient, mongoSettings)

	// Set up repositories
	scheduleRepo := repository.NewGormScheduleRepository(gormDB, log)
	tariffRepo := repository.NewGormTariffRepository(gormDB)
	carrierRepo := repository.NewGormCarrierRepository(gormDB)
	airportRepo := repository.NewGormAirportRepository(gormDB)
	searchRepo := repository.NewMongoRouteSearchRepository(db)

	if revisions, err := scheduleRepo.ActiveRevisions(ctx); err != nil {
		log.Warn("Could not list active schedule revisions", "error", err)
	} else {
		log.Info("Active schedule revisions", "count", len(revisions))
	}

	// Set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up use cases
	engine := routing.NewEngine(cfg.Limits, cfg.Weights, log)
	formatter := usecase.NewRouteFormatter(airportRepo, cfg.CurrencySymbol, log)
	planner := usecase.NewRoutePlanner(scheduleRepo, tariffRepo, carrierRepo, searchRepo, engine, formatter, m,
		usecase.PlannerOptions{
			DefaultWeightKg: cfg.DefaultWeightKg,
			Partnership:     routing.PartnershipDefaults{DefaultScore: cfg.DefaultPartnershipScore},
		}, log)
	carrierService := usecase.NewCarrierService(carrierRepo, log)

	// Set up HTTP server
	rt := router.NewRouter(registry, log)
	rt.Register(httpapi.NewHandler(planner, carrierService, cfg.SearchTimeout, log))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rt.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Cargo Route Service stopped")
}
