package main

import (
	"flag"

	"cargo-route-service/internal/infrastructure/config"
	"cargo-route-service/internal/infrastructure/persistence"
	"cargo-route-service/internal/interface/repository"
	"cargo-route-service/pkg/logger"
)

// Creates or updates the schedule, tariff, carrier and airport tables.
func main() {
	attempts := flag.Int("attempts", 5, "connection attempts before giving up")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	db, err := persistence.NewPostgres(cfg.PostgresURI, *attempts)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	models := repository.Models()
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Migration failed", "error", err)
	}
	log.Info("Migration completed", "tables", len(models))
}
