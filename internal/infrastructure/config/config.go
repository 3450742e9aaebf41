// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"cargo-route-service/internal/routing"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	LogLevel         string
	MetricsNamespace string

	// Server
	Port          string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	SearchTimeout time.Duration

	// PostgreSQL
	PostgresURI string

	// MongoDB
	MongoURI            string
	MongoDB             string
	MongoUser           string
	MongoPassword       string
	MongoConnectTimeout time.Duration

	// Route search
	Limits                  routing.SearchLimits
	Weights                 routing.Weights
	DefaultPartnershipScore int
	DefaultWeightKg         float64
	CurrencySymbol          string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	limits := routing.DefaultSearchLimits()
	weights := routing.DefaultWeights()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "cargo_routes"),

		Port:          getEnv("PORT", "8080"),
		ReadTimeout:   time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:  time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		SearchTimeout: time.Duration(getEnvAsInt("SEARCH_TIMEOUT", 20)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=postgres dbname=cargo port=5432 sslmode=disable"),

		MongoURI:            getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "cargo_routes"),
		MongoUser:           getEnv("MONGO_USER", ""),
		MongoPassword:       getEnv("MONGO_PASSWORD", ""),
		MongoConnectTimeout: time.Duration(getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,

		Limits: routing.SearchLimits{
			LookaheadDays: getEnvAsInt("LOOKAHEAD_DAYS", limits.LookaheadDays),
			MaxLegs:       getEnvAsInt("MAX_LEGS", limits.MaxLegs),
			MinConnection: time.Duration(getEnvAsInt("MIN_CONNECTION_MINUTES", int(limits.MinConnection/time.Minute))) * time.Minute,
			MaxConnection: time.Duration(getEnvAsInt("MAX_CONNECTION_HOURS", int(limits.MaxConnection/time.Hour))) * time.Hour,
			MaxPaths:      getEnvAsInt("MAX_PATHS", limits.MaxPaths),
		},
		Weights: routing.Weights{
			Time:                getEnvAsFloat("WEIGHT_TIME", weights.Time),
			Connection:          getEnvAsFloat("WEIGHT_CONNECTION", weights.Connection),
			CarrierChange:       getEnvAsFloat("WEIGHT_CARRIER_CHANGE", weights.CarrierChange),
			Cost:                getEnvAsFloat("WEIGHT_COST", weights.Cost),
			MissingPenalty:      getEnvAsFloat("MISSING_TARIFF_PENALTY", weights.MissingPenalty),
			HighCostCeiling:     getEnvAsFloat("HIGH_COST_CEILING", weights.HighCostCeiling),
			PartnershipExponent: getEnvAsFloat("PARTNERSHIP_EXPONENT", weights.PartnershipExponent),
			PartnershipDivisor:  getEnvAsFloat("PARTNERSHIP_DIVISOR", weights.PartnershipDivisor),
		},
		DefaultPartnershipScore: getEnvAsInt("DEFAULT_PARTNERSHIP_SCORE", routing.DefaultPartnership().DefaultScore),
		DefaultWeightKg:         getEnvAsFloat("DEFAULT_WEIGHT_KG", 100),
		CurrencySymbol:          getEnv("CURRENCY_SYMBOL", "R$"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
