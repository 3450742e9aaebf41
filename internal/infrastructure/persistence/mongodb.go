package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettings describes the connection to the route search audit store
type MongoSettings struct {
	URI            string
	Database       string
	Username       string
	Password       string
	ConnectTimeout time.Duration
}

// NewMongoClient connects and pings MongoDB within the configured connect timeout
func NewMongoClient(ctx context.Context, settings MongoSettings) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout(settings))
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(settings))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// AuditDatabase returns the database holding the route search audit log
func AuditDatabase(client *mongo.Client, settings MongoSettings) *mongo.Database {
	return client.Database(settings.Database)
}

func clientOptions(settings MongoSettings) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(settings.URI).
		SetConnectTimeout(connectTimeout(settings)).
		SetAppName("cargo-route-service")

	if settings.Username != "" && settings.Password != "" {
		opts.SetAuth(options.Credential{
			Username: settings.Username,
			Password: settings.Password,
		})
	}
	return opts
}

func connectTimeout(settings MongoSettings) time.Duration {
	if settings.ConnectTimeout <= 0 {
		return 10 * time.Second
	}
	return settings.ConnectTimeout
}
