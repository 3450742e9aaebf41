package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRouteSearchRepository implements the RouteSearchRepository interface
type MongoRouteSearchRepository struct {
	collection *mongo.Collection
}

// NewMongoRouteSearchRepository creates a new MongoDB route search repository
func NewMongoRouteSearchRepository(db *mongo.Database) repository.RouteSearchRepository {
	collection := db.Collection("route_searches")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	searchIDIndex := mongo.IndexModel{
		Keys:    bson.M{"searchId": 1},
		Options: options.Index().SetUnique(true),
	}

	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	// Searches by outcome over time
	outcomeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "outcome", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		searchIDIndex,
		createdAtIndex,
		outcomeIndex,
	})

	return &MongoRouteSearchRepository{
		collection: collection,
	}
}

// Save stores a route search audit record
func (r *MongoRouteSearchRepository) Save(ctx context.Context, search *entity.RouteSearch) error {
	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, search)
	if err != nil {
		return fmt.Errorf("insert route search %s: %w", search.SearchID, err)
	}
	return nil
}

// FindBySearchID finds a route search by its search ID
func (r *MongoRouteSearchRepository) FindBySearchID(ctx context.Context, searchID string) (*entity.RouteSearch, error) {
	var search entity.RouteSearch
	err := r.collection.FindOne(ctx, bson.M{"searchId": searchID}).Decode(&search)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", repository.ErrRouteSearchNotFound, searchID)
		}
		return nil, err
	}
	return &search, nil
}
