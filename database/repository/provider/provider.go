package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"occlusa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by GetByID when no provider matches.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository is a read-only directory of the practice's clinicians.
type ProviderRepository interface {
	// GetByName looks a provider up by exact name. A missing record is not an
	// error: it returns (nil, nil) and callers fall back to the default
	// schedule.
	GetByName(ctx context.Context, name string) (*models.Provider, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)
	EnsureIndexes() error
}

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a repository over the providers collection.
func NewMongoProviderRepo(db *mongo.Database) *MongoProviderRepo {
	return &MongoProviderRepo{
		coll: db.Collection("providers"),
	}
}

func (repo *MongoProviderRepo) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := repo.coll.FindOne(ctx, bson.M{"name": name}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching provider %q: %w", name, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching provider with id %s: %w", id, err)
	}
	return &provider, nil
}

// List returns every provider, sorted by name.
func (repo *MongoProviderRepo) List(ctx context.Context) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("error decoding providers: %w", err)
	}
	return providers, nil
}

// EnsureIndexes creates the name lookup index.
func (repo *MongoProviderRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_name"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	return nil
}
