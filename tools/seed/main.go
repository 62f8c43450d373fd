// Seeds the providers collection with the practice's clinicians. Run once
// against a fresh database; existing provider records are replaced.
package main

import (
	"context"
	"log"
	"time"

	"occlusa/config"
	"occlusa/database"
	providerRepo "occlusa/database/repository/provider"
	"occlusa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(context.Background(), client)

	db := client.Database(config.AppConfig.DatabaseName)
	coll := db.Collection("providers")

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear providers collection: %v", err)
	}

	providers := []models.Provider{
		{
			Name:              "Abdulhafidh Salim",
			WorkDays:          []int{1, 2, 3, 4, 5},
			StartTime:         "09:00",
			EndTime:           "17:00",
			SlotLengthMinutes: 30,
		},
		{
			Name:              "Maria Hassan",
			WorkDays:          []int{1, 3, 5},
			StartTime:         "08:00",
			EndTime:           "14:00",
			SlotLengthMinutes: 30,
		},
		{
			Name:              "James Mwangi",
			WorkDays:          []int{2, 4, 6},
			StartTime:         "10:00",
			EndTime:           "18:00",
			SlotLengthMinutes: 45,
		},
	}

	docs := make([]interface{}, 0, len(providers))
	for _, p := range providers {
		p.ID = uuid.New().String()
		docs = append(docs, p)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("failed to seed providers: %v", err)
	}

	repo := providerRepo.NewMongoProviderRepo(db)
	if err := repo.EnsureIndexes(); err != nil {
		log.Fatalf("failed to create provider indexes: %v", err)
	}

	log.Printf("seeded %d providers", len(providers))
}
