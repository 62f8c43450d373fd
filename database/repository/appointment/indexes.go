package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"occlusa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The unique partial index on the slot key closes the check-then-act race:
// two concurrent bookings for the same active slot cannot both insert.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Day-schedule query pattern.
		{
			Keys:    bson.D{{Key: "dateKey", Value: 1}, {Key: "providerName", Value: 1}},
			Options: options.Index().SetName("date_provider_idx"),
		},
		// Conflict (range overlap) query pattern.
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}},
			Options: options.Index().SetName("provider_status_range_idx"),
		},
		// At most one active appointment per exact slot.
		{
			Keys: bson.D{
				{Key: "providerId", Value: 1},
				{Key: "providerName", Value: 1},
				{Key: "dateKey", Value: 1},
				{Key: "timeSlot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": models.ActiveStatuses}}),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
