package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"occlusa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new appointment document. The repository assigns the id
// and creation timestamp. A collision with the unique active slot index is
// reported as ErrDuplicateSlot.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	appt.ID = uuid.New().String()
	appt.CreatedAt = time.Now().UTC()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateSlot
		}
		return "", fmt.Errorf("error creating appointment: %w", err)
	}
	return appt.ID, nil
}

// GetByID retrieves an appointment by its id.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Update merges the given fields into an existing document. Moving an
// appointment onto an occupied slot trips the unique active slot index and is
// reported as ErrDuplicateSlot.
func (repo *MongoAppointmentRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(fields) == 0 {
		return nil
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus sets only the status field; every other field is left untouched.
func (repo *MongoAppointmentRepo) SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("error setting status of appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
