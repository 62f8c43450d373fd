package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"occlusa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByDate returns all appointments for the given dateKey, optionally
// restricted to one provider. Results are sorted by start time so the day
// schedule is chronological regardless of slot-label digit width.
func (repo *MongoAppointmentRepo) ListByDate(ctx context.Context, dateKey, providerName string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"dateKey": dateKey}
	if providerName != "" {
		filter["providerName"] = providerName
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments for %s: %w", dateKey, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// ListByDay returns appointments starting within [dayStart, dayEnd], sorted
// by start time, optionally restricted to one provider id.
func (repo *MongoAppointmentRepo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time, providerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"startTime": bson.M{"$gte": dayStart, "$lte": dayEnd},
	}
	if providerID != "" {
		filter["providerId"] = providerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching day appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// ListOverlapping returns active appointments for the provider whose stored
// range overlaps [start, end): stored.start < end AND stored.end > start.
func (repo *MongoAppointmentRepo) ListOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": models.ActiveStatuses},
		"startTime":  bson.M{"$lt": end},
		"endTime":    bson.M{"$gt": start},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching overlapping appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// ListActiveBySlot returns active appointments at an exact normalized
// (providerName, dateKey, timeSlot) combination.
func (repo *MongoAppointmentRepo) ListActiveBySlot(ctx context.Context, providerName, dateKey, timeSlot string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerName": providerName,
		"dateKey":      dateKey,
		"timeSlot":     timeSlot,
		"status":       bson.M{"$in": models.ActiveStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments for slot %s %s: %w", dateKey, timeSlot, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
