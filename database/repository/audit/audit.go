package auditRepo

import (
	"context"
	"fmt"
	"time"

	"occlusa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository appends scheduling audit entries. The collection is
// write-only from the service's perspective.
type AuditRepository interface {
	Append(ctx context.Context, entry *models.AuditLogEntry) error
}

// MongoAuditRepo implements AuditRepository using MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo constructs a repository over the auditLog collection.
func NewMongoAuditRepo(db *mongo.Database) *MongoAuditRepo {
	return &MongoAuditRepo{
		coll: db.Collection("auditLog"),
	}
}

// Append writes one audit entry, assigning its id and timestamp.
func (repo *MongoAuditRepo) Append(ctx context.Context, entry *models.AuditLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()

	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error appending audit entry: %w", err)
	}
	return nil
}
