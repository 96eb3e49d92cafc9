package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const auditCollection = "audit_log"

// AuditRepository implements ports.AuditRecorder against the append-only
// audit_log collection. Entries are never updated or deleted.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends one audit entry stamped with the current time. Callers run
// it inside their unit of work, so a failed append aborts the whole action.
func (r *AuditRepository) Record(ctx context.Context, action string, userID int64) error {
	doc := bson.M{
		"action":    action,
		"user_id":   userID,
		"timestamp": time.Now().UTC(),
	}
	if _, err := r.db.Collection(auditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("record audit %q: %w", action, err)
	}
	return nil
}
