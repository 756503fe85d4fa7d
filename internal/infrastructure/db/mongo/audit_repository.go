package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invenco/inventory-system/internal/core/ports"
)

const collectionAudit = "audit_events"

// AuditRepository persists policy decisions and mutations to the audit
// collection. Entries are append-only.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type auditDoc struct {
	ActorID   string    `bson:"actor_id"`
	ActorRole string    `bson:"actor_role"`
	Action    string    `bson:"action"`
	ItemID    string    `bson:"item_id,omitempty"`
	Outcome   string    `bson:"outcome"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Record(ctx context.Context, entry ports.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ActorID:   entry.ActorID,
		ActorRole: entry.ActorRole,
		Action:    entry.Action,
		ItemID:    entry.ItemID,
		Outcome:   entry.Outcome,
		Timestamp: entry.Timestamp,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
