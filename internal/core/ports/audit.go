package ports

import (
	"context"
	"time"
)

// AuditEntry records a single policy-relevant action on the item store.
type AuditEntry struct {
	ActorID   string
	ActorRole string
	Action    string
	ItemID    string
	Outcome   string // "allowed" or "denied"
	Timestamp time.Time
}

// AuditRecorder persists audit entries. Recording is best-effort: a failed
// write is logged by the caller but never fails the request.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}
