package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/audit"
)

// AuditRepository provides append-only persistence for audit entries.
// The ledger is immutable: there are intentionally no update or delete
// operations, and reads go through the query side.
type AuditRepository interface {
	// Add appends an audit entry.
	Add(ctx context.Context, entry *audit.Entry) error
}
