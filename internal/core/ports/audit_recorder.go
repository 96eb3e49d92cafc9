package ports

import "context"

// AuditRecorder appends one audit entry per security-relevant action. It is
// called inside the same unit of work as the triggering mutation, so a failed
// append fails the whole operation.
type AuditRecorder interface {
	Record(ctx context.Context, action string, userID int64) error
}
