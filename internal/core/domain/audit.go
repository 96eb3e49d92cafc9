package domain

import "time"

// Audit action labels. Convention-coded strings, append-only store.
const (
	ActionRegistered = "REGISTERED"
	ActionLogin      = "LOGIN"
)

// RoleAssignedAction builds the audit label for a role assignment, carrying
// the full (normalized) role name.
func RoleAssignedAction(fullRoleName string) string {
	return "ROLE_ASSIGNED:" + fullRoleName
}

// AuditEntry records one security-relevant action. Entries are written in the
// same unit of work as the mutation they describe and are never updated.
type AuditEntry struct {
	Action    string    `json:"action"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
