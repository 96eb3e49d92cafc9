package domain

import "time"

// EventType classifies identity lifecycle events.
type EventType string

const (
	EventRegistered EventType = "REGISTERED"
	EventLogin      EventType = "LOGIN"
)

// IdentityEvent is the transient message handed to the event publisher after
// a successful registration or login. Delivery is best-effort and at least
// once; ordering is only guaranteed per email.
type IdentityEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	EventType EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}
