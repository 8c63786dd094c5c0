package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageBodyLen is the hard cap on a message body, enforced after
// template expansion and mirrored by a database check constraint.
const MaxMessageBodyLen = 1000

// Message is one logged message exchanged with a customer.
type Message struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	Body          string
	Direction     MessageDirection
	AttachmentKey *string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time

	// Customer display fields, populated by list queries.
	CustomerName  *string
	CustomerPhone *string
}

// ScheduledMessage is a message queued for later dispatch by the
// dispatch-scheduled command. DispatchedAt is nil while pending.
type ScheduledMessage struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	Body          string
	SendAt        time.Time
	AttachmentKey *string
	CreatedBy     uuid.UUID
	DispatchedAt  *time.Time
	CreatedAt     time.Time

	// Customer display fields, populated by list queries.
	CustomerName  *string
	CustomerPhone *string
}

// IsPending reports whether the scheduled message has not been dispatched yet.
func (m *ScheduledMessage) IsPending() bool {
	return m.DispatchedAt == nil
}
