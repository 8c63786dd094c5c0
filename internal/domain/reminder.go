package domain

import (
	"time"

	"github.com/google/uuid"
)

// Limits on reminder text fields, mirrored by database check constraints.
const (
	MaxReminderTitleLen       = 100
	MaxReminderDescriptionLen = 500
)

// Reminder is a follow-up task, optionally tied to a customer.
type Reminder struct {
	ID          uuid.UUID
	CustomerID  *uuid.UUID
	Title       string
	Description *string
	DueAt       time.Time
	Completed   bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CustomerName is populated by queries joining the customer.
	CustomerName *string
}
