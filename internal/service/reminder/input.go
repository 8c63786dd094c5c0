package reminder

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// CreateInput holds parameters for creating a reminder. CustomerID is
// optional; when set the customer must be visible to the caller.
type CreateInput struct {
	Title       string
	Description *string
	DueAt       time.Time
	CustomerID  *uuid.UUID
}

// UpdateInput holds parameters for rewriting a reminder.
type UpdateInput = CreateInput

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	if i.Description != nil {
		trimmed := strings.TrimSpace(*i.Description)
		if trimmed == "" {
			i.Description = nil
		} else {
			i.Description = &trimmed
		}
	}
}

// Validate validates the reminder input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > domain.MaxReminderTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > domain.MaxReminderDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.DueAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_at", Message: "required"})
	}
	if i.CustomerID != nil && *i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing reminders.
type ListInput struct {
	Status domain.ReminderStatus
}

// Validate validates the list input. An empty status means all.
func (i ListInput) Validate() error {
	if i.Status != "" && !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}
