package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Create adds a new reminder for the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reminder, error) {
	scope, err := scopeFor(ctx, access.ActionCreate)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCustomerVisible(ctx, scope, input.CustomerID); err != nil {
		return nil, fmt.Errorf("reminder.Create: %w", err)
	}

	rem := &domain.Reminder{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		CreatedBy:   scope.UserID,
	}

	created, err := s.reminders.Create(ctx, rem)
	if err != nil {
		return nil, fmt.Errorf("reminder.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reminder created",
		slog.String("reminder_id", created.ID.String()),
		slog.Bool("attached", input.CustomerID != nil))

	return created, nil
}
