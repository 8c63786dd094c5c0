package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Update rewrites a reminder's fields. Out-of-scope reminders read as
// not found.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reminder, error) {
	scope, err := scopeFor(ctx, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCustomerVisible(ctx, scope, input.CustomerID); err != nil {
		return nil, fmt.Errorf("reminder.Update: %w", err)
	}

	rem := &domain.Reminder{
		ID:          id,
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
	}

	updated, err := s.reminders.Update(ctx, scope, rem)
	if err != nil {
		return nil, fmt.Errorf("reminder.Update: %w", err)
	}

	s.log.InfoContext(ctx, "reminder updated",
		slog.String("reminder_id", id.String()))

	return updated, nil
}

// Toggle flips a reminder's completed flag and returns the new state.
// Toggling twice restores the original.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	scope, err := scopeFor(ctx, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	current, err := s.reminders.GetByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.Toggle: %w", err)
	}

	updated, err := s.reminders.SetCompleted(ctx, scope, id, !current.Completed)
	if err != nil {
		return nil, fmt.Errorf("reminder.Toggle: %w", err)
	}

	s.log.InfoContext(ctx, "reminder toggled",
		slog.String("reminder_id", id.String()),
		slog.Bool("completed", updated.Completed))

	return updated, nil
}

// Delete removes a reminder visible to the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	scope, err := scopeFor(ctx, access.ActionDelete)
	if err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, scope, id); err != nil {
		return fmt.Errorf("reminder.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "reminder deleted",
		slog.String("reminder_id", id.String()))

	return nil
}
