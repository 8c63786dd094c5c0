package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Get returns one reminder visible to the caller.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}

	rem, err := s.reminders.GetByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.Get: %w", err)
	}
	return rem, nil
}

// List returns the caller's reminders, soonest due first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Reminder, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ReminderAll
	}

	out, err := s.reminders.List(ctx, scope, status)
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}
	return out, nil
}

// CountPending returns how many open reminders the caller can see.
func (s *Service) CountPending(ctx context.Context) (int, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return 0, err
	}

	count, err := s.reminders.CountPending(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("reminder.CountPending: %w", err)
	}
	return count, nil
}
