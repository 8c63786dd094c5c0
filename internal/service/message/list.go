package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// ListByCustomer returns the conversation with one customer, oldest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Message, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}

	// Resolve the customer first so an out-of-scope id reads as a missing
	// customer rather than an empty conversation.
	if _, err := s.customers.GetByID(ctx, scope, customerID); err != nil {
		return nil, fmt.Errorf("message.ListByCustomer: %w", err)
	}

	out, err := s.messages.ListByCustomer(ctx, scope, customerID)
	if err != nil {
		return nil, fmt.Errorf("message.ListByCustomer: %w", err)
	}
	return out, nil
}

// Get returns one message visible to the caller.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}

	m, err := s.messages.GetByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("message.Get: %w", err)
	}
	return m, nil
}

// Count returns how many messages the caller can see.
func (s *Service) Count(ctx context.Context) (int, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return 0, err
	}

	count, err := s.messages.Count(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("message.Count: %w", err)
	}
	return count, nil
}

// ListScheduled returns the scheduled messages visible to the caller.
func (s *Service) ListScheduled(ctx context.Context) ([]*domain.ScheduledMessage, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}

	out, err := s.scheduled.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("message.ListScheduled: %w", err)
	}
	return out, nil
}
