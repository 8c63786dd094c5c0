package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// RegisterReceived records a message that arrived from a customer outside
// the system, so the conversation history has both directions.
func (s *Service) RegisterReceived(ctx context.Context, input RegisterInput) (*domain.Message, error) {
	scope, err := scopeFor(ctx, access.ActionCreate)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The customer must be visible to the caller.
	if _, err := s.customers.GetByID(ctx, scope, input.CustomerID); err != nil {
		return nil, fmt.Errorf("message.RegisterReceived: %w", err)
	}

	m := &domain.Message{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		Body:       input.Body,
		Direction:  domain.DirectionReceived,
		CreatedBy:  scope.UserID,
	}

	created, err := s.messages.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("message.RegisterReceived: %w", err)
	}

	s.log.InfoContext(ctx, "received message registered",
		slog.String("customer_id", input.CustomerID.String()))

	return created, nil
}
