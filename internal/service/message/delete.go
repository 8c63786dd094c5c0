package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
)

// Delete removes one message from the history. Non-administrators can
// only delete messages they created.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	scope, err := scopeFor(ctx, access.ActionDelete)
	if err != nil {
		return err
	}

	if err := s.messages.Delete(ctx, scope, id); err != nil {
		return fmt.Errorf("message.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "message deleted",
		slog.String("message_id", id.String()))

	return nil
}

// CancelScheduled removes a scheduled message that has not been
// dispatched yet.
func (s *Service) CancelScheduled(ctx context.Context, id uuid.UUID) error {
	scope, err := scopeFor(ctx, access.ActionDelete)
	if err != nil {
		return err
	}

	if err := s.scheduled.Delete(ctx, scope, id); err != nil {
		return fmt.Errorf("message.CancelScheduled: %w", err)
	}

	s.log.InfoContext(ctx, "scheduled message cancelled",
		slog.String("scheduled_id", id.String()))

	return nil
}
