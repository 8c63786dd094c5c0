package message

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// DispatchDue moves pending scheduled messages whose send time has passed
// into the message history. Each row is claimed via MarkDispatched before
// the history write, so concurrent dispatcher runs never double-send: the
// run that loses the claim skips the row.
//
// Returns how many messages this run dispatched.
func (s *Service) DispatchDue(ctx context.Context) (int, error) {
	now := time.Now()

	due, err := s.scheduled.ListDue(ctx, now, s.cfg.DispatchBatchSize)
	if err != nil {
		return 0, fmt.Errorf("message.DispatchDue list: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	var dispatched atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.DispatchConcurrency)

	for _, sm := range due {
		g.Go(func() error {
			if err := s.scheduled.MarkDispatched(gctx, sm.ID, now); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Claimed by a concurrent run.
					return nil
				}
				return fmt.Errorf("claim scheduled message %s: %w", sm.ID, err)
			}

			m := &domain.Message{
				ID:            uuid.New(),
				CustomerID:    sm.CustomerID,
				Body:          sm.Body,
				Direction:     domain.DirectionSent,
				AttachmentKey: sm.AttachmentKey,
				CreatedBy:     sm.CreatedBy,
			}
			if _, err := s.messages.Create(gctx, m); err != nil {
				return fmt.Errorf("dispatch scheduled message %s: %w", sm.ID, err)
			}

			dispatched.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(dispatched.Load()), err
	}

	s.log.InfoContext(ctx, "scheduled messages dispatched",
		slog.Int64("count", dispatched.Load()))

	return int(dispatched.Load()), nil
}
