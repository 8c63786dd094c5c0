// Package message implements message history, WhatsApp hand-off fan-out,
// and scheduled sends.
package message

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/config"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// messageRepo defines the message repository interface needed by the service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByCustomer(ctx context.Context, scope access.Scope, customerID uuid.UUID) ([]*domain.Message, error)
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Message, error)
	Count(ctx context.Context, scope access.Scope) (int, error)
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
}

// scheduledRepo defines the scheduled message repository interface needed by the service.
type scheduledRepo interface {
	Create(ctx context.Context, m *domain.ScheduledMessage) (*domain.ScheduledMessage, error)
	List(ctx context.Context, scope access.Scope) ([]*domain.ScheduledMessage, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledMessage, error)
	MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
}

// customerReader defines the customer lookups needed for fan-out.
type customerReader interface {
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error)
	GetManyByIDs(ctx context.Context, scope access.Scope, ids []uuid.UUID) ([]*domain.Customer, error)
}

// Service implements message operations.
type Service struct {
	log       *slog.Logger
	messages  messageRepo
	scheduled scheduledRepo
	customers customerReader
	cfg       config.CRMConfig
}

// NewService creates a new message service instance.
func NewService(
	logger *slog.Logger,
	messages messageRepo,
	scheduled scheduledRepo,
	customers customerReader,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "message"),
		messages:  messages,
		scheduled: scheduled,
		customers: customers,
		cfg:       cfg,
	}
}

// scopeFor extracts the caller's scope and verifies the action is allowed
// for their role.
func scopeFor(ctx context.Context, action access.Action) (access.Scope, error) {
	scope, ok := access.FromCtx(ctx)
	if !ok {
		return access.Scope{}, domain.ErrUnauthorized
	}
	if !access.Can(scope.Role, access.EntityMessage, action, true) {
		return access.Scope{}, domain.ErrForbidden
	}
	return scope, nil
}
