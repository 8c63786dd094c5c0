// Package reminder implements follow-up reminders with optional customer
// attachment.
package reminder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// reminderRepo defines the reminder repository interface needed by the service.
type reminderRepo interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, scope access.Scope, status domain.ReminderStatus) ([]*domain.Reminder, error)
	CountPending(ctx context.Context, scope access.Scope) (int, error)
	Update(ctx context.Context, scope access.Scope, rem *domain.Reminder) (*domain.Reminder, error)
	SetCompleted(ctx context.Context, scope access.Scope, id uuid.UUID, completed bool) (*domain.Reminder, error)
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
}

// customerReader resolves customers for attachment checks.
type customerReader interface {
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error)
}

// Service implements reminder operations.
type Service struct {
	log       *slog.Logger
	reminders reminderRepo
	customers customerReader
}

// NewService creates a new reminder service instance.
func NewService(logger *slog.Logger, reminders reminderRepo, customers customerReader) *Service {
	return &Service{
		log:       logger.With("service", "reminder"),
		reminders: reminders,
		customers: customers,
	}
}

func scopeFor(ctx context.Context, action access.Action) (access.Scope, error) {
	scope, ok := access.FromCtx(ctx)
	if !ok {
		return access.Scope{}, domain.ErrUnauthorized
	}
	if !access.Can(scope.Role, access.EntityReminder, action, true) {
		return access.Scope{}, domain.ErrForbidden
	}
	return scope, nil
}

// checkCustomerVisible verifies the attachment target exists within the
// caller's scope. A nil id means the reminder stands alone.
func (s *Service) checkCustomerVisible(ctx context.Context, scope access.Scope, customerID *uuid.UUID) error {
	if customerID == nil {
		return nil
	}
	if _, err := s.customers.GetByID(ctx, scope, *customerID); err != nil {
		return err
	}
	return nil
}
