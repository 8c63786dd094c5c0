// Package customer implements the customer directory operations.
package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/adapter/postgres/customer"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// customerRepo defines the customer repository interface needed by the service.
type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, scope access.Scope, f customer.Filter) ([]*domain.Customer, error)
	Count(ctx context.Context, scope access.Scope) (int, error)
	Update(ctx context.Context, scope access.Scope, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error
}

// Service implements customer operations.
type Service struct {
	log       *slog.Logger
	customers customerRepo
}

// NewService creates a new customer service instance.
func NewService(logger *slog.Logger, customers customerRepo) *Service {
	return &Service{
		log:       logger.With("service", "customer"),
		customers: customers,
	}
}

// scopeFor extracts the caller's scope and verifies the action is allowed
// for their role. Ownership of specific rows is enforced by the repository.
func scopeFor(ctx context.Context, action access.Action) (access.Scope, error) {
	scope, ok := access.FromCtx(ctx)
	if !ok {
		return access.Scope{}, domain.ErrUnauthorized
	}
	if !access.Can(scope.Role, access.EntityCustomer, action, true) {
		return access.Scope{}, domain.ErrForbidden
	}
	return scope, nil
}
