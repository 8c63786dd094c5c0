// Package user implements the administrator-only account management
// operations: listing accounts, creating users with a role, and changing
// roles, profiles, and passwords.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/config"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAccounts(ctx context.Context) ([]*domain.UserAccount, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// profileRepo defines the profile repository interface needed by the service.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
}

// tokenRevoker invalidates sessions when an account changes hands.
type tokenRevoker interface {
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// txManager runs a function inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account administration.
type Service struct {
	log      *slog.Logger
	users    userRepo
	profiles profileRepo
	tokens   tokenRevoker
	tx       txManager
	cfg      config.AuthConfig
}

// NewService creates a new user administration service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	tokens tokenRevoker,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		tx:       tx,
		cfg:      cfg,
	}
}

// adminScope extracts the caller's scope and requires the administrator
// role. Every operation in this service is administrator-only.
func adminScope(ctx context.Context) (access.Scope, error) {
	scope, ok := access.FromCtx(ctx)
	if !ok {
		return access.Scope{}, domain.ErrUnauthorized
	}
	if !access.Can(scope.Role, access.EntityUser, access.ActionView, false) {
		return access.Scope{}, domain.ErrForbidden
	}
	return scope, nil
}
