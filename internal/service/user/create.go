package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// Create provisions an account with the given role. The user row and its
// profile are written in one transaction so no account ever exists in the
// role-less state.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.UserAccount, error) {
	if _, err := adminScope(ctx); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	p := &domain.Profile{
		UserID:    u.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		Phone:     input.Phone,
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.users.Create(ctx, u)
		if err != nil {
			return err
		}
		_, err = s.profiles.Create(ctx, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "account created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", input.Role.String()))

	return &domain.UserAccount{
		ID:        created.ID,
		Email:     created.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.Role,
		Phone:     p.Phone,
		CreatedAt: created.CreatedAt,
	}, nil
}
