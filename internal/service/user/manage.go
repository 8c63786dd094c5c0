package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// ListAccounts returns every account with its role, newest first.
func (s *Service) ListAccounts(ctx context.Context) ([]*domain.UserAccount, error) {
	if _, err := adminScope(ctx); err != nil {
		return nil, err
	}

	out, err := s.users.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListAccounts: %w", err)
	}
	return out, nil
}

// SetRole changes an account's role and revokes its sessions so the old
// role stops working at the next token refresh.
func (s *Service) SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	scope, err := adminScope(ctx)
	if err != nil {
		return err
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "unknown role")
	}
	// Administrators cannot lower their own role; another administrator
	// has to do it.
	if userID == scope.UserID {
		return domain.NewValidationError("user_id", "cannot change own role")
	}

	if err := s.profiles.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The account predates profiles; create one with the role.
			p := domain.DefaultProfile(userID)
			p.Role = role
			if _, err := s.profiles.Create(ctx, &p); err != nil {
				return fmt.Errorf("user.SetRole: %w", err)
			}
		} else {
			return fmt.Errorf("user.SetRole: %w", err)
		}
	}

	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("user.SetRole revoke sessions: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()))

	return nil
}

// UpdateProfile rewrites an account's display fields.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	if _, err := adminScope(ctx); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	current.FirstName = input.FirstName
	current.LastName = input.LastName
	current.Phone = input.Phone

	updated, err := s.profiles.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	return updated, nil
}

// SetEmail changes the address an account signs in with.
func (s *Service) SetEmail(ctx context.Context, userID uuid.UUID, email string) error {
	if _, err := adminScope(ctx); err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if !strings.Contains(email, "@") || len(email) > maxEmailLen {
		return domain.NewValidationError("email", "invalid")
	}

	if _, err := s.users.UpdateEmail(ctx, userID, email); err != nil {
		return fmt.Errorf("user.SetEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email changed",
		slog.String("user_id", userID.String()))

	return nil
}

// SetPassword replaces an account's password and revokes its sessions.
func (s *Service) SetPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if _, err := adminScope(ctx); err != nil {
		return err
	}

	if len(password) < s.cfg.MinPasswordLen {
		return domain.NewValidationError("password", "too short")
	}
	if len(password) > maxPasswordLen {
		return domain.NewValidationError("password", "too long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("user.SetPassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("user.SetPassword: %w", err)
	}
	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("user.SetPassword revoke sessions: %w", err)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("user_id", userID.String()))

	return nil
}

// Delete removes an account. Administrators cannot delete themselves.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	scope, err := adminScope(ctx)
	if err != nil {
		return err
	}
	if userID == scope.UserID {
		return domain.NewValidationError("user_id", "cannot delete own account")
	}

	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("user.Delete revoke sessions: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()))

	return nil
}
