package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// ResolveRole returns the authorization role of one user from their profile.
// A user with no profile row, or whose profile cannot be read, acts as a
// client: role resolution must never grant more than it can prove. When the
// profile row is missing a default one is created best-effort so the next
// resolution is a plain read.
func (s *Service) ResolveRole(ctx context.Context, userID uuid.UUID) domain.UserRole {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		if profile.Role.IsValid() {
			return profile.Role
		}
		s.log.WarnContext(ctx, "profile has invalid role, acting as client",
			slog.String("user_id", userID.String()),
			slog.String("role", profile.Role.String()))
		return domain.RoleClient
	}

	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "user has no profile, creating default",
			slog.String("user_id", userID.String()))

		p := domain.DefaultProfile(userID)
		if _, err := s.profiles.Create(ctx, &p); err != nil {
			s.log.WarnContext(ctx, "default profile creation failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return domain.RoleClient
	}

	s.log.WarnContext(ctx, "profile lookup failed, acting as client",
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()))
	return domain.RoleClient
}
