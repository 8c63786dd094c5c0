package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens of the authenticated user.
// Returns ErrUnauthorized if no user is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}
