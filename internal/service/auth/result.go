package auth

import "github.com/ventasuite/crm-backend/internal/domain"

// AuthResult is returned by operations that establish a session.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
	Role         domain.UserRole
}
