package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. PasswordHash is the bcrypt
// hash and never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the directory data attached to a user: display names,
// contact phone, and the authorization role. A user without a profile row
// is treated as RoleClient everywhere.
type Profile struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Role      UserRole
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultProfile returns the least-privilege profile created when a user
// has no profile row.
func DefaultProfile(userID uuid.UUID) Profile {
	return Profile{
		UserID: userID,
		Role:   RoleClient,
	}
}

// UserAccount is a user joined with their profile, as shown on the
// user-administration screen.
type UserAccount struct {
	ID        uuid.UUID
	Email     string
	FirstName *string
	LastName  *string
	Role      UserRole
	Phone     *string
	CreatedAt time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
