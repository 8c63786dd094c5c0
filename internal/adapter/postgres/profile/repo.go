// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ventasuite/crm-backend/internal/adapter/postgres"
	"github.com/ventasuite/crm-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "profiles"

const returning = "RETURNING user_id, first_name, last_name, role, phone, created_at, updated_at"

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	UserID    uuid.UUID `db:"user_id"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Role      string    `db:"role"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Profile {
	return &domain.Profile{
		UserID:    r.UserID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      domain.UserRole(r.Role),
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByUserID returns the profile of one user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("user_id", "first_name", "last_name", "role", "phone", "created_at", "updated_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return out.toDomain(), nil
}

// Create inserts a profile row for a user.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("user_id", "first_name", "last_name", "role", "phone").
		Values(p.UserID, p.FirstName, p.LastName, p.Role.String(), p.Phone).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}
	return out.toDomain(), nil
}

// Update rewrites a profile and returns the new row.
func (r *Repo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("role", p.Role.String()).
		Set("phone", p.Phone).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": p.UserID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}
	return out.toDomain(), nil
}

// SetRole changes only the role of one user's profile.
func (r *Repo) SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("role", role.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "profile", userID)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "profile", userID)
	}
	return nil
}
