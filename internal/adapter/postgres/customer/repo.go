// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	postgres "github.com/ventasuite/crm-backend/internal/adapter/postgres"
	"github.com/ventasuite/crm-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "customers"

var columns = []string{
	"id", "name", "phone", "email", "tax_id", "company_name", "representative",
	"notes", "next_call_at", "next_visit_at", "next_meeting_at",
	"created_by", "created_at", "updated_at",
}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	Name           *string    `db:"name"`
	Phone          *string    `db:"phone"`
	Email          *string    `db:"email"`
	TaxID          *string    `db:"tax_id"`
	CompanyName    *string    `db:"company_name"`
	Representative *string    `db:"representative"`
	Notes          *string    `db:"notes"`
	NextCallAt     *time.Time `db:"next_call_at"`
	NextVisitAt    *time.Time `db:"next_visit_at"`
	NextMeetingAt  *time.Time `db:"next_meeting_at"`
	CreatedBy      uuid.UUID  `db:"created_by"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:             r.ID,
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		TaxID:          r.TaxID,
		CompanyName:    r.CompanyName,
		Representative: r.Representative,
		Notes:          r.Notes,
		NextCallAt:     r.NextCallAt,
		NextVisitAt:    r.NextVisitAt,
		NextMeetingAt:  r.NextMeetingAt,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// scoped appends the caller's visibility predicate. Administrators see
// everything; advisors and clients see only customers they created.
func scoped(b sq.SelectBuilder, scope access.Scope) sq.SelectBuilder {
	if scope.SeesAll() {
		return b
	}
	return b.Where(sq.Eq{"created_by": scope.UserID})
}

// Create inserts a new customer and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "name", "phone", "email", "tax_id", "company_name",
			"representative", "notes", "next_call_at", "next_visit_at",
			"next_meeting_at", "created_by").
		Values(c.ID, c.Name, c.Phone, c.Email, c.TaxID, c.CompanyName,
			c.Representative, c.Notes, c.NextCallAt, c.NextVisitAt,
			c.NextMeetingAt, c.CreatedBy).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a customer visible to the scope.
// Returns domain.ErrNotFound if the row does not exist or is out of scope.
func (r *Repo) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(qb.Select(columns...).From(table).Where(sq.Eq{"id": id}), scope).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return out.toDomain(), nil
}

// GetManyByIDs returns the customers among ids that are visible to the scope.
// Missing or out-of-scope ids are simply absent from the result.
func (r *Repo) GetManyByIDs(ctx context.Context, scope access.Scope, ids []uuid.UUID) ([]*domain.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(qb.Select(columns...).From(table).Where(sq.Eq{"id": ids}), scope).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}

	out := make([]*domain.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// List returns customers visible to the scope, newest first, with the
// optional upcoming-contact filter applied.
func (r *Repo) List(ctx context.Context, scope access.Scope, f Filter) ([]*domain.Customer, error) {
	f.normalize()
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(qb.Select(columns...).From(table), scope)
	if f.UpcomingContact != nil {
		if col := contactColumn(*f.UpcomingContact); col != "" {
			b = b.Where(col + " IS NOT NULL")
		}
	}
	sql, args, err := b.OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}

	out := make([]*domain.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Count returns the number of customers visible to the scope.
func (r *Repo) Count(ctx context.Context, scope access.Scope) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(qb.Select("COUNT(*)").From(table), scope).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "customer", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "customer", uuid.Nil)
	}
	return count, nil
}

// Update modifies a customer's descriptive fields. The scope predicate is
// part of the WHERE clause, so out-of-scope updates report ErrNotFound.
func (r *Repo) Update(ctx context.Context, scope access.Scope, c *domain.Customer) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Update(table).
		Set("name", c.Name).
		Set("phone", c.Phone).
		Set("email", c.Email).
		Set("tax_id", c.TaxID).
		Set("company_name", c.CompanyName).
		Set("representative", c.Representative).
		Set("notes", c.Notes).
		Set("next_call_at", c.NextCallAt).
		Set("next_visit_at", c.NextVisitAt).
		Set("next_meeting_at", c.NextMeetingAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return out.toDomain(), nil
}

// Delete removes a customer visible to the scope.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Delete(table).Where(sq.Eq{"id": id})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "customer", id)
	}
	return nil
}

func joinColumns() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}
