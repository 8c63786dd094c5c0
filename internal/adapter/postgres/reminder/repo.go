// Package reminder implements the Reminder repository using PostgreSQL.
package reminder

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

const table = "reminders"

var selectColumns = []string{
	"r.id", "r.customer_id", "r.title", "r.description", "r.due_at",
	"r.completed", "r.created_by", "r.created_at", "r.updated_at",
	"c.name AS customer_name",
}

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	CustomerID   *uuid.UUID `db:"customer_id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	DueAt        time.Time  `db:"due_at"`
	Completed    bool       `db:"completed"`
	CreatedBy    uuid.UUID  `db:"created_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	CustomerName *string    `db:"customer_name"`
}

func (r row) toDomain() *domain.Reminder {
	return &domain.Reminder{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		Title:        r.Title,
		Description:  r.Description,
		DueAt:        r.DueAt,
		Completed:    r.Completed,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		CustomerName: r.CustomerName,
	}
}

// Reminders may exist without a customer, so the customer join is LEFT and
// client scoping only matches reminders attached to the caller's customers.
func scoped(b sq.SelectBuilder, scope access.Scope) sq.SelectBuilder {
	switch {
	case scope.SeesAll():
		return b
	case scope.Role == domain.RoleAdvisor:
		return b.Where(sq.Eq{"r.created_by": scope.UserID})
	default:
		return b.Where(sq.Eq{"c.created_by": scope.UserID})
	}
}

// Create inserts a reminder and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "customer_id", "title", "description", "due_at", "created_by").
		Values(rem.ID, rem.CustomerID, rem.Title, rem.Description, rem.DueAt, rem.CreatedBy).
		Suffix("RETURNING id, customer_id, title, description, due_at, completed, created_by, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns one reminder visible to the scope.
func (r *Repo) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select(selectColumns...).
			From(table+" r").
			LeftJoin("customers c ON c.id = r.customer_id").
			Where(sq.Eq{"r.id": id}),
		scope,
	).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}
	return out.toDomain(), nil
}

// List returns reminders visible to the scope, filtered by status, soonest
// due date first.
func (r *Repo) List(ctx context.Context, scope access.Scope, status domain.ReminderStatus) ([]*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(
		qb.Select(selectColumns...).
			From(table+" r").
			LeftJoin("customers c ON c.id = r.customer_id"),
		scope,
	)
	switch status {
	case domain.ReminderPending:
		b = b.Where(sq.Eq{"r.completed": false})
	case domain.ReminderCompleted:
		b = b.Where(sq.Eq{"r.completed": true})
	}

	sql, args, err := b.OrderBy("r.due_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reminder", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", uuid.Nil)
	}

	out := make([]*domain.Reminder, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CountPending returns the number of pending reminders visible to the scope.
func (r *Repo) CountPending(ctx context.Context, scope access.Scope) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select("COUNT(*)").
			From(table+" r").
			LeftJoin("customers c ON c.id = r.customer_id").
			Where(sq.Eq{"r.completed": false}),
		scope,
	).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "reminder", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "reminder", uuid.Nil)
	}
	return count, nil
}

// Update rewrites a reminder's editable fields and returns the new row.
func (r *Repo) Update(ctx context.Context, scope access.Scope, rem *domain.Reminder) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Update(table).
		Set("customer_id", rem.CustomerID).
		Set("title", rem.Title).
		Set("description", rem.Description).
		Set("due_at", rem.DueAt).
		Set("completed", rem.Completed).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": rem.ID})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.
		Suffix("RETURNING id, customer_id, title, description, due_at, completed, created_by, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}
	return out.toDomain(), nil
}

// SetCompleted flips the completion flag and returns the new row.
func (r *Repo) SetCompleted(ctx context.Context, scope access.Scope, id uuid.UUID, completed bool) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Update(table).
		Set("completed", completed).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.
		Suffix("RETURNING id, customer_id, title, description, due_at, completed, created_by, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}
	return out.toDomain(), nil
}

// Delete removes a reminder.
func (r *Repo) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Delete(table).Where(sq.Eq{"id": id})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "reminder", id)
	}
	return nil
}
