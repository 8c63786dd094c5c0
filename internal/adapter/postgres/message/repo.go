// Package message implements the Message repository using PostgreSQL.
package message

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

const table = "messages"

// selectColumns joins customers for the display name and phone shown on
// the messages screen.
var selectColumns = []string{
	"m.id", "m.customer_id", "m.body", "m.direction", "m.attachment_key",
	"m.created_by", "m.created_at",
	"c.name AS customer_name", "c.phone AS customer_phone",
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	CustomerID    uuid.UUID  `db:"customer_id"`
	Body          string     `db:"body"`
	Direction     string     `db:"direction"`
	AttachmentKey *string    `db:"attachment_key"`
	CreatedBy     uuid.UUID  `db:"created_by"`
	CreatedAt     time.Time  `db:"created_at"`
	CustomerName  *string    `db:"customer_name"`
	CustomerPhone *string    `db:"customer_phone"`
}

func (r row) toDomain() *domain.Message {
	return &domain.Message{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		Body:          r.Body,
		Direction:     domain.MessageDirection(r.Direction),
		AttachmentKey: r.AttachmentKey,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}

// scoped appends the caller's visibility predicate: advisors see messages
// they created, clients see messages of customers they created.
func scoped(b sq.SelectBuilder, scope access.Scope) sq.SelectBuilder {
	switch {
	case scope.SeesAll():
		return b
	case scope.Role == domain.RoleAdvisor:
		return b.Where(sq.Eq{"m.created_by": scope.UserID})
	default:
		return b.Where(sq.Eq{"c.created_by": scope.UserID})
	}
}

// Create inserts a message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "customer_id", "body", "direction", "attachment_key", "created_by").
		Values(m.ID, m.CustomerID, m.Body, m.Direction.String(), m.AttachmentKey, m.CreatedBy).
		Suffix("RETURNING id, customer_id, body, direction, attachment_key, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}
	return out.toDomain(), nil
}

// ListByCustomer returns the messages of one customer visible to the scope,
// oldest first, the way a conversation reads.
func (r *Repo) ListByCustomer(ctx context.Context, scope access.Scope, customerID uuid.UUID) ([]*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select(selectColumns...).
			From(table+" m").
			Join("customers c ON c.id = m.customer_id").
			Where(sq.Eq{"m.customer_id": customerID}),
		scope,
	).OrderBy("m.created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", uuid.Nil)
	}

	out := make([]*domain.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// GetByID returns one message visible to the scope.
func (r *Repo) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select(selectColumns...).
			From(table+" m").
			Join("customers c ON c.id = m.customer_id").
			Where(sq.Eq{"m.id": id}),
		scope,
	).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", id)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	return out.toDomain(), nil
}

// Count returns the number of messages visible to the scope.
func (r *Repo) Count(ctx context.Context, scope access.Scope) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select("COUNT(*)").
			From(table+" m").
			Join("customers c ON c.id = m.customer_id"),
		scope,
	).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "message", uuid.Nil)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "message", uuid.Nil)
	}
	return count, nil
}

// Delete removes a message. Non-administrators can only delete messages
// they created; out-of-scope deletes report ErrNotFound.
func (r *Repo) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Delete(table).Where(sq.Eq{"id": id})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "message", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "message", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "message", id)
	}
	return nil
}
