// Package scheduled implements the ScheduledMessage repository using PostgreSQL.
package scheduled

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

const table = "scheduled_messages"

var selectColumns = []string{
	"s.id", "s.customer_id", "s.body", "s.send_at", "s.attachment_key",
	"s.dispatched_at", "s.created_by", "s.created_at",
	"c.name AS customer_name", "c.phone AS customer_phone",
}

// Repo provides scheduled message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new scheduled message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	CustomerID    uuid.UUID  `db:"customer_id"`
	Body          string     `db:"body"`
	SendAt        time.Time  `db:"send_at"`
	AttachmentKey *string    `db:"attachment_key"`
	DispatchedAt  *time.Time `db:"dispatched_at"`
	CreatedBy     uuid.UUID  `db:"created_by"`
	CreatedAt     time.Time  `db:"created_at"`
	CustomerName  *string    `db:"customer_name"`
	CustomerPhone *string    `db:"customer_phone"`
}

func (r row) toDomain() *domain.ScheduledMessage {
	return &domain.ScheduledMessage{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		Body:          r.Body,
		SendAt:        r.SendAt,
		AttachmentKey: r.AttachmentKey,
		DispatchedAt:  r.DispatchedAt,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}

func scoped(b sq.SelectBuilder, scope access.Scope) sq.SelectBuilder {
	switch {
	case scope.SeesAll():
		return b
	case scope.Role == domain.RoleAdvisor:
		return b.Where(sq.Eq{"s.created_by": scope.UserID})
	default:
		return b.Where(sq.Eq{"c.created_by": scope.UserID})
	}
}

// Create inserts a scheduled message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.ScheduledMessage) (*domain.ScheduledMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "customer_id", "body", "send_at", "attachment_key", "created_by").
		Values(m.ID, m.CustomerID, m.Body, m.SendAt, m.AttachmentKey, m.CreatedBy).
		Suffix("RETURNING id, customer_id, body, send_at, attachment_key, dispatched_at, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scheduled message", m.ID)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scheduled message", m.ID)
	}
	return out.toDomain(), nil
}

// List returns scheduled messages visible to the scope, pending first,
// closest send time on top.
func (r *Repo) List(ctx context.Context, scope access.Scope) ([]*domain.ScheduledMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := scoped(
		qb.Select(selectColumns...).
			From(table+" s").
			Join("customers c ON c.id = s.customer_id"),
		scope,
	).OrderBy("s.dispatched_at ASC NULLS FIRST", "s.send_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scheduled message", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scheduled message", uuid.Nil)
	}

	out := make([]*domain.ScheduledMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// ListDue returns up to limit pending messages whose send time has passed.
// Used by the dispatcher; not scope-filtered.
func (r *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(selectColumns...).
		From(table + " s").
		Join("customers c ON c.id = s.customer_id").
		Where(sq.Eq{"s.dispatched_at": nil}).
		Where(sq.LtOrEq{"s.send_at": now}).
		OrderBy("s.send_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scheduled message", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scheduled message", uuid.Nil)
	}

	out := make([]*domain.ScheduledMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// MarkDispatched stamps a pending message as dispatched. Returns
// ErrNotFound when the message is unknown or already dispatched, so two
// dispatcher runs cannot both claim the same row.
func (r *Repo) MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("dispatched_at", at).
		Where(sq.Eq{"id": id, "dispatched_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "scheduled message", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "scheduled message", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "scheduled message", id)
	}
	return nil
}

// Delete removes a scheduled message that has not been dispatched yet.
func (r *Repo) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := qb.Delete(table).Where(sq.Eq{"id": id, "dispatched_at": nil})
	if !scope.SeesAll() {
		b = b.Where(sq.Eq{"created_by": scope.UserID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "scheduled message", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "scheduled message", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "scheduled message", id)
	}
	return nil
}
