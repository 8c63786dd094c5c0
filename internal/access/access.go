// Package access centralizes the role-based visibility and mutation rules
// that every screen of the CRM shares. Services consult one capability
// function instead of scattering role checks, and repositories receive a
// Scope that narrows list queries to what the caller may see.
//
// These checks duplicate what the database grants enforce; they exist so
// that disallowed actions fail before reaching the storage layer.
package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/pkg/ctxutil"
)

// Entity identifies the kind of record an action targets.
type Entity string

const (
	EntityCustomer Entity = "customer"
	EntityMessage  Entity = "message"
	EntityReminder Entity = "reminder"
	EntityUser     Entity = "user"
)

// Action is a mutating or reading operation on an entity.
type Action string

const (
	ActionView     Action = "view"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionSend     Action = "send"
	ActionSchedule Action = "schedule"
)

// Scope is the caller's identity as seen by list queries: who they are and
// which tier they belong to. Repositories translate it into WHERE clauses.
type Scope struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// SeesAll reports whether the scope is unrestricted (administrator).
func (s Scope) SeesAll() bool {
	return s.Role.IsAdministrator()
}

// FromCtx builds the caller's scope from the request context.
// Returns false if the context carries no authenticated user.
func FromCtx(ctx context.Context) (Scope, bool) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Scope{}, false
	}
	role := ctxutil.RoleFromCtx(ctx)
	if !role.IsValid() {
		// Unknown role claims degrade to least privilege.
		role = domain.RoleClient
	}
	return Scope{UserID: userID, Role: role}, true
}

// Can resolves whether a role may perform an action on an entity.
// owns reports whether the acting user created the target row; it is
// ignored for creates.
func Can(role domain.UserRole, entity Entity, action Action, owns bool) bool {
	if role.IsAdministrator() {
		return true
	}

	// User administration is reserved for administrators.
	if entity == EntityUser {
		return false
	}

	switch role {
	case domain.RoleAdvisor:
		switch action {
		case ActionView, ActionCreate, ActionSend, ActionSchedule:
			return true
		case ActionUpdate, ActionDelete:
			return owns
		}
	case domain.RoleClient:
		// Clients only read rows linked to their own customers.
		return action == ActionView
	}

	return false
}

// CanMutate reports whether the scope may perform the given mutating action.
func (s Scope) CanMutate(entity Entity, action Action, creator uuid.UUID) bool {
	return Can(s.Role, entity, action, creator == s.UserID)
}

// Allowed returns the full set of actions the role may perform on an
// entity it owns (or not). Clients use this to render affordances.
func Allowed(role domain.UserRole, entity Entity, owns bool) []Action {
	all := []Action{ActionView, ActionCreate, ActionUpdate, ActionDelete, ActionSend, ActionSchedule}
	var out []Action
	for _, a := range all {
		if Can(role, entity, a, owns) {
			out = append(out, a)
		}
	}
	return out
}
