package message

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

var _ scheduledRepo = &scheduledRepoMock{}

type scheduledRepoMock struct {
	CreateFunc         func(ctx context.Context, m *domain.ScheduledMessage) (*domain.ScheduledMessage, error)
	ListFunc           func(ctx context.Context, scope access.Scope) ([]*domain.ScheduledMessage, error)
	ListDueFunc        func(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledMessage, error)
	MarkDispatchedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFunc         func(ctx context.Context, scope access.Scope, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.ScheduledMessage
		}
		List []struct {
			Ctx   context.Context
			Scope access.Scope
		}
		ListDue []struct {
			Ctx   context.Context
			Now   time.Time
			Limit int
		}
		MarkDispatched []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		Delete []struct {
			Ctx   context.Context
			Scope access.Scope
			ID    uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockList           sync.RWMutex
	lockListDue        sync.RWMutex
	lockMarkDispatched sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *scheduledRepoMock) Create(ctx context.Context, m *domain.ScheduledMessage) (*domain.ScheduledMessage, error) {
	if mock.CreateFunc == nil {
		panic("scheduledRepoMock.CreateFunc: method is nil but scheduledRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.ScheduledMessage
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *scheduledRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.ScheduledMessage
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scheduledRepoMock) List(ctx context.Context, scope access.Scope) ([]*domain.ScheduledMessage, error) {
	if mock.ListFunc == nil {
		panic("scheduledRepoMock.ListFunc: method is nil but scheduledRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
	}{Ctx: ctx, Scope: scope}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope)
}

func (mock *scheduledRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scheduledRepoMock) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.ScheduledMessage, error) {
	if mock.ListDueFunc == nil {
		panic("scheduledRepoMock.ListDueFunc: method is nil but scheduledRepo.ListDue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Now   time.Time
		Limit int
	}{Ctx: ctx, Now: now, Limit: limit}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx, now, limit)
}

func (mock *scheduledRepoMock) ListDueCalls() []struct {
	Ctx   context.Context
	Now   time.Time
	Limit int
} {
	mock.lockListDue.RLock()
	calls := mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *scheduledRepoMock) MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkDispatchedFunc == nil {
		panic("scheduledRepoMock.MarkDispatchedFunc: method is nil but scheduledRepo.MarkDispatched was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockMarkDispatched.Lock()
	mock.calls.MarkDispatched = append(mock.calls.MarkDispatched, callInfo)
	mock.lockMarkDispatched.Unlock()
	return mock.MarkDispatchedFunc(ctx, id, at)
}

func (mock *scheduledRepoMock) MarkDispatchedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkDispatched.RLock()
	calls := mock.calls.MarkDispatched
	mock.lockMarkDispatched.RUnlock()
	return calls
}

func (mock *scheduledRepoMock) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("scheduledRepoMock.DeleteFunc: method is nil but scheduledRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, scope, id)
}

func (mock *scheduledRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	ID    uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
