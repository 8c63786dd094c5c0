package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc         func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByCustomerFunc func(ctx context.Context, scope access.Scope, customerID uuid.UUID) ([]*domain.Message, error)
	GetByIDFunc        func(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Message, error)
	CountFunc          func(ctx context.Context, scope access.Scope) (int, error)
	DeleteFunc         func(ctx context.Context, scope access.Scope, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Message
		}
		ListByCustomer []struct {
			Ctx        context.Context
			Scope      access.Scope
			CustomerID uuid.UUID
		}
		GetByID []struct {
			Ctx   context.Context
			Scope access.Scope
			ID    uuid.UUID
		}
		Count []struct {
			Ctx   context.Context
			Scope access.Scope
		}
		Delete []struct {
			Ctx   context.Context
			Scope access.Scope
			ID    uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockListByCustomer sync.RWMutex
	lockGetByID        sync.RWMutex
	lockCount          sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Message
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListByCustomer(ctx context.Context, scope access.Scope, customerID uuid.UUID) ([]*domain.Message, error) {
	if mock.ListByCustomerFunc == nil {
		panic("messageRepoMock.ListByCustomerFunc: method is nil but messageRepo.ListByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Scope      access.Scope
		CustomerID uuid.UUID
	}{Ctx: ctx, Scope: scope, CustomerID: customerID}
	mock.lockListByCustomer.Lock()
	mock.calls.ListByCustomer = append(mock.calls.ListByCustomer, callInfo)
	mock.lockListByCustomer.Unlock()
	return mock.ListByCustomerFunc(ctx, scope, customerID)
}

func (mock *messageRepoMock) ListByCustomerCalls() []struct {
	Ctx        context.Context
	Scope      access.Scope
	CustomerID uuid.UUID
} {
	mock.lockListByCustomer.RLock()
	calls := mock.calls.ListByCustomer
	mock.lockListByCustomer.RUnlock()
	return calls
}

func (mock *messageRepoMock) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Message, error) {
	if mock.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, scope, id)
}

func (mock *messageRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	ID    uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *messageRepoMock) Count(ctx context.Context, scope access.Scope) (int, error) {
	if mock.CountFunc == nil {
		panic("messageRepoMock.CountFunc: method is nil but messageRepo.Count was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
	}{Ctx: ctx, Scope: scope}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, scope)
}

func (mock *messageRepoMock) CountCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *messageRepoMock) Delete(ctx context.Context, scope access.Scope, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("messageRepoMock.DeleteFunc: method is nil but messageRepo.Delete was just called")
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

func (mock *messageRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	ID    uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
