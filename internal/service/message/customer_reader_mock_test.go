package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

var _ customerReader = &customerReaderMock{}

type customerReaderMock struct {
	GetByIDFunc      func(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error)
	GetManyByIDsFunc func(ctx context.Context, scope access.Scope, ids []uuid.UUID) ([]*domain.Customer, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			Scope access.Scope
			ID    uuid.UUID
		}
		GetManyByIDs []struct {
			Ctx   context.Context
			Scope access.Scope
			IDs   []uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetManyByIDs sync.RWMutex
}

func (mock *customerReaderMock) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerReaderMock.GetByIDFunc: method is nil but customerReader.GetByID was just called")
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

func (mock *customerReaderMock) GetByIDCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	ID    uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerReaderMock) GetManyByIDs(ctx context.Context, scope access.Scope, ids []uuid.UUID) ([]*domain.Customer, error) {
	if mock.GetManyByIDsFunc == nil {
		panic("customerReaderMock.GetManyByIDsFunc: method is nil but customerReader.GetManyByIDs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
		IDs   []uuid.UUID
	}{Ctx: ctx, Scope: scope, IDs: ids}
	mock.lockGetManyByIDs.Lock()
	mock.calls.GetManyByIDs = append(mock.calls.GetManyByIDs, callInfo)
	mock.lockGetManyByIDs.Unlock()
	return mock.GetManyByIDsFunc(ctx, scope, ids)
}

func (mock *customerReaderMock) GetManyByIDsCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	IDs   []uuid.UUID
} {
	mock.lockGetManyByIDs.RLock()
	calls := mock.calls.GetManyByIDs
	mock.lockGetManyByIDs.RUnlock()
	return calls
}
