package settlement

import (
	"context"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"sync"
)

var _ journalRepo = &journalRepoMock{}

type journalRepoMock struct {
	RecordFunc         func(ctx context.Context, c *domain.UnappliedConfirmation) error
	ListUnresolvedFunc func(ctx context.Context, limit int) ([]domain.UnappliedConfirmation, error)
	ResolveFunc        func(ctx context.Context, txHash string) error

	calls struct {
		Record []struct {
			Ctx context.Context
			C   *domain.UnappliedConfirmation
		}
		ListUnresolved []struct {
			Ctx   context.Context
			Limit int
		}
		Resolve []struct {
			Ctx    context.Context
			TxHash string
		}
	}
	lockRecord         sync.RWMutex
	lockListUnresolved sync.RWMutex
	lockResolve        sync.RWMutex
}

func (mock *journalRepoMock) Record(ctx context.Context, c *domain.UnappliedConfirmation) error {
	if mock.RecordFunc == nil {
		panic("journalRepoMock.RecordFunc: method is nil but journalRepo.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.UnappliedConfirmation
	}{Ctx: ctx, C: c}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, c)
}

func (mock *journalRepoMock) RecordCalls() []struct {
	Ctx context.Context
	C   *domain.UnappliedConfirmation
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.UnappliedConfirmation
	}
	mock.lockRecord.RLock()
	calls = mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *journalRepoMock) ListUnresolved(ctx context.Context, limit int) ([]domain.UnappliedConfirmation, error) {
	if mock.ListUnresolvedFunc == nil {
		panic("journalRepoMock.ListUnresolvedFunc: method is nil but journalRepo.ListUnresolved was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListUnresolved.Lock()
	mock.calls.ListUnresolved = append(mock.calls.ListUnresolved, callInfo)
	mock.lockListUnresolved.Unlock()
	return mock.ListUnresolvedFunc(ctx, limit)
}

func (mock *journalRepoMock) ListUnresolvedCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListUnresolved.RLock()
	calls = mock.calls.ListUnresolved
	mock.lockListUnresolved.RUnlock()
	return calls
}

func (mock *journalRepoMock) Resolve(ctx context.Context, txHash string) error {
	if mock.ResolveFunc == nil {
		panic("journalRepoMock.ResolveFunc: method is nil but journalRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TxHash string
	}{Ctx: ctx, TxHash: txHash}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, txHash)
}

func (mock *journalRepoMock) ResolveCalls() []struct {
	Ctx    context.Context
	TxHash string
} {
	var calls []struct {
		Ctx    context.Context
		TxHash string
	}
	mock.lockResolve.RLock()
	calls = mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
