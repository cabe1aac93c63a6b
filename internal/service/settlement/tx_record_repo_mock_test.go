package settlement

import (
	"context"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"sync"
)

var _ txRecordRepo = &txRecordRepoMock{}

type txRecordRepoMock struct {
	CreateFunc        func(ctx context.Context, rec *domain.TransactionRecord) (*domain.TransactionRecord, error)
	ExistsByHashFunc  func(ctx context.Context, txHash string) (bool, error)
	ListByInvoiceFunc func(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.TransactionRecord
		}
		ExistsByHash []struct {
			Ctx    context.Context
			TxHash string
		}
		ListByInvoice []struct {
			Ctx       context.Context
			InvoiceID int64
		}
	}
	lockCreate        sync.RWMutex
	lockExistsByHash  sync.RWMutex
	lockListByInvoice sync.RWMutex
}

func (mock *txRecordRepoMock) Create(ctx context.Context, rec *domain.TransactionRecord) (*domain.TransactionRecord, error) {
	if mock.CreateFunc == nil {
		panic("txRecordRepoMock.CreateFunc: method is nil but txRecordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.TransactionRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *txRecordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.TransactionRecord
} {
	var calls []struct {
		Ctx context.Context
		Rec *domain.TransactionRecord
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *txRecordRepoMock) ExistsByHash(ctx context.Context, txHash string) (bool, error) {
	if mock.ExistsByHashFunc == nil {
		panic("txRecordRepoMock.ExistsByHashFunc: method is nil but txRecordRepo.ExistsByHash was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TxHash string
	}{Ctx: ctx, TxHash: txHash}
	mock.lockExistsByHash.Lock()
	mock.calls.ExistsByHash = append(mock.calls.ExistsByHash, callInfo)
	mock.lockExistsByHash.Unlock()
	return mock.ExistsByHashFunc(ctx, txHash)
}

func (mock *txRecordRepoMock) ExistsByHashCalls() []struct {
	Ctx    context.Context
	TxHash string
} {
	var calls []struct {
		Ctx    context.Context
		TxHash string
	}
	mock.lockExistsByHash.RLock()
	calls = mock.calls.ExistsByHash
	mock.lockExistsByHash.RUnlock()
	return calls
}

func (mock *txRecordRepoMock) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error) {
	if mock.ListByInvoiceFunc == nil {
		panic("txRecordRepoMock.ListByInvoiceFunc: method is nil but txRecordRepo.ListByInvoice was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockListByInvoice.Lock()
	mock.calls.ListByInvoice = append(mock.calls.ListByInvoice, callInfo)
	mock.lockListByInvoice.Unlock()
	return mock.ListByInvoiceFunc(ctx, invoiceID)
}

func (mock *txRecordRepoMock) ListByInvoiceCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockListByInvoice.RLock()
	calls = mock.calls.ListByInvoice
	mock.lockListByInvoice.RUnlock()
	return calls
}
