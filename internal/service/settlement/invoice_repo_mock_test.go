package settlement

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"sync"
)

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetForUpdateFunc       func(ctx context.Context, id int64) (*domain.Invoice, error)
	ListItemsFunc          func(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error)
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.InvoiceSummary, error)
	CountByUserFunc        func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc             func(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	LinkContractFunc       func(ctx context.Context, id int64, contractInvoiceID uint64) error
	UpdateStatusFunc       func(ctx context.Context, id int64, status domain.InvoiceStatus) error
	SetTotalsFunc          func(ctx context.Context, id int64, totals domain.LedgerTotals) error
	ReplaceItemsFunc       func(ctx context.Context, id int64, items []domain.InvoiceItem) ([]domain.InvoiceItem, error)
	IncrementVersionFunc   func(ctx context.Context, id int64) (int, error)
	CreateModificationFunc func(ctx context.Context, m *domain.InvoiceModification) (*domain.InvoiceModification, error)
	ListModificationsFunc  func(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		ListItems []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Inv *domain.Invoice
		}
		LinkContract []struct {
			Ctx               context.Context
			Id                int64
			ContractInvoiceID uint64
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     int64
			Status domain.InvoiceStatus
		}
		SetTotals []struct {
			Ctx    context.Context
			Id     int64
			Totals domain.LedgerTotals
		}
		ReplaceItems []struct {
			Ctx   context.Context
			Id    int64
			Items []domain.InvoiceItem
		}
		IncrementVersion []struct {
			Ctx context.Context
			Id  int64
		}
		CreateModification []struct {
			Ctx context.Context
			M   *domain.InvoiceModification
		}
		ListModifications []struct {
			Ctx       context.Context
			InvoiceID int64
		}
	}
	lockGetByID            sync.RWMutex
	lockGetForUpdate       sync.RWMutex
	lockListItems          sync.RWMutex
	lockListByUser         sync.RWMutex
	lockCountByUser        sync.RWMutex
	lockCreate             sync.RWMutex
	lockLinkContract       sync.RWMutex
	lockUpdateStatus       sync.RWMutex
	lockSetTotals          sync.RWMutex
	lockReplaceItems       sync.RWMutex
	lockIncrementVersion   sync.RWMutex
	lockCreateModification sync.RWMutex
	lockListModifications  sync.RWMutex
}

func (mock *invoiceRepoMock) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	if mock.GetByIDFunc == nil {
		panic("invoiceRepoMock.GetByIDFunc: method is nil but invoiceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *invoiceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) GetForUpdate(ctx context.Context, id int64) (*domain.Invoice, error) {
	if mock.GetForUpdateFunc == nil {
		panic("invoiceRepoMock.GetForUpdateFunc: method is nil but invoiceRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *invoiceRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ListItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	if mock.ListItemsFunc == nil {
		panic("invoiceRepoMock.ListItemsFunc: method is nil but invoiceRepo.ListItems was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, invoiceID)
}

func (mock *invoiceRepoMock) ListItemsCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockListItems.RLock()
	calls = mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.InvoiceSummary, error) {
	if mock.ListByUserFunc == nil {
		panic("invoiceRepoMock.ListByUserFunc: method is nil but invoiceRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *invoiceRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("invoiceRepoMock.CountByUserFunc: method is nil but invoiceRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *invoiceRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountByUser.RLock()
	calls = mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if mock.CreateFunc == nil {
		panic("invoiceRepoMock.CreateFunc: method is nil but invoiceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv *domain.Invoice
	}{Ctx: ctx, Inv: inv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inv)
}

func (mock *invoiceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Inv *domain.Invoice
} {
	var calls []struct {
		Ctx context.Context
		Inv *domain.Invoice
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) LinkContract(ctx context.Context, id int64, contractInvoiceID uint64) error {
	if mock.LinkContractFunc == nil {
		panic("invoiceRepoMock.LinkContractFunc: method is nil but invoiceRepo.LinkContract was just called")
	}
	callInfo := struct {
		Ctx               context.Context
		Id                int64
		ContractInvoiceID uint64
	}{Ctx: ctx, Id: id, ContractInvoiceID: contractInvoiceID}
	mock.lockLinkContract.Lock()
	mock.calls.LinkContract = append(mock.calls.LinkContract, callInfo)
	mock.lockLinkContract.Unlock()
	return mock.LinkContractFunc(ctx, id, contractInvoiceID)
}

func (mock *invoiceRepoMock) LinkContractCalls() []struct {
	Ctx               context.Context
	Id                int64
	ContractInvoiceID uint64
} {
	var calls []struct {
		Ctx               context.Context
		Id                int64
		ContractInvoiceID uint64
	}
	mock.lockLinkContract.RLock()
	calls = mock.calls.LinkContract
	mock.lockLinkContract.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("invoiceRepoMock.UpdateStatusFunc: method is nil but invoiceRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Status domain.InvoiceStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *invoiceRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     int64
	Status domain.InvoiceStatus
} {
	var calls []struct {
		Ctx    context.Context
		Id     int64
		Status domain.InvoiceStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) SetTotals(ctx context.Context, id int64, totals domain.LedgerTotals) error {
	if mock.SetTotalsFunc == nil {
		panic("invoiceRepoMock.SetTotalsFunc: method is nil but invoiceRepo.SetTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Totals domain.LedgerTotals
	}{Ctx: ctx, Id: id, Totals: totals}
	mock.lockSetTotals.Lock()
	mock.calls.SetTotals = append(mock.calls.SetTotals, callInfo)
	mock.lockSetTotals.Unlock()
	return mock.SetTotalsFunc(ctx, id, totals)
}

func (mock *invoiceRepoMock) SetTotalsCalls() []struct {
	Ctx    context.Context
	Id     int64
	Totals domain.LedgerTotals
} {
	var calls []struct {
		Ctx    context.Context
		Id     int64
		Totals domain.LedgerTotals
	}
	mock.lockSetTotals.RLock()
	calls = mock.calls.SetTotals
	mock.lockSetTotals.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ReplaceItems(ctx context.Context, id int64, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
	if mock.ReplaceItemsFunc == nil {
		panic("invoiceRepoMock.ReplaceItemsFunc: method is nil but invoiceRepo.ReplaceItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Items []domain.InvoiceItem
	}{Ctx: ctx, Id: id, Items: items}
	mock.lockReplaceItems.Lock()
	mock.calls.ReplaceItems = append(mock.calls.ReplaceItems, callInfo)
	mock.lockReplaceItems.Unlock()
	return mock.ReplaceItemsFunc(ctx, id, items)
}

func (mock *invoiceRepoMock) ReplaceItemsCalls() []struct {
	Ctx   context.Context
	Id    int64
	Items []domain.InvoiceItem
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Items []domain.InvoiceItem
	}
	mock.lockReplaceItems.RLock()
	calls = mock.calls.ReplaceItems
	mock.lockReplaceItems.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) IncrementVersion(ctx context.Context, id int64) (int, error) {
	if mock.IncrementVersionFunc == nil {
		panic("invoiceRepoMock.IncrementVersionFunc: method is nil but invoiceRepo.IncrementVersion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockIncrementVersion.Lock()
	mock.calls.IncrementVersion = append(mock.calls.IncrementVersion, callInfo)
	mock.lockIncrementVersion.Unlock()
	return mock.IncrementVersionFunc(ctx, id)
}

func (mock *invoiceRepoMock) IncrementVersionCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockIncrementVersion.RLock()
	calls = mock.calls.IncrementVersion
	mock.lockIncrementVersion.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) CreateModification(ctx context.Context, m *domain.InvoiceModification) (*domain.InvoiceModification, error) {
	if mock.CreateModificationFunc == nil {
		panic("invoiceRepoMock.CreateModificationFunc: method is nil but invoiceRepo.CreateModification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.InvoiceModification
	}{Ctx: ctx, M: m}
	mock.lockCreateModification.Lock()
	mock.calls.CreateModification = append(mock.calls.CreateModification, callInfo)
	mock.lockCreateModification.Unlock()
	return mock.CreateModificationFunc(ctx, m)
}

func (mock *invoiceRepoMock) CreateModificationCalls() []struct {
	Ctx context.Context
	M   *domain.InvoiceModification
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.InvoiceModification
	}
	mock.lockCreateModification.RLock()
	calls = mock.calls.CreateModification
	mock.lockCreateModification.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error) {
	if mock.ListModificationsFunc == nil {
		panic("invoiceRepoMock.ListModificationsFunc: method is nil but invoiceRepo.ListModifications was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockListModifications.Lock()
	mock.calls.ListModifications = append(mock.calls.ListModifications, callInfo)
	mock.lockListModifications.Unlock()
	return mock.ListModificationsFunc(ctx, invoiceID)
}

func (mock *invoiceRepoMock) ListModificationsCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockListModifications.RLock()
	calls = mock.calls.ListModifications
	mock.lockListModifications.RUnlock()
	return calls
}
