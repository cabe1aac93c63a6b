package settlement

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/shopspring/decimal"
	"sync"
)

var _ participantRepo = &participantRepoMock{}

type participantRepoMock struct {
	GetFunc                   func(ctx context.Context, invoiceID int64, userID uuid.UUID) (*domain.Participant, error)
	ListByInvoiceFunc         func(ctx context.Context, invoiceID int64) ([]domain.Participant, error)
	TotalsFunc                func(ctx context.Context, invoiceID int64) (domain.LedgerTotals, error)
	CreateFunc                func(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	AddContributionFunc       func(ctx context.Context, invoiceID int64, userID uuid.UUID, amount decimal.Decimal, version int) error
	MarkWithdrawnFunc         func(ctx context.Context, invoiceID int64, userID uuid.UUID, penalty decimal.Decimal) error
	SetContributedVersionFunc func(ctx context.Context, invoiceID int64, userID uuid.UUID, version int) error

	calls struct {
		Get []struct {
			Ctx       context.Context
			InvoiceID int64
			UserID    uuid.UUID
		}
		ListByInvoice []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		Totals []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Participant
		}
		AddContribution []struct {
			Ctx       context.Context
			InvoiceID int64
			UserID    uuid.UUID
			Amount    decimal.Decimal
			Version   int
		}
		MarkWithdrawn []struct {
			Ctx       context.Context
			InvoiceID int64
			UserID    uuid.UUID
			Penalty   decimal.Decimal
		}
		SetContributedVersion []struct {
			Ctx       context.Context
			InvoiceID int64
			UserID    uuid.UUID
			Version   int
		}
	}
	lockGet                   sync.RWMutex
	lockListByInvoice         sync.RWMutex
	lockTotals                sync.RWMutex
	lockCreate                sync.RWMutex
	lockAddContribution       sync.RWMutex
	lockMarkWithdrawn         sync.RWMutex
	lockSetContributedVersion sync.RWMutex
}

func (mock *participantRepoMock) Get(ctx context.Context, invoiceID int64, userID uuid.UUID) (*domain.Participant, error) {
	if mock.GetFunc == nil {
		panic("participantRepoMock.GetFunc: method is nil but participantRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
	}{Ctx: ctx, InvoiceID: invoiceID, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, invoiceID, userID)
}

func (mock *participantRepoMock) GetCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
	UserID    uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *participantRepoMock) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Participant, error) {
	if mock.ListByInvoiceFunc == nil {
		panic("participantRepoMock.ListByInvoiceFunc: method is nil but participantRepo.ListByInvoice was just called")
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

func (mock *participantRepoMock) ListByInvoiceCalls() []struct {
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

func (mock *participantRepoMock) Totals(ctx context.Context, invoiceID int64) (domain.LedgerTotals, error) {
	if mock.TotalsFunc == nil {
		panic("participantRepoMock.TotalsFunc: method is nil but participantRepo.Totals was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx, invoiceID)
}

func (mock *participantRepoMock) TotalsCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockTotals.RLock()
	calls = mock.calls.Totals
	mock.lockTotals.RUnlock()
	return calls
}

func (mock *participantRepoMock) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	if mock.CreateFunc == nil {
		panic("participantRepoMock.CreateFunc: method is nil but participantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Participant
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *participantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Participant
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.Participant
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *participantRepoMock) AddContribution(ctx context.Context, invoiceID int64, userID uuid.UUID, amount decimal.Decimal, version int) error {
	if mock.AddContributionFunc == nil {
		panic("participantRepoMock.AddContributionFunc: method is nil but participantRepo.AddContribution was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Amount    decimal.Decimal
		Version   int
	}{Ctx: ctx, InvoiceID: invoiceID, UserID: userID, Amount: amount, Version: version}
	mock.lockAddContribution.Lock()
	mock.calls.AddContribution = append(mock.calls.AddContribution, callInfo)
	mock.lockAddContribution.Unlock()
	return mock.AddContributionFunc(ctx, invoiceID, userID, amount, version)
}

func (mock *participantRepoMock) AddContributionCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Version   int
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Amount    decimal.Decimal
		Version   int
	}
	mock.lockAddContribution.RLock()
	calls = mock.calls.AddContribution
	mock.lockAddContribution.RUnlock()
	return calls
}

func (mock *participantRepoMock) MarkWithdrawn(ctx context.Context, invoiceID int64, userID uuid.UUID, penalty decimal.Decimal) error {
	if mock.MarkWithdrawnFunc == nil {
		panic("participantRepoMock.MarkWithdrawnFunc: method is nil but participantRepo.MarkWithdrawn was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Penalty   decimal.Decimal
	}{Ctx: ctx, InvoiceID: invoiceID, UserID: userID, Penalty: penalty}
	mock.lockMarkWithdrawn.Lock()
	mock.calls.MarkWithdrawn = append(mock.calls.MarkWithdrawn, callInfo)
	mock.lockMarkWithdrawn.Unlock()
	return mock.MarkWithdrawnFunc(ctx, invoiceID, userID, penalty)
}

func (mock *participantRepoMock) MarkWithdrawnCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
	UserID    uuid.UUID
	Penalty   decimal.Decimal
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Penalty   decimal.Decimal
	}
	mock.lockMarkWithdrawn.RLock()
	calls = mock.calls.MarkWithdrawn
	mock.lockMarkWithdrawn.RUnlock()
	return calls
}

func (mock *participantRepoMock) SetContributedVersion(ctx context.Context, invoiceID int64, userID uuid.UUID, version int) error {
	if mock.SetContributedVersionFunc == nil {
		panic("participantRepoMock.SetContributedVersionFunc: method is nil but participantRepo.SetContributedVersion was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Version   int
	}{Ctx: ctx, InvoiceID: invoiceID, UserID: userID, Version: version}
	mock.lockSetContributedVersion.Lock()
	mock.calls.SetContributedVersion = append(mock.calls.SetContributedVersion, callInfo)
	mock.lockSetContributedVersion.Unlock()
	return mock.SetContributedVersionFunc(ctx, invoiceID, userID, version)
}

func (mock *participantRepoMock) SetContributedVersionCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
	UserID    uuid.UUID
	Version   int
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
		UserID    uuid.UUID
		Version   int
	}
	mock.lockSetContributedVersion.RLock()
	calls = mock.calls.SetContributedVersion
	mock.lockSetContributedVersion.RUnlock()
	return calls
}
