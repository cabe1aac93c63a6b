package rest

import (
	"context"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
	"sync"
)

var _ settlementService = &settlementServiceMock{}

type settlementServiceMock struct {
	CreateFunc             func(ctx context.Context, input settlement.CreateInvoiceInput) (*domain.Invoice, error)
	LinkContractFunc       func(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	JoinFunc               func(ctx context.Context, input settlement.JoinInput) (*domain.Participant, error)
	RecordContributionFunc func(ctx context.Context, input settlement.ContributeInput) (*domain.Invoice, error)
	RecordWithdrawalFunc   func(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error)
	OptOutFunc             func(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error)
	ConfirmReleaseFunc     func(ctx context.Context, invoiceID int64) (*domain.Participant, error)
	UpdateItemsFunc        func(ctx context.Context, input settlement.UpdateItemsInput) (*domain.Invoice, error)
	ReleaseFunc            func(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	CancelFunc             func(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	ClaimDeadlineFunc      func(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	InvoiceFunc            func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetInvoiceFunc         func(ctx context.Context, id int64) (*settlement.InvoiceDetails, error)
	ListMyInvoicesFunc     func(ctx context.Context, input settlement.ListInvoicesInput) (*settlement.InvoiceList, error)
	ListParticipantsFunc   func(ctx context.Context, invoiceID int64) ([]domain.Participant, error)
	ListTransactionsFunc   func(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error)
	ListModificationsFunc  func(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input settlement.CreateInvoiceInput
		}
		LinkContract []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		Join []struct {
			Ctx   context.Context
			Input settlement.JoinInput
		}
		RecordContribution []struct {
			Ctx   context.Context
			Input settlement.ContributeInput
		}
		RecordWithdrawal []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		OptOut []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		ConfirmRelease []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		UpdateItems []struct {
			Ctx   context.Context
			Input settlement.UpdateItemsInput
		}
		Release []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		Cancel []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		ClaimDeadline []struct {
			Ctx   context.Context
			Input settlement.ChainActionInput
		}
		Invoice []struct {
			Ctx context.Context
			Id  int64
		}
		GetInvoice []struct {
			Ctx context.Context
			Id  int64
		}
		ListMyInvoices []struct {
			Ctx   context.Context
			Input settlement.ListInvoicesInput
		}
		ListParticipants []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		ListTransactions []struct {
			Ctx       context.Context
			InvoiceID int64
		}
		ListModifications []struct {
			Ctx       context.Context
			InvoiceID int64
		}
	}
	lockCreate             sync.RWMutex
	lockLinkContract       sync.RWMutex
	lockJoin               sync.RWMutex
	lockRecordContribution sync.RWMutex
	lockRecordWithdrawal   sync.RWMutex
	lockOptOut             sync.RWMutex
	lockConfirmRelease     sync.RWMutex
	lockUpdateItems        sync.RWMutex
	lockRelease            sync.RWMutex
	lockCancel             sync.RWMutex
	lockClaimDeadline      sync.RWMutex
	lockInvoice            sync.RWMutex
	lockGetInvoice         sync.RWMutex
	lockListMyInvoices     sync.RWMutex
	lockListParticipants   sync.RWMutex
	lockListTransactions   sync.RWMutex
	lockListModifications  sync.RWMutex
}

func (mock *settlementServiceMock) Create(ctx context.Context, input settlement.CreateInvoiceInput) (*domain.Invoice, error) {
	if mock.CreateFunc == nil {
		panic("settlementServiceMock.CreateFunc: method is nil but settlementService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.CreateInvoiceInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *settlementServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input settlement.CreateInvoiceInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.CreateInvoiceInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *settlementServiceMock) LinkContract(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error) {
	if mock.LinkContractFunc == nil {
		panic("settlementServiceMock.LinkContractFunc: method is nil but settlementService.LinkContract was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockLinkContract.Lock()
	mock.calls.LinkContract = append(mock.calls.LinkContract, callInfo)
	mock.lockLinkContract.Unlock()
	return mock.LinkContractFunc(ctx, input)
}

func (mock *settlementServiceMock) LinkContractCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockLinkContract.RLock()
	calls = mock.calls.LinkContract
	mock.lockLinkContract.RUnlock()
	return calls
}

func (mock *settlementServiceMock) Join(ctx context.Context, input settlement.JoinInput) (*domain.Participant, error) {
	if mock.JoinFunc == nil {
		panic("settlementServiceMock.JoinFunc: method is nil but settlementService.Join was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.JoinInput
	}{Ctx: ctx, Input: input}
	mock.lockJoin.Lock()
	mock.calls.Join = append(mock.calls.Join, callInfo)
	mock.lockJoin.Unlock()
	return mock.JoinFunc(ctx, input)
}

func (mock *settlementServiceMock) JoinCalls() []struct {
	Ctx   context.Context
	Input settlement.JoinInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.JoinInput
	}
	mock.lockJoin.RLock()
	calls = mock.calls.Join
	mock.lockJoin.RUnlock()
	return calls
}

func (mock *settlementServiceMock) RecordContribution(ctx context.Context, input settlement.ContributeInput) (*domain.Invoice, error) {
	if mock.RecordContributionFunc == nil {
		panic("settlementServiceMock.RecordContributionFunc: method is nil but settlementService.RecordContribution was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ContributeInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordContribution.Lock()
	mock.calls.RecordContribution = append(mock.calls.RecordContribution, callInfo)
	mock.lockRecordContribution.Unlock()
	return mock.RecordContributionFunc(ctx, input)
}

func (mock *settlementServiceMock) RecordContributionCalls() []struct {
	Ctx   context.Context
	Input settlement.ContributeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ContributeInput
	}
	mock.lockRecordContribution.RLock()
	calls = mock.calls.RecordContribution
	mock.lockRecordContribution.RUnlock()
	return calls
}

func (mock *settlementServiceMock) RecordWithdrawal(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error) {
	if mock.RecordWithdrawalFunc == nil {
		panic("settlementServiceMock.RecordWithdrawalFunc: method is nil but settlementService.RecordWithdrawal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordWithdrawal.Lock()
	mock.calls.RecordWithdrawal = append(mock.calls.RecordWithdrawal, callInfo)
	mock.lockRecordWithdrawal.Unlock()
	return mock.RecordWithdrawalFunc(ctx, input)
}

func (mock *settlementServiceMock) RecordWithdrawalCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockRecordWithdrawal.RLock()
	calls = mock.calls.RecordWithdrawal
	mock.lockRecordWithdrawal.RUnlock()
	return calls
}

func (mock *settlementServiceMock) OptOut(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error) {
	if mock.OptOutFunc == nil {
		panic("settlementServiceMock.OptOutFunc: method is nil but settlementService.OptOut was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockOptOut.Lock()
	mock.calls.OptOut = append(mock.calls.OptOut, callInfo)
	mock.lockOptOut.Unlock()
	return mock.OptOutFunc(ctx, input)
}

func (mock *settlementServiceMock) OptOutCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockOptOut.RLock()
	calls = mock.calls.OptOut
	mock.lockOptOut.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ConfirmRelease(ctx context.Context, invoiceID int64) (*domain.Participant, error) {
	if mock.ConfirmReleaseFunc == nil {
		panic("settlementServiceMock.ConfirmReleaseFunc: method is nil but settlementService.ConfirmRelease was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockConfirmRelease.Lock()
	mock.calls.ConfirmRelease = append(mock.calls.ConfirmRelease, callInfo)
	mock.lockConfirmRelease.Unlock()
	return mock.ConfirmReleaseFunc(ctx, invoiceID)
}

func (mock *settlementServiceMock) ConfirmReleaseCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockConfirmRelease.RLock()
	calls = mock.calls.ConfirmRelease
	mock.lockConfirmRelease.RUnlock()
	return calls
}

func (mock *settlementServiceMock) UpdateItems(ctx context.Context, input settlement.UpdateItemsInput) (*domain.Invoice, error) {
	if mock.UpdateItemsFunc == nil {
		panic("settlementServiceMock.UpdateItemsFunc: method is nil but settlementService.UpdateItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.UpdateItemsInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateItems.Lock()
	mock.calls.UpdateItems = append(mock.calls.UpdateItems, callInfo)
	mock.lockUpdateItems.Unlock()
	return mock.UpdateItemsFunc(ctx, input)
}

func (mock *settlementServiceMock) UpdateItemsCalls() []struct {
	Ctx   context.Context
	Input settlement.UpdateItemsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.UpdateItemsInput
	}
	mock.lockUpdateItems.RLock()
	calls = mock.calls.UpdateItems
	mock.lockUpdateItems.RUnlock()
	return calls
}

func (mock *settlementServiceMock) Release(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error) {
	if mock.ReleaseFunc == nil {
		panic("settlementServiceMock.ReleaseFunc: method is nil but settlementService.Release was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, input)
}

func (mock *settlementServiceMock) ReleaseCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockRelease.RLock()
	calls = mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *settlementServiceMock) Cancel(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error) {
	if mock.CancelFunc == nil {
		panic("settlementServiceMock.CancelFunc: method is nil but settlementService.Cancel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, input)
}

func (mock *settlementServiceMock) CancelCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockCancel.RLock()
	calls = mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ClaimDeadline(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error) {
	if mock.ClaimDeadlineFunc == nil {
		panic("settlementServiceMock.ClaimDeadlineFunc: method is nil but settlementService.ClaimDeadline was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}{Ctx: ctx, Input: input}
	mock.lockClaimDeadline.Lock()
	mock.calls.ClaimDeadline = append(mock.calls.ClaimDeadline, callInfo)
	mock.lockClaimDeadline.Unlock()
	return mock.ClaimDeadlineFunc(ctx, input)
}

func (mock *settlementServiceMock) ClaimDeadlineCalls() []struct {
	Ctx   context.Context
	Input settlement.ChainActionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ChainActionInput
	}
	mock.lockClaimDeadline.RLock()
	calls = mock.calls.ClaimDeadline
	mock.lockClaimDeadline.RUnlock()
	return calls
}

func (mock *settlementServiceMock) Invoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	if mock.InvoiceFunc == nil {
		panic("settlementServiceMock.InvoiceFunc: method is nil but settlementService.Invoice was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockInvoice.Lock()
	mock.calls.Invoice = append(mock.calls.Invoice, callInfo)
	mock.lockInvoice.Unlock()
	return mock.InvoiceFunc(ctx, id)
}

func (mock *settlementServiceMock) InvoiceCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockInvoice.RLock()
	calls = mock.calls.Invoice
	mock.lockInvoice.RUnlock()
	return calls
}

func (mock *settlementServiceMock) GetInvoice(ctx context.Context, id int64) (*settlement.InvoiceDetails, error) {
	if mock.GetInvoiceFunc == nil {
		panic("settlementServiceMock.GetInvoiceFunc: method is nil but settlementService.GetInvoice was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetInvoice.Lock()
	mock.calls.GetInvoice = append(mock.calls.GetInvoice, callInfo)
	mock.lockGetInvoice.Unlock()
	return mock.GetInvoiceFunc(ctx, id)
}

func (mock *settlementServiceMock) GetInvoiceCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetInvoice.RLock()
	calls = mock.calls.GetInvoice
	mock.lockGetInvoice.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ListMyInvoices(ctx context.Context, input settlement.ListInvoicesInput) (*settlement.InvoiceList, error) {
	if mock.ListMyInvoicesFunc == nil {
		panic("settlementServiceMock.ListMyInvoicesFunc: method is nil but settlementService.ListMyInvoices was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settlement.ListInvoicesInput
	}{Ctx: ctx, Input: input}
	mock.lockListMyInvoices.Lock()
	mock.calls.ListMyInvoices = append(mock.calls.ListMyInvoices, callInfo)
	mock.lockListMyInvoices.Unlock()
	return mock.ListMyInvoicesFunc(ctx, input)
}

func (mock *settlementServiceMock) ListMyInvoicesCalls() []struct {
	Ctx   context.Context
	Input settlement.ListInvoicesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input settlement.ListInvoicesInput
	}
	mock.lockListMyInvoices.RLock()
	calls = mock.calls.ListMyInvoices
	mock.lockListMyInvoices.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ListParticipants(ctx context.Context, invoiceID int64) ([]domain.Participant, error) {
	if mock.ListParticipantsFunc == nil {
		panic("settlementServiceMock.ListParticipantsFunc: method is nil but settlementService.ListParticipants was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockListParticipants.Lock()
	mock.calls.ListParticipants = append(mock.calls.ListParticipants, callInfo)
	mock.lockListParticipants.Unlock()
	return mock.ListParticipantsFunc(ctx, invoiceID)
}

func (mock *settlementServiceMock) ListParticipantsCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockListParticipants.RLock()
	calls = mock.calls.ListParticipants
	mock.lockListParticipants.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ListTransactions(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error) {
	if mock.ListTransactionsFunc == nil {
		panic("settlementServiceMock.ListTransactionsFunc: method is nil but settlementService.ListTransactions was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID int64
	}{Ctx: ctx, InvoiceID: invoiceID}
	mock.lockListTransactions.Lock()
	mock.calls.ListTransactions = append(mock.calls.ListTransactions, callInfo)
	mock.lockListTransactions.Unlock()
	return mock.ListTransactionsFunc(ctx, invoiceID)
}

func (mock *settlementServiceMock) ListTransactionsCalls() []struct {
	Ctx       context.Context
	InvoiceID int64
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID int64
	}
	mock.lockListTransactions.RLock()
	calls = mock.calls.ListTransactions
	mock.lockListTransactions.RUnlock()
	return calls
}

func (mock *settlementServiceMock) ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error) {
	if mock.ListModificationsFunc == nil {
		panic("settlementServiceMock.ListModificationsFunc: method is nil but settlementService.ListModifications was just called")
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

func (mock *settlementServiceMock) ListModificationsCalls() []struct {
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
