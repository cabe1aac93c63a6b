package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"sync"
)

var _ accessPolicy = &accessPolicyMock{}

type accessPolicyMock struct {
	IsAdminFunc          func(ctx context.Context) bool
	IsOrganizerFunc      func(userID uuid.UUID, inv *domain.Invoice) bool
	CanAccessInvoiceFunc func(ctx context.Context, userID uuid.UUID, inv *domain.Invoice) (bool, error)

	calls struct {
		IsAdmin []struct {
			Ctx context.Context
		}
		IsOrganizer []struct {
			UserID uuid.UUID
			Inv    *domain.Invoice
		}
		CanAccessInvoice []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Inv    *domain.Invoice
		}
	}
	lockIsAdmin          sync.RWMutex
	lockIsOrganizer      sync.RWMutex
	lockCanAccessInvoice sync.RWMutex
}

func (mock *accessPolicyMock) IsAdmin(ctx context.Context) bool {
	if mock.IsAdminFunc == nil {
		panic("accessPolicyMock.IsAdminFunc: method is nil but accessPolicy.IsAdmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockIsAdmin.Lock()
	mock.calls.IsAdmin = append(mock.calls.IsAdmin, callInfo)
	mock.lockIsAdmin.Unlock()
	return mock.IsAdminFunc(ctx)
}

func (mock *accessPolicyMock) IsAdminCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockIsAdmin.RLock()
	calls = mock.calls.IsAdmin
	mock.lockIsAdmin.RUnlock()
	return calls
}

func (mock *accessPolicyMock) IsOrganizer(userID uuid.UUID, inv *domain.Invoice) bool {
	if mock.IsOrganizerFunc == nil {
		panic("accessPolicyMock.IsOrganizerFunc: method is nil but accessPolicy.IsOrganizer was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Inv    *domain.Invoice
	}{UserID: userID, Inv: inv}
	mock.lockIsOrganizer.Lock()
	mock.calls.IsOrganizer = append(mock.calls.IsOrganizer, callInfo)
	mock.lockIsOrganizer.Unlock()
	return mock.IsOrganizerFunc(userID, inv)
}

func (mock *accessPolicyMock) IsOrganizerCalls() []struct {
	UserID uuid.UUID
	Inv    *domain.Invoice
} {
	var calls []struct {
		UserID uuid.UUID
		Inv    *domain.Invoice
	}
	mock.lockIsOrganizer.RLock()
	calls = mock.calls.IsOrganizer
	mock.lockIsOrganizer.RUnlock()
	return calls
}

func (mock *accessPolicyMock) CanAccessInvoice(ctx context.Context, userID uuid.UUID, inv *domain.Invoice) (bool, error) {
	if mock.CanAccessInvoiceFunc == nil {
		panic("accessPolicyMock.CanAccessInvoiceFunc: method is nil but accessPolicy.CanAccessInvoice was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Inv    *domain.Invoice
	}{Ctx: ctx, UserID: userID, Inv: inv}
	mock.lockCanAccessInvoice.Lock()
	mock.calls.CanAccessInvoice = append(mock.calls.CanAccessInvoice, callInfo)
	mock.lockCanAccessInvoice.Unlock()
	return mock.CanAccessInvoiceFunc(ctx, userID, inv)
}

func (mock *accessPolicyMock) CanAccessInvoiceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Inv    *domain.Invoice
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Inv    *domain.Invoice
	}
	mock.lockCanAccessInvoice.RLock()
	calls = mock.calls.CanAccessInvoice
	mock.lockCanAccessInvoice.RUnlock()
	return calls
}
