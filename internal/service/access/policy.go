// Package access decides who may see and act on an invoice.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

type participantReader interface {
	Get(ctx context.Context, invoiceID int64, userID uuid.UUID) (*domain.Participant, error)
}

// Policy answers access questions for invoices. Organizers and admins see
// everything; participants, including withdrawn ones, see invoices they joined.
type Policy struct {
	participants participantReader
}

// NewPolicy creates a Policy backed by the participant store.
func NewPolicy(participants participantReader) *Policy {
	return &Policy{participants: participants}
}

// IsAdmin reports whether the caller in ctx has the admin role.
func (p *Policy) IsAdmin(ctx context.Context) bool {
	return ctxutil.IsAdminCtx(ctx)
}

// IsOrganizer reports whether userID created inv.
func (p *Policy) IsOrganizer(userID uuid.UUID, inv *domain.Invoice) bool {
	return userID != uuid.Nil && inv.OrganizerID == userID
}

// CanAccessInvoice reports whether userID may read inv.
func (p *Policy) CanAccessInvoice(ctx context.Context, userID uuid.UUID, inv *domain.Invoice) (bool, error) {
	if p.IsAdmin(ctx) || p.IsOrganizer(userID, inv) {
		return true, nil
	}
	if userID == uuid.Nil {
		return false, nil
	}

	_, err := p.participants.Get(ctx, inv.ID, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("check participant: %w", err)
	}
}
