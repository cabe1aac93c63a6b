package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

const onchainUnavailable = "unable to fetch on-chain state"

// Invoice returns the bare invoice row. Transport uses it for access checks.
func (s *Service) Invoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("invoice_id", "must be a positive integer")
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetInvoice returns the invoice with its items and, when linked, the
// contract state. A chain failure does not fail the call.
func (s *Service) GetInvoice(ctx context.Context, id int64) (*InvoiceDetails, error) {
	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.invoices.ListItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	inv.Items = items

	details := &InvoiceDetails{Invoice: inv}
	if !inv.IsLinked() {
		return details, nil
	}

	state, err := s.chain.GetState(ctx, *inv.ContractInvoiceID)
	if err != nil {
		s.log.WarnContext(ctx, "fetch on-chain state",
			slog.Int64("invoice_id", inv.ID),
			slog.String("error", err.Error()),
		)
		details.OnchainError = onchainUnavailable
		return details, nil
	}
	details.Onchain = state
	return details, nil
}

// ListMyInvoices returns invoices the caller organizes or participates in.
func (s *Service) ListMyInvoices(ctx context.Context, input ListInvoicesInput) (*InvoiceList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(input.Limit, 1, s.cfg.MaxPageSize, s.cfg.DefaultPageSize)

	items, err := s.invoices.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	total, err := s.invoices.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}

	return &InvoiceList{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ListParticipants returns all participant rows of an invoice.
func (s *Service) ListParticipants(ctx context.Context, invoiceID int64) ([]domain.Participant, error) {
	if _, err := s.Invoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	participants, err := s.participants.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

// ListTransactions returns the confirmed transaction records of an invoice.
func (s *Service) ListTransactions(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error) {
	if _, err := s.Invoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	records, err := s.txRecords.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return records, nil
}

// ListModifications returns the item change history of an invoice.
func (s *Service) ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error) {
	if _, err := s.Invoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	mods, err := s.invoices.ListModifications(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list modifications: %w", err)
	}
	return mods, nil
}
