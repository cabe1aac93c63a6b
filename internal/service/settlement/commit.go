package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Payload keys shared by live application and journal replay.
const (
	payloadContractInvoiceID = "contract_invoice_id"
	payloadOutcome           = "outcome"
	payloadItems             = "items"
	payloadChangeSummary     = "change_summary"
	payloadVersion           = "version"
	payloadPenalty           = "penalty"
	payloadRefund            = "refund"
)

// confirmedEvent is an action to mirror off chain. TxHash is empty only for
// draft item updates, which never touch the chain.
type confirmedEvent struct {
	InvoiceID int64
	UserID    uuid.UUID
	Type      domain.TxType
	Amount    decimal.Decimal
	TxHash    string
	Ledger    int64
	Payload   map[string]any
}

func newEvent(invoiceID int64, userID uuid.UUID, typ domain.TxType, amount decimal.Decimal, conf *domain.Confirmation) *confirmedEvent {
	ev := &confirmedEvent{
		InvoiceID: invoiceID,
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		Payload:   map[string]any{},
	}
	if conf != nil {
		ev.TxHash = conf.TxHash
		ev.Ledger = conf.Ledger
	}
	return ev
}

func eventFromJournal(c domain.UnappliedConfirmation) *confirmedEvent {
	payload := c.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return &confirmedEvent{
		InvoiceID: c.InvoiceID,
		UserID:    c.UserID,
		Type:      c.Type,
		Amount:    c.Amount,
		TxHash:    c.TxHash,
		Ledger:    c.LedgerSequence,
		Payload:   payload,
	}
}

func (ev *confirmedEvent) unapplied(cause error) *domain.UnappliedConfirmation {
	return &domain.UnappliedConfirmation{
		TxHash:         ev.TxHash,
		InvoiceID:      ev.InvoiceID,
		UserID:         ev.UserID,
		Type:           ev.Type,
		Amount:         ev.Amount,
		LedgerSequence: ev.Ledger,
		Payload:        ev.Payload,
		LastError:      cause.Error(),
	}
}

// settle mirrors a chain-confirmed event. When that fails the confirmation
// is logged with its hash and journalled for replay, and the caller gets a
// *domain.ChainError of kind ErrChainUnapplied carrying the hash.
func (s *Service) settle(ctx context.Context, ev *confirmedEvent) (*domain.Invoice, error) {
	inv, err := s.applyInTx(ctx, ev)
	if err == nil {
		return inv, nil
	}

	s.log.ErrorContext(ctx, "confirmed transaction not applied",
		slog.String("tx_hash", ev.TxHash),
		slog.Int64("invoice_id", ev.InvoiceID),
		slog.String("type", ev.Type.String()),
		slog.String("error", err.Error()),
	)

	if jerr := s.journal.Record(context.WithoutCancel(ctx), ev.unapplied(err)); jerr != nil {
		s.log.ErrorContext(ctx, "journal unapplied confirmation",
			slog.String("tx_hash", ev.TxHash),
			slog.String("error", jerr.Error()),
		)
	}
	return nil, &domain.ChainError{Kind: domain.ErrChainUnapplied, TxHash: ev.TxHash, Err: err}
}

func (s *Service) applyInTx(ctx context.Context, ev *confirmedEvent) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var applyErr error
		inv, applyErr = s.apply(txCtx, ev)
		return applyErr
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// apply locks the invoice, re-validates, performs exactly one off-chain
// mutation and appends the transaction record. It must run inside a transaction.
func (s *Service) apply(ctx context.Context, ev *confirmedEvent) (*domain.Invoice, error) {
	inv, err := s.invoices.GetForUpdate(ctx, ev.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("lock invoice: %w", err)
	}

	switch ev.Type {
	case domain.TxTypeCreate:
		err = s.applyLink(ctx, inv, ev)
	case domain.TxTypeContribute:
		err = s.applyContribution(ctx, inv, ev)
	case domain.TxTypeWithdraw:
		err = s.applyWithdrawal(ctx, inv, ev)
	case domain.TxTypeRelease:
		err = s.applyRelease(ctx, inv, ev)
	case domain.TxTypeCancel:
		err = s.applyCancel(ctx, inv, ev)
	case domain.TxTypeClaimDeadline:
		err = s.applyClaim(ctx, inv, ev)
	case domain.TxTypeUpdateRecipients:
		err = s.applyItems(ctx, inv, ev)
	default:
		err = fmt.Errorf("unknown transaction type %q", ev.Type)
	}
	if err != nil {
		return nil, err
	}

	if ev.TxHash == "" {
		return inv, nil
	}

	_, err = s.txRecords.Create(ctx, &domain.TransactionRecord{
		InvoiceID:      inv.ID,
		UserID:         ev.UserID,
		TxHash:         ev.TxHash,
		Type:           ev.Type,
		Amount:         ev.Amount,
		LedgerSequence: ev.Ledger,
		EventData:      ev.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("record %s transaction: %w", ev.Type, err)
	}
	return inv, nil
}

// ---------------------------------------------------------------------------
// Payload helpers
// ---------------------------------------------------------------------------

func itemsPayload(items []domain.InvoiceItem) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		m := map[string]any{
			"description":      it.Description,
			"amount":           it.Amount.String(),
			"recipient_wallet": it.RecipientWallet,
		}
		if it.BusinessRef != nil {
			m["business_ref"] = *it.BusinessRef
		}
		out = append(out, m)
	}
	return out
}

func itemsFromPayload(v any) ([]domain.InvoiceItem, error) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, errors.New("payload has no items")
	}

	items := make([]domain.InvoiceItem, 0, len(list))
	for idx, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("payload item %d is %T", idx, raw)
		}
		amountStr, _ := m["amount"].(string)
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("payload item %d amount: %w", idx, err)
		}
		item := domain.InvoiceItem{Amount: amount, SortOrder: idx}
		item.Description, _ = m["description"].(string)
		item.RecipientWallet, _ = m["recipient_wallet"].(string)
		if ref, ok := m["business_ref"].(string); ok {
			item.BusinessRef = &ref
		}
		items = append(items, item)
	}
	return items, nil
}

func payloadString(p map[string]any, key string) string {
	s, _ := p[key].(string)
	return s
}

func payloadUint64(p map[string]any, key string) (uint64, bool) {
	raw := payloadString(p, key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
