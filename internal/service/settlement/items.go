package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

// UpdateItems replaces the payout breakdown and bumps the invoice version.
// A linked invoice needs the update_recipients transaction confirmed first;
// a draft is changed off chain only. Participants behind the new version
// become stale.
func (s *Service) UpdateItems(ctx context.Context, input UpdateItemsInput) (*domain.Invoice, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.invoices.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv.Status.IsTerminal() {
		return nil, domain.NewStateError("update items", inv.Status, "")
	}

	items := toDomainItems(input.Items)
	ev := newEvent(inv.ID, userID, domain.TxTypeUpdateRecipients, domain.SumItems(items), nil)
	ev.Payload[payloadItems] = itemsPayload(items)
	ev.Payload[payloadChangeSummary] = strings.TrimSpace(input.ChangeSummary)

	var updated *domain.Invoice
	if !inv.IsLinked() {
		updated, err = s.applyInTx(ctx, ev)
	} else {
		if strings.TrimSpace(input.SignedXDR) == "" {
			return nil, domain.NewValidationError("signed_xdr", "required for a linked invoice")
		}
		conf, submitErr := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
		if submitErr != nil {
			return nil, submitErr
		}
		ev.TxHash, ev.Ledger = conf.TxHash, conf.Ledger
		updated, err = s.settle(ctx, ev)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice items updated",
		slog.Int64("invoice_id", updated.ID),
		slog.Int("version", updated.Version),
		slog.String("target_amount", updated.TargetAmount.String()),
		slog.String("tx_hash", ev.TxHash),
	)
	return updated, nil
}

func (s *Service) applyItems(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	if inv.Status.IsTerminal() {
		return domain.NewStateError("update items", inv.Status, "")
	}
	if ev.TxHash == "" && inv.IsLinked() {
		return domain.NewStateError("update items", inv.Status, "linked invoice requires an update_recipients transaction")
	}

	items, err := itemsFromPayload(ev.Payload[payloadItems])
	if err != nil {
		return err
	}

	previous, err := s.invoices.ListItems(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	replaced, err := s.invoices.ReplaceItems(ctx, inv.ID, items)
	if err != nil {
		return fmt.Errorf("replace items: %w", err)
	}
	version, err := s.invoices.IncrementVersion(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("increment version: %w", err)
	}

	_, err = s.invoices.CreateModification(ctx, &domain.InvoiceModification{
		InvoiceID:     inv.ID,
		Version:       version,
		ChangeSummary: payloadString(ev.Payload, payloadChangeSummary),
		ItemsSnapshot: previous,
	})
	if err != nil {
		return fmt.Errorf("store modification: %w", err)
	}

	inv.Items = replaced
	inv.Version = version
	inv.TargetAmount = domain.SumItems(replaced)

	ev.Amount = inv.TargetAmount
	ev.Payload[payloadVersion] = version
	return nil
}
