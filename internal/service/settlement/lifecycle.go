package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

// Release pays out a completed invoice to its recipients. Every active
// participant must have agreed to the current payout breakdown.
func (s *Service) Release(ctx context.Context, input ChainActionInput) (*domain.Invoice, error) {
	return s.finish(ctx, input, domain.TxTypeRelease, s.checkReleasable)
}

// Cancel refunds an open invoice.
func (s *Service) Cancel(ctx context.Context, input ChainActionInput) (*domain.Invoice, error) {
	return s.finish(ctx, input, domain.TxTypeCancel, checkCancellable)
}

func (s *Service) finish(
	ctx context.Context,
	input ChainActionInput,
	typ domain.TxType,
	check func(ctx context.Context, inv *domain.Invoice) error,
) (*domain.Invoice, error) {
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
	if err := check(ctx, inv); err != nil {
		return nil, err
	}

	conf, err := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
	if err != nil {
		return nil, err
	}

	updated, err := s.settle(ctx, newEvent(inv.ID, userID, typ, inv.TotalCollected, conf))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice settled",
		slog.Int64("invoice_id", updated.ID),
		slog.String("type", typ.String()),
		slog.String("status", updated.Status.String()),
		slog.String("amount", updated.TotalCollected.String()),
		slog.String("tx_hash", conf.TxHash),
	)
	return updated, nil
}

func (s *Service) checkReleasable(ctx context.Context, inv *domain.Invoice) error {
	if err := checkReleaseStatus(inv); err != nil {
		return err
	}

	participants, err := s.participants.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}
	stale := 0
	for i := range participants {
		if participants[i].IsStale(inv.Version) {
			stale++
		}
	}
	if stale > 0 {
		return domain.NewStateError("release", inv.Status,
			fmt.Sprintf("%d participant(s) have not confirmed version %d", stale, inv.Version))
	}
	return nil
}

// checkReleaseStatus is the part of checkReleasable that still applies once
// the release is confirmed on chain.
func checkReleaseStatus(inv *domain.Invoice) error {
	if inv.Status != domain.InvoiceStatusCompleted {
		return domain.NewStateError("release", inv.Status, "")
	}
	if !inv.IsLinked() {
		return domain.NewStateError("release", inv.Status, "invoice is not linked to a contract")
	}
	return nil
}

func checkCancellable(_ context.Context, inv *domain.Invoice) error {
	if !inv.Status.IsOpen() {
		return domain.NewStateError("cancel", inv.Status, "")
	}
	return nil
}

func (s *Service) applyRelease(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	if err := checkReleaseStatus(inv); err != nil {
		return err
	}
	return s.closeInvoice(ctx, inv, ev, domain.InvoiceStatusReleased)
}

func (s *Service) applyCancel(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	if err := checkCancellable(ctx, inv); err != nil {
		return err
	}
	return s.closeInvoice(ctx, inv, ev, domain.InvoiceStatusCancelled)
}

func (s *Service) closeInvoice(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent, status domain.InvoiceStatus) error {
	if err := s.invoices.UpdateStatus(ctx, inv.ID, status); err != nil {
		return fmt.Errorf("set status %s: %w", status, err)
	}
	inv.Status = status
	ev.Amount = inv.TotalCollected
	return nil
}

// ClaimDeadline settles an invoice whose deadline passed. The contract
// decides between release and refund; the outcome is read from the
// transaction result, or from the contract state when the result is missing.
func (s *Service) ClaimDeadline(ctx context.Context, input ChainActionInput) (*domain.Invoice, error) {
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
	if err := s.checkClaimable(inv); err != nil {
		return nil, err
	}

	conf, err := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
	if err != nil {
		return nil, err
	}

	ev := newEvent(inv.ID, userID, domain.TxTypeClaimDeadline, inv.TotalCollected, conf)
	if outcome := s.claimOutcome(ctx, inv, conf); outcome != "" {
		ev.Payload[payloadOutcome] = outcome
	}

	updated, err := s.settle(ctx, ev)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deadline claimed",
		slog.Int64("invoice_id", updated.ID),
		slog.String("caller_id", userID.String()),
		slog.String("status", updated.Status.String()),
		slog.String("tx_hash", conf.TxHash),
	)
	return updated, nil
}

func (s *Service) checkClaimable(inv *domain.Invoice) error {
	if err := checkClaimStatus(inv); err != nil {
		return err
	}
	if !inv.DeadlinePassed(s.now()) {
		return domain.NewStateError("claim deadline", inv.Status, "deadline has not passed")
	}
	return nil
}

func checkClaimStatus(inv *domain.Invoice) error {
	switch {
	case inv.Status.IsTerminal():
		return domain.NewStateError("claim deadline", inv.Status, "")
	case !inv.IsLinked():
		return domain.NewStateError("claim deadline", inv.Status, "invoice is not linked to a contract")
	}
	return nil
}

// claimOutcome returns the normalized status the claim left the contract
// in, or "" when it cannot be determined.
func (s *Service) claimOutcome(ctx context.Context, inv *domain.Invoice, conf *domain.Confirmation) string {
	if conf.HasReturnValue {
		if outcome, err := soroban.NormalizeEnum(conf.ReturnValue); err == nil {
			return outcome
		}
	}

	state, err := s.chain.GetState(ctx, *inv.ContractInvoiceID)
	if err != nil {
		s.log.WarnContext(ctx, "read claim outcome from contract state",
			slog.Int64("invoice_id", inv.ID),
			slog.String("tx_hash", conf.TxHash),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return state.Status
}

func (s *Service) applyClaim(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	if err := checkClaimStatus(inv); err != nil {
		return err
	}

	outcome := domain.InvoiceStatus(payloadString(ev.Payload, payloadOutcome))
	if outcome != domain.InvoiceStatusReleased && outcome != domain.InvoiceStatusCancelled {
		return &domain.ChainError{
			Kind:   domain.ErrChainExecution,
			TxHash: ev.TxHash,
			Err:    fmt.Errorf("unexpected claim outcome %q", outcome),
		}
	}
	return s.closeInvoice(ctx, inv, ev, outcome)
}
