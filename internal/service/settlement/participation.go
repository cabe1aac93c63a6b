package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

const staleReason = "payout breakdown changed; confirm or opt out first"

// Join adds the caller as an active participant with no contribution.
func (s *Service) Join(ctx context.Context, input JoinInput) (*domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var participant *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, input.InvoiceID)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}
		if inv.Status.IsTerminal() {
			return domain.NewStateError("join", inv.Status, "")
		}

		participant, err = s.participants.Create(txCtx, &domain.Participant{
			InvoiceID:            inv.ID,
			UserID:               userID,
			WalletAddress:        strings.TrimSpace(input.WalletAddress),
			Status:               domain.ParticipantStatusActive,
			ContributedAtVersion: inv.Version,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("user already joined invoice %d: %w", inv.ID, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("create participant: %w", err)
		}

		return s.recomputeTotals(txCtx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participant joined",
		slog.Int64("invoice_id", input.InvoiceID),
		slog.String("user_id", userID.String()),
	)
	return participant, nil
}

// RecordContribution submits a contribution and mirrors it once confirmed.
// Reaching both the amount and headcount thresholds completes funding.
func (s *Service) RecordContribution(ctx context.Context, input ContributeInput) (*domain.Invoice, error) {
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
	if _, err := s.contributor(ctx, inv, userID); err != nil {
		return nil, err
	}

	conf, err := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
	if err != nil {
		return nil, err
	}

	updated, err := s.settle(ctx, newEvent(inv.ID, userID, domain.TxTypeContribute, input.Amount, conf))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contribution recorded",
		slog.Int64("invoice_id", updated.ID),
		slog.String("user_id", userID.String()),
		slog.String("amount", input.Amount.String()),
		slog.String("total_collected", updated.TotalCollected.String()),
		slog.String("status", updated.Status.String()),
		slog.String("tx_hash", conf.TxHash),
	)
	return updated, nil
}

// contributor returns the caller's participant row if it may contribute now.
func (s *Service) contributor(ctx context.Context, inv *domain.Invoice, userID uuid.UUID) (*domain.Participant, error) {
	p, err := s.activeContributor(ctx, inv, userID)
	if err != nil {
		return nil, err
	}
	if inv.DeadlinePassed(s.now()) {
		return nil, domain.NewStateError("contribute", inv.Status, "deadline has passed")
	}
	if p.IsStale(inv.Version) {
		return nil, domain.NewStateError("contribute", inv.Status, staleReason)
	}
	return p, nil
}

// activeContributor checks only invoice status and membership. A confirmed
// contribution is mirrored even if the breakdown changed or the deadline
// passed while it was in flight.
func (s *Service) activeContributor(ctx context.Context, inv *domain.Invoice, userID uuid.UUID) (*domain.Participant, error) {
	if inv.Status != domain.InvoiceStatusFunding {
		return nil, domain.NewStateError("contribute", inv.Status, "")
	}
	p, err := s.participants.Get(ctx, inv.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if !p.IsActive() {
		return nil, domain.NewStateError("contribute", inv.Status, "participant has withdrawn")
	}
	return p, nil
}

func (s *Service) applyContribution(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	p, err := s.activeContributor(ctx, inv, ev.UserID)
	if err != nil {
		return err
	}

	// A breakdown change that landed mid-flight leaves the participant stale.
	version := inv.Version
	if p.IsStale(inv.Version) {
		version = p.ContributedAtVersion
	}
	if err := s.participants.AddContribution(ctx, inv.ID, ev.UserID, ev.Amount, version); err != nil {
		return fmt.Errorf("add contribution: %w", err)
	}
	if err := s.recomputeTotals(ctx, inv); err != nil {
		return fmt.Errorf("recompute totals: %w", err)
	}

	if inv.FundingReached() {
		if err := s.invoices.UpdateStatus(ctx, inv.ID, domain.InvoiceStatusCompleted); err != nil {
			return fmt.Errorf("complete funding: %w", err)
		}
		inv.Status = domain.InvoiceStatusCompleted
	}
	return nil
}

// RecordWithdrawal submits a withdrawal and, once confirmed, marks the
// participant withdrawn with the penalty withheld by the contract.
func (s *Service) RecordWithdrawal(ctx context.Context, input ChainActionInput) (*WithdrawalResult, error) {
	return s.withdraw(ctx, input, false)
}

// OptOut lets a stale participant leave after the payout breakdown changed.
// It runs the same path as RecordWithdrawal.
func (s *Service) OptOut(ctx context.Context, input ChainActionInput) (*WithdrawalResult, error) {
	return s.withdraw(ctx, input, true)
}

func (s *Service) withdraw(ctx context.Context, input ChainActionInput, requireStale bool) (*WithdrawalResult, error) {
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
	p, err := s.withdrawer(ctx, inv, userID)
	if err != nil {
		return nil, err
	}
	if requireStale && !p.IsStale(inv.Version) {
		return nil, fmt.Errorf("participant already agreed to version %d: %w", inv.Version, domain.ErrConflict)
	}

	conf, err := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
	if err != nil {
		return nil, err
	}

	ev := newEvent(inv.ID, userID, domain.TxTypeWithdraw, p.ContributedAmount, conf)
	updated, err := s.settle(ctx, ev)
	if err != nil {
		return nil, err
	}

	result := &WithdrawalResult{
		Invoice:   updated,
		Withdrawn: ev.Amount,
		Penalty:   decimal.RequireFromString(payloadString(ev.Payload, payloadPenalty)),
		TxHash:    conf.TxHash,
	}

	s.log.InfoContext(ctx, "participant withdrew",
		slog.Int64("invoice_id", updated.ID),
		slog.String("user_id", userID.String()),
		slog.String("withdrawn", result.Withdrawn.String()),
		slog.String("penalty", result.Penalty.String()),
		slog.Bool("opt_out", requireStale),
		slog.String("tx_hash", conf.TxHash),
	)
	return result, nil
}

func (s *Service) withdrawer(ctx context.Context, inv *domain.Invoice, userID uuid.UUID) (*domain.Participant, error) {
	if !inv.Status.IsOpen() {
		return nil, domain.NewStateError("withdraw", inv.Status, "")
	}
	p, err := s.participants.Get(ctx, inv.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if !p.IsActive() {
		return nil, domain.NewStateError("withdraw", inv.Status, "participant already withdrawn")
	}
	return p, nil
}

func (s *Service) applyWithdrawal(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	p, err := s.withdrawer(ctx, inv, ev.UserID)
	if err != nil {
		return err
	}

	amount := p.ContributedAmount
	penalty := domain.PenaltyFor(amount, inv.PenaltyPercent)
	if err := s.participants.MarkWithdrawn(ctx, inv.ID, ev.UserID, penalty); err != nil {
		return fmt.Errorf("mark withdrawn: %w", err)
	}
	if err := s.recomputeTotals(ctx, inv); err != nil {
		return fmt.Errorf("recompute totals: %w", err)
	}

	if inv.Status == domain.InvoiceStatusCompleted && !inv.FundingReached() {
		if err := s.invoices.UpdateStatus(ctx, inv.ID, domain.InvoiceStatusFunding); err != nil {
			return fmt.Errorf("reopen funding: %w", err)
		}
		inv.Status = domain.InvoiceStatusFunding
	}

	ev.Amount = amount
	ev.Payload[payloadPenalty] = penalty.String()
	ev.Payload[payloadRefund] = amount.Sub(penalty).String()
	return nil
}

// ConfirmRelease records that a stale participant agrees to the current
// payout breakdown. No chain interaction happens.
func (s *Service) ConfirmRelease(ctx context.Context, invoiceID int64) (*domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if invoiceID <= 0 {
		return nil, domain.NewValidationError("invoice_id", "must be a positive integer")
	}

	var participant *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inv, err := s.invoices.GetForUpdate(txCtx, invoiceID)
		if err != nil {
			return fmt.Errorf("lock invoice: %w", err)
		}
		if inv.Status.IsTerminal() {
			return domain.NewStateError("confirm release", inv.Status, "")
		}

		p, err := s.participants.Get(txCtx, inv.ID, userID)
		if err != nil {
			return fmt.Errorf("get participant: %w", err)
		}
		if !p.IsActive() {
			return domain.NewStateError("confirm release", inv.Status, "participant has withdrawn")
		}
		if !p.IsStale(inv.Version) {
			return fmt.Errorf("participant already agreed to version %d: %w", inv.Version, domain.ErrConflict)
		}

		if err := s.participants.SetContributedVersion(txCtx, inv.ID, userID, inv.Version); err != nil {
			return fmt.Errorf("confirm version: %w", err)
		}
		p.ContributedAtVersion = inv.Version
		participant = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participant confirmed items",
		slog.Int64("invoice_id", invoiceID),
		slog.String("user_id", userID.String()),
		slog.Int("version", participant.ContributedAtVersion),
	)
	return participant, nil
}
