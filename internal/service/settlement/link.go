package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

// LinkContract submits the create transaction for a draft invoice and binds
// the contract's invoice id returned by it. An invoice is linked at most once.
func (s *Service) LinkContract(ctx context.Context, input ChainActionInput) (*domain.Invoice, error) {
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
	if err := checkLinkable(inv); err != nil {
		return nil, err
	}

	conf, err := s.chain.SubmitSignedTransaction(ctx, input.SignedXDR)
	if err != nil {
		return nil, err
	}

	ev := newEvent(inv.ID, userID, domain.TxTypeCreate, decimal.Zero, conf)
	if conf.HasReturnValue {
		if id, convErr := soroban.ToUint64(conf.ReturnValue); convErr == nil {
			ev.Payload[payloadContractInvoiceID] = strconv.FormatUint(id, 10)
		}
	}

	linked, err := s.settle(ctx, ev)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice linked to contract",
		slog.Int64("invoice_id", linked.ID),
		slog.Uint64("contract_invoice_id", *linked.ContractInvoiceID),
		slog.String("tx_hash", conf.TxHash),
	)
	return linked, nil
}

func checkLinkable(inv *domain.Invoice) error {
	if inv.IsLinked() {
		return fmt.Errorf("invoice %d already linked to contract invoice %d: %w",
			inv.ID, *inv.ContractInvoiceID, domain.ErrConflict)
	}
	if inv.Status != domain.InvoiceStatusDraft {
		return domain.NewStateError("link contract", inv.Status, "")
	}
	return nil
}

func (s *Service) applyLink(ctx context.Context, inv *domain.Invoice, ev *confirmedEvent) error {
	if err := checkLinkable(inv); err != nil {
		return err
	}

	contractID, ok := payloadUint64(ev.Payload, payloadContractInvoiceID)
	if !ok {
		return &domain.ChainError{
			Kind:   domain.ErrChainExecution,
			TxHash: ev.TxHash,
			Err:    errors.New("contract invoice id missing from transaction result"),
		}
	}

	if err := s.invoices.LinkContract(ctx, inv.ID, contractID); err != nil {
		return fmt.Errorf("link contract: %w", err)
	}
	inv.ContractInvoiceID = &contractID
	inv.Status = domain.InvoiceStatusFunding
	return nil
}
