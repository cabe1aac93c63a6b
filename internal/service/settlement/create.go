package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

// Create stores a new draft invoice owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	items := toDomainItems(input.Items)
	draft := &domain.Invoice{
		OrganizerID:     userID,
		Name:            strings.TrimSpace(input.Name),
		Description:     trimOrNil(input.Description),
		Icon:            trimOrNil(input.Icon),
		TokenAddress:    trimOrNil(input.TokenAddress),
		AutoRelease:     input.AutoRelease,
		TargetAmount:    domain.SumItems(items),
		MinParticipants: input.MinParticipants,
		PenaltyPercent:  input.PenaltyPercent,
		Deadline:        input.Deadline.UTC(),
		Items:           items,
	}

	var inv *domain.Invoice
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		inv, createErr = s.invoices.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create invoice: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invoice created",
		slog.String("user_id", userID.String()),
		slog.Int64("invoice_id", inv.ID),
		slog.String("target_amount", inv.TargetAmount.String()),
		slog.Int("item_count", len(inv.Items)),
	)

	return inv, nil
}
