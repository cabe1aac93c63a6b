package settlement

import (
	"context"
	"fmt"
	"log/slog"
)

// ReplayUnapplied re-applies journalled confirmations, oldest first. An
// entry whose transaction is already recorded is only marked resolved.
// A limit of zero uses the configured batch size.
func (s *Service) ReplayUnapplied(ctx context.Context, limit int) (*ReplayResult, error) {
	if limit <= 0 {
		limit = s.cfg.ReplayBatchSize
	}

	entries, err := s.journal.ListUnresolved(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list unapplied confirmations: %w", err)
	}

	result := &ReplayResult{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		exists, err := s.txRecords.ExistsByHash(ctx, entry.TxHash)
		if err != nil {
			return result, fmt.Errorf("check transaction %s: %w", entry.TxHash, err)
		}
		if exists {
			if err := s.journal.Resolve(ctx, entry.TxHash); err != nil {
				return result, fmt.Errorf("resolve %s: %w", entry.TxHash, err)
			}
			result.Resolved++
			continue
		}

		ev := eventFromJournal(entry)
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if _, applyErr := s.apply(txCtx, ev); applyErr != nil {
				return applyErr
			}
			return s.journal.Resolve(txCtx, ev.TxHash)
		})
		if err != nil {
			result.Failed++
			s.log.WarnContext(ctx, "replay unapplied confirmation",
				slog.String("tx_hash", entry.TxHash),
				slog.Int64("invoice_id", entry.InvoiceID),
				slog.String("type", entry.Type.String()),
				slog.String("error", err.Error()),
			)
			entry.LastError = err.Error()
			if jerr := s.journal.Record(ctx, &entry); jerr != nil {
				return result, fmt.Errorf("update journal %s: %w", entry.TxHash, jerr)
			}
			continue
		}

		result.Applied++
		s.log.InfoContext(ctx, "unapplied confirmation replayed",
			slog.String("tx_hash", entry.TxHash),
			slog.Int64("invoice_id", entry.InvoiceID),
			slog.String("type", entry.Type.String()),
		)
	}

	return result, nil
}
