// Package journal stores confirmed chain events whose off-chain mutation
// failed to commit, so they can be replayed.
package journal

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/cotravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = "tx_hash, invoice_id, user_id, type, amount::text, ledger_sequence, payload, last_error, created_at, resolved_at"

// Record stores an unapplied confirmation. Recording the same tx hash again
// refreshes last_error and counts the attempt.
func (r *Repo) Record(ctx context.Context, c *domain.UnappliedConfirmation) error {
	payload := c.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal journal payload: %w", err)
	}

	stmt := postgres.Builder().
		Insert("unapplied_confirmations").
		Columns("tx_hash", "invoice_id", "user_id", "type", "amount", "ledger_sequence", "payload", "last_error").
		Values(c.TxHash, c.InvoiceID, c.UserID, string(c.Type), c.Amount.String(), c.LedgerSequence, raw, c.LastError).
		Suffix(`ON CONFLICT (tx_hash) DO UPDATE
			SET last_error = EXCLUDED.last_error,
			    attempts = unapplied_confirmations.attempts + 1,
			    updated_at = now()`)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt); err != nil {
		return postgres.MapError(err, "unapplied confirmation", c.TxHash)
	}
	return nil
}

// ListUnresolved returns up to limit pending entries, oldest first.
func (r *Repo) ListUnresolved(ctx context.Context, limit int) ([]domain.UnappliedConfirmation, error) {
	stmt := postgres.Builder().
		Select(selectColumns).
		From("unapplied_confirmations").
		Where("resolved_at IS NULL").
		OrderBy("created_at", "tx_hash").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list unapplied confirmations: %w", err)
	}
	defer rows.Close()

	result := make([]domain.UnappliedConfirmation, 0)
	for rows.Next() {
		c, err := scanConfirmation(rows)
		if err != nil {
			return nil, fmt.Errorf("list unapplied confirmations: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list unapplied confirmations: %w", err)
	}
	return result, nil
}

// Resolve marks an entry as applied. Resolving an unknown or already
// resolved hash returns domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, txHash string) error {
	stmt := postgres.Builder().
		Update("unapplied_confirmations").
		Set("resolved_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"tx_hash": txHash}).
		Where("resolved_at IS NULL")

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return postgres.MapError(err, "unapplied confirmation", txHash)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "unapplied confirmation", txHash)
	}
	return nil
}

func scanConfirmation(row pgx.Row) (*domain.UnappliedConfirmation, error) {
	var (
		c      domain.UnappliedConfirmation
		typ    string
		amount string
		raw    []byte
	)
	if err := row.Scan(&c.TxHash, &c.InvoiceID, &c.UserID, &typ, &amount, &c.LedgerSequence,
		&raw, &c.LastError, &c.CreatedAt, &c.ResolvedAt); err != nil {
		return nil, err
	}
	c.Type = domain.TxType(typ)

	var err error
	if c.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if err := json.Unmarshal(raw, &c.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &c, nil
}
