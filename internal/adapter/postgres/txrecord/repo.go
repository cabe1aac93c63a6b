// Package txrecord persists the append-only transaction records that prove
// each off-chain mutation against a confirmed on-chain transaction.
package txrecord

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

// Repo provides transaction record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = "id, invoice_id, user_id, tx_hash, type, amount::text, ledger_sequence, event_data, created_at"

// Create appends a transaction record. A reused tx hash yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec *domain.TransactionRecord) (*domain.TransactionRecord, error) {
	eventData := rec.EventData
	if eventData == nil {
		eventData = map[string]any{}
	}
	raw, err := json.Marshal(eventData)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}

	stmt := postgres.Builder().
		Insert("transactions").
		Columns("invoice_id", "user_id", "tx_hash", "type", "amount", "ledger_sequence", "event_data").
		Values(rec.InvoiceID, rec.UserID, rec.TxHash, string(rec.Type), rec.Amount.String(), rec.LedgerSequence, raw).
		Suffix("RETURNING " + selectColumns)

	created, err := scanRecord(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "transaction", rec.TxHash)
	}
	return created, nil
}

// GetByHash returns the record for a tx hash or domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, txHash string) (*domain.TransactionRecord, error) {
	stmt := postgres.Builder().
		Select(selectColumns).
		From("transactions").
		Where(sq.Eq{"tx_hash": txHash})

	rec, err := scanRecord(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "transaction", txHash)
	}
	return rec, nil
}

// ExistsByHash reports whether a record for txHash has been committed.
func (r *Repo) ExistsByHash(ctx context.Context, txHash string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE tx_hash = $1)`, txHash).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transaction %s: %w", txHash, err)
	}
	return exists, nil
}

// ListByInvoice returns the invoice's records in commit order.
func (r *Repo) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error) {
	stmt := postgres.Builder().
		Select(selectColumns).
		From("transactions").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("created_at", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list transactions of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	result := make([]domain.TransactionRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions of invoice %d: %w", invoiceID, err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions of invoice %d: %w", invoiceID, err)
	}
	return result, nil
}

func scanRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	var (
		rec    domain.TransactionRecord
		typ    string
		amount string
		raw    []byte
	)
	if err := row.Scan(&rec.ID, &rec.InvoiceID, &rec.UserID, &rec.TxHash, &typ, &amount,
		&rec.LedgerSequence, &raw, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Type = domain.TxType(typ)

	var err error
	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec.EventData); err != nil {
			return nil, fmt.Errorf("decode event data: %w", err)
		}
	}
	return &rec, nil
}
