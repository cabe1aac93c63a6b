// Package participant implements the Participant Ledger using PostgreSQL.
// Aggregates are always recomputed from active rows; nothing here issues
// an independent increment of invoice totals.
package participant

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/cotravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new participant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"invoice_id", "user_id", "wallet_address", "contributed_amount::text", "penalty_amount::text",
	"status", "contributed_at_version", "joined_at",
}

const totalsSQL = `
SELECT COALESCE(SUM(contributed_amount), 0)::text, COUNT(*)
FROM invoice_participants
WHERE invoice_id = $1 AND status = 'active'`

// Get returns the participant row for (invoice, user).
// Returns domain.ErrNotFound if the user never joined.
func (r *Repo) Get(ctx context.Context, invoiceID int64, userID uuid.UUID) (*domain.Participant, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From("invoice_participants").
		Where(sq.Eq{"invoice_id": invoiceID, "user_id": userID})

	p, err := scanParticipant(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "participant", userID)
	}
	return p, nil
}

// ListByInvoice returns all participants of an invoice in join order,
// withdrawn ones included.
func (r *Repo) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Participant, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From("invoice_participants").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("joined_at", "user_id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list participants of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	result := make([]domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("list participants of invoice %d: %w", invoiceID, err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants of invoice %d: %w", invoiceID, err)
	}
	return result, nil
}

// Totals recomputes the aggregates over active participants.
func (r *Repo) Totals(ctx context.Context, invoiceID int64) (domain.LedgerTotals, error) {
	var (
		sum    string
		totals domain.LedgerTotals
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, totalsSQL, invoiceID).
		Scan(&sum, &totals.ParticipantCount)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("totals of invoice %d: %w", invoiceID, err)
	}
	if totals.TotalCollected, err = decimal.NewFromString(sum); err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("parse totals of invoice %d: %w", invoiceID, err)
	}
	return totals, nil
}

// Create inserts an active participant with zero contribution.
// Returns domain.ErrAlreadyExists when the user already has a row for the invoice.
func (r *Repo) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	stmt := postgres.Builder().
		Insert("invoice_participants").
		Columns("invoice_id", "user_id", "wallet_address", "contributed_at_version").
		Values(p.InvoiceID, p.UserID, p.WalletAddress, p.ContributedAtVersion).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanParticipant(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "participant", p.UserID)
	}
	return created, nil
}

// AddContribution adds amount to an active participant's contribution and
// records the invoice version it was made against.
func (r *Repo) AddContribution(ctx context.Context, invoiceID int64, userID uuid.UUID, amount decimal.Decimal, version int) error {
	stmt := postgres.Builder().
		Update("invoice_participants").
		Set("contributed_amount", sq.Expr("contributed_amount + ?::numeric", amount.String())).
		Set("contributed_at_version", version).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"invoice_id": invoiceID, "user_id": userID, "status": string(domain.ParticipantStatusActive)})

	return r.execOne(ctx, stmt, userID)
}

// MarkWithdrawn zeroes the contribution, stores the withheld penalty and
// excludes the participant from aggregates.
func (r *Repo) MarkWithdrawn(ctx context.Context, invoiceID int64, userID uuid.UUID, penalty decimal.Decimal) error {
	stmt := postgres.Builder().
		Update("invoice_participants").
		Set("status", string(domain.ParticipantStatusWithdrawn)).
		Set("contributed_amount", "0").
		Set("penalty_amount", penalty.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"invoice_id": invoiceID, "user_id": userID, "status": string(domain.ParticipantStatusActive)})

	return r.execOne(ctx, stmt, userID)
}

// SetContributedVersion acknowledges the current payout breakdown.
func (r *Repo) SetContributedVersion(ctx context.Context, invoiceID int64, userID uuid.UUID, version int) error {
	stmt := postgres.Builder().
		Update("invoice_participants").
		Set("contributed_at_version", version).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"invoice_id": invoiceID, "user_id": userID})

	return r.execOne(ctx, stmt, userID)
}

func (r *Repo) execOne(ctx context.Context, stmt sq.Sqlizer, userID uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return postgres.MapError(err, "participant", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "participant", userID)
	}
	return nil
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var (
		p                domain.Participant
		contributed, pen string
		status           string
	)
	if err := row.Scan(&p.InvoiceID, &p.UserID, &p.WalletAddress, &contributed, &pen,
		&status, &p.ContributedAtVersion, &p.JoinedAt); err != nil {
		return nil, err
	}
	p.Status = domain.ParticipantStatus(status)

	var err error
	if p.ContributedAmount, err = decimal.NewFromString(contributed); err != nil {
		return nil, fmt.Errorf("parse contributed_amount: %w", err)
	}
	if p.PenaltyAmount, err = decimal.NewFromString(pen); err != nil {
		return nil, fmt.Errorf("parse penalty_amount: %w", err)
	}
	return &p, nil
}
