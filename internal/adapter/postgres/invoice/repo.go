// Package invoice implements the Invoice Store using PostgreSQL.
// It owns the invoices, invoice_items and invoice_modifications tables.
package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/cotravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Repo provides invoice persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invoice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var invoiceColumns = []string{
	"id", "organizer_id", "contract_invoice_id", "name", "description", "icon", "token_address",
	"auto_release", "target_amount::text", "min_participants", "penalty_percent", "deadline",
	"status", "version", "total_collected::text", "participant_count", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "invoice_id", "description", "amount::text", "recipient_wallet", "business_ref", "sort_order",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an invoice without its items.
// Returns domain.ErrNotFound if the invoice does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	stmt := postgres.Builder().
		Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"id": id})

	inv, err := scanInvoice(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}
	return inv, nil
}

// GetForUpdate returns an invoice and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Invoice, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("invoice %d: row lock requires a transaction", id)
	}

	stmt := postgres.Builder().
		Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")

	inv, err := scanInvoice(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt))
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}
	return inv, nil
}

// ListItems returns the invoice's items ordered by position.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	stmt := postgres.Builder().
		Select(itemColumns...).
		From("invoice_items").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("sort_order")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list items of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items of invoice %d: %w", invoiceID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items of invoice %d: %w", invoiceID, err)
	}
	return items, nil
}

// userScope matches invoices the user organizes or participates in.
func userScope(userID uuid.UUID) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"i.organizer_id": userID},
		sq.Expr("EXISTS (SELECT 1 FROM invoice_participants p WHERE p.invoice_id = i.id AND p.user_id = ?)", userID),
	}
}

// ListByUser returns a page of invoices the user organizes or participates in,
// newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.InvoiceSummary, error) {
	stmt := postgres.Builder().
		Select(
			"i.id", "i.name", "i.status", "i.target_amount::text", "i.total_collected::text",
			"i.participant_count", "i.deadline", "i.created_at",
		).
		Column(sq.Expr("i.organizer_id = ? AS is_organizer", userID)).
		From("invoices i").
		Where(userScope(userID)).
		OrderBy("i.created_at DESC", "i.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list invoices of user %s: %w", userID, err)
	}
	defer rows.Close()

	result := make([]domain.InvoiceSummary, 0)
	for rows.Next() {
		var (
			s              domain.InvoiceSummary
			status         string
			target, totals string
		)
		if err := rows.Scan(&s.ID, &s.Name, &status, &target, &totals,
			&s.ParticipantCount, &s.Deadline, &s.CreatedAt, &s.IsOrganizer); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		s.Status = domain.InvoiceStatus(status)
		if s.TargetAmount, err = decimal.NewFromString(target); err != nil {
			return nil, fmt.Errorf("parse target_amount: %w", err)
		}
		if s.TotalCollected, err = decimal.NewFromString(totals); err != nil {
			return nil, fmt.Errorf("parse total_collected: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices of user %s: %w", userID, err)
	}
	return result, nil
}

// CountByUser returns the total number of invoices visible to the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	stmt := postgres.Builder().
		Select("count(*)").
		From("invoices i").
		Where(userScope(userID))

	var n int
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices of user %s: %w", userID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an invoice with its items and returns the persisted invoice.
// Status and version are always reset to draft/1. Run it inside a transaction
// so that a failing item insert leaves no orphan invoice.
func (r *Repo) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Insert("invoices").
		Columns(
			"organizer_id", "name", "description", "icon", "token_address", "auto_release",
			"target_amount", "min_participants", "penalty_percent", "deadline",
		).
		Values(
			inv.OrganizerID, inv.Name, inv.Description, inv.Icon, inv.TokenAddress, inv.AutoRelease,
			inv.TargetAmount.String(), inv.MinParticipants, inv.PenaltyPercent, inv.Deadline,
		).
		Suffix("RETURNING " + strings.Join(invoiceColumns, ", "))

	created, err := scanInvoice(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "invoice", "new")
	}

	items, err := r.insertItems(ctx, q, created.ID, inv.Items)
	if err != nil {
		return nil, err
	}
	created.Items = items

	return created, nil
}

func (r *Repo) insertItems(ctx context.Context, q postgres.Querier, invoiceID int64, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
	if len(items) == 0 {
		return []domain.InvoiceItem{}, nil
	}

	stmt := postgres.Builder().
		Insert("invoice_items").
		Columns("invoice_id", "description", "amount", "recipient_wallet", "business_ref", "sort_order").
		Suffix("RETURNING " + strings.Join(itemColumns, ", "))
	for i, it := range items {
		stmt = stmt.Values(invoiceID, it.Description, it.Amount.String(), it.RecipientWallet, it.BusinessRef, i)
	}

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "invoice items", invoiceID)
	}
	defer rows.Close()

	result := make([]domain.InvoiceItem, 0, len(items))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("insert items of invoice %d: %w", invoiceID, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "invoice items", invoiceID)
	}
	return result, nil
}

// LinkContract records the on-chain id and moves the invoice to funding.
// The update only applies while contract_invoice_id is NULL; otherwise
// domain.ErrConflict is returned. An id already used by another invoice
// yields domain.ErrAlreadyExists.
func (r *Repo) LinkContract(ctx context.Context, id int64, contractInvoiceID uint64) error {
	if contractInvoiceID > math.MaxInt64 {
		return fmt.Errorf("invoice %d: contract id %d out of range: %w", id, contractInvoiceID, domain.ErrValidation)
	}

	stmt := postgres.Builder().
		Update("invoices").
		Set("contract_invoice_id", int64(contractInvoiceID)).
		Set("status", string(domain.InvoiceStatusFunding)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("contract_invoice_id IS NULL")

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: contract already linked: %w", id, domain.ErrConflict)
	}
	return nil
}

// UpdateStatus sets the invoice status.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	stmt := postgres.Builder().
		Update("invoices").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, stmt, id)
}

// SetTotals writes recomputed aggregates back to the invoice row.
func (r *Repo) SetTotals(ctx context.Context, id int64, totals domain.LedgerTotals) error {
	stmt := postgres.Builder().
		Update("invoices").
		Set("total_collected", totals.TotalCollected.String()).
		Set("participant_count", totals.ParticipantCount).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, stmt, id)
}

// ReplaceItems swaps the full item list and sets target_amount to the new sum.
func (r *Repo) ReplaceItems(ctx context.Context, id int64, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	del := postgres.Builder().Delete("invoice_items").Where(sq.Eq{"invoice_id": id})
	if _, err := postgres.Exec(ctx, q, del); err != nil {
		return nil, postgres.MapError(err, "invoice items", id)
	}

	inserted, err := r.insertItems(ctx, q, id, items)
	if err != nil {
		return nil, err
	}

	upd := postgres.Builder().
		Update("invoices").
		Set("target_amount", domain.SumItems(items).String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if err := r.execOne(ctx, upd, id); err != nil {
		return nil, err
	}

	return inserted, nil
}

// IncrementVersion bumps the version atomically and returns the new value.
func (r *Repo) IncrementVersion(ctx context.Context, id int64) (int, error) {
	stmt := postgres.Builder().
		Update("invoices").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING version")

	var version int
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt).Scan(&version); err != nil {
		return 0, postgres.MapError(err, "invoice", id)
	}
	return version, nil
}

func (r *Repo) execOne(ctx context.Context, stmt sq.Sqlizer, id int64) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "invoice", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Modifications
// ---------------------------------------------------------------------------

type snapshotItem struct {
	Description     string  `json:"description"`
	Amount          string  `json:"amount"`
	RecipientWallet string  `json:"recipient_wallet"`
	BusinessRef     *string `json:"business_ref,omitempty"`
	SortOrder       int     `json:"sort_order"`
}

// CreateModification stores a snapshot of the items replaced by an update.
func (r *Repo) CreateModification(ctx context.Context, m *domain.InvoiceModification) (*domain.InvoiceModification, error) {
	snapshot := make([]snapshotItem, len(m.ItemsSnapshot))
	for i, it := range m.ItemsSnapshot {
		snapshot[i] = snapshotItem{
			Description:     it.Description,
			Amount:          it.Amount.String(),
			RecipientWallet: it.RecipientWallet,
			BusinessRef:     it.BusinessRef,
			SortOrder:       it.SortOrder,
		}
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal items snapshot: %w", err)
	}

	stmt := postgres.Builder().
		Insert("invoice_modifications").
		Columns("invoice_id", "version", "change_summary", "items_snapshot").
		Values(m.InvoiceID, m.Version, m.ChangeSummary, raw).
		Suffix("RETURNING id, created_at")

	result := *m
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt).
		Scan(&result.ID, &result.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "invoice modification", m.InvoiceID)
	}
	return &result, nil
}

// ListModifications returns the modification history, oldest first.
func (r *Repo) ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error) {
	stmt := postgres.Builder().
		Select("id", "invoice_id", "version", "change_summary", "items_snapshot", "created_at").
		From("invoice_modifications").
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("version")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt)
	if err != nil {
		return nil, fmt.Errorf("list modifications of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	result := make([]domain.InvoiceModification, 0)
	for rows.Next() {
		var (
			m   domain.InvoiceModification
			raw []byte
		)
		if err := rows.Scan(&m.ID, &m.InvoiceID, &m.Version, &m.ChangeSummary, &raw, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan modification: %w", err)
		}
		if m.ItemsSnapshot, err = decodeSnapshot(raw, invoiceID); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list modifications of invoice %d: %w", invoiceID, err)
	}
	return result, nil
}

func decodeSnapshot(raw []byte, invoiceID int64) ([]domain.InvoiceItem, error) {
	var snapshot []snapshotItem
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode items snapshot: %w", err)
	}
	items := make([]domain.InvoiceItem, len(snapshot))
	for i, s := range snapshot {
		amount, err := decimal.NewFromString(s.Amount)
		if err != nil {
			return nil, fmt.Errorf("decode items snapshot amount: %w", err)
		}
		items[i] = domain.InvoiceItem{
			InvoiceID:       invoiceID,
			Description:     s.Description,
			Amount:          amount,
			RecipientWallet: s.RecipientWallet,
			BusinessRef:     s.BusinessRef,
			SortOrder:       s.SortOrder,
		}
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		inv            domain.Invoice
		contractID     *int64
		target, totals string
		status         string
		deadline       time.Time
	)
	err := row.Scan(
		&inv.ID, &inv.OrganizerID, &contractID, &inv.Name, &inv.Description, &inv.Icon, &inv.TokenAddress,
		&inv.AutoRelease, &target, &inv.MinParticipants, &inv.PenaltyPercent, &deadline,
		&status, &inv.Version, &totals, &inv.ParticipantCount, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contractID != nil {
		v := uint64(*contractID)
		inv.ContractInvoiceID = &v
	}
	inv.Status = domain.InvoiceStatus(status)
	inv.Deadline = deadline.UTC()
	if inv.TargetAmount, err = decimal.NewFromString(target); err != nil {
		return nil, fmt.Errorf("parse target_amount: %w", err)
	}
	if inv.TotalCollected, err = decimal.NewFromString(totals); err != nil {
		return nil, fmt.Errorf("parse total_collected: %w", err)
	}
	return &inv, nil
}

func scanItem(row pgx.Row) (domain.InvoiceItem, error) {
	var (
		item   domain.InvoiceItem
		amount string
	)
	if err := row.Scan(&item.ID, &item.InvoiceID, &item.Description, &amount,
		&item.RecipientWallet, &item.BusinessRef, &item.SortOrder); err != nil {
		return domain.InvoiceItem{}, err
	}
	var err error
	if item.Amount, err = decimal.NewFromString(amount); err != nil {
		return domain.InvoiceItem{}, fmt.Errorf("parse item amount: %w", err)
	}
	return item, nil
}
