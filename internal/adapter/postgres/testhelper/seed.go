package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// TestWallet is a syntactically valid Stellar account address.
const TestWallet = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// InvoiceOption customizes a seeded invoice.
type InvoiceOption func(inv *domain.Invoice)

// WithStatus seeds the invoice in the given status. Non-draft statuses get a
// contract id so the linked-status constraint holds.
func WithStatus(status domain.InvoiceStatus) InvoiceOption {
	return func(inv *domain.Invoice) { inv.Status = status }
}

// WithTarget sets the target amount and min participants.
func WithTarget(target string, minParticipants int) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.TargetAmount = decimal.RequireFromString(target)
		inv.MinParticipants = minParticipants
	}
}

// SeedInvoice inserts an invoice with a single item covering the target amount.
// Defaults: draft, 100 XLM target, 2 participants minimum, 10% penalty, deadline in 7 days.
func SeedInvoice(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, opts ...InvoiceOption) domain.Invoice {
	t.Helper()
	ctx := context.Background()

	inv := domain.Invoice{
		OrganizerID:     organizerID,
		Name:            "Trip " + uniqueSuffix(),
		TargetAmount:    decimal.NewFromInt(100),
		MinParticipants: 2,
		PenaltyPercent:  10,
		Deadline:        time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Microsecond),
		Status:          domain.InvoiceStatusDraft,
		Version:         1,
	}
	for _, opt := range opts {
		opt(&inv)
	}

	var contractID *int64
	if inv.Status != domain.InvoiceStatusDraft {
		v := time.Now().UnixNano() & 0x7fffffff
		contractID = &v
		u := uint64(v)
		inv.ContractInvoiceID = &u
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO invoices (organizer_id, contract_invoice_id, name, target_amount, min_participants,
		                       penalty_percent, deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		inv.OrganizerID, contractID, inv.Name, inv.TargetAmount.String(), inv.MinParticipants,
		inv.PenaltyPercent, inv.Deadline, string(inv.Status),
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInvoice insert invoice: %v", err)
	}

	item := domain.InvoiceItem{
		InvoiceID:       inv.ID,
		Description:     "Hotel",
		Amount:          inv.TargetAmount,
		RecipientWallet: TestWallet,
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO invoice_items (invoice_id, description, amount, recipient_wallet, sort_order)
		 VALUES ($1, $2, $3, $4, 0) RETURNING id`,
		item.InvoiceID, item.Description, item.Amount.String(), item.RecipientWallet,
	).Scan(&item.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInvoice insert item: %v", err)
	}
	inv.Items = []domain.InvoiceItem{item}

	return inv
}

// SeedParticipant inserts an active participant with the given contribution
// at the invoice's current version.
func SeedParticipant(t *testing.T, pool *pgxpool.Pool, invoiceID int64, contributed string) domain.Participant {
	t.Helper()

	p := domain.Participant{
		InvoiceID:         invoiceID,
		UserID:            uuid.New(),
		WalletAddress:     TestWallet,
		ContributedAmount: decimal.RequireFromString(contributed),
		Status:            domain.ParticipantStatusActive,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO invoice_participants (invoice_id, user_id, wallet_address, contributed_amount, contributed_at_version)
		 SELECT $1, $2, $3, $4, version FROM invoices WHERE id = $1
		 RETURNING contributed_at_version, joined_at`,
		p.InvoiceID, p.UserID, p.WalletAddress, p.ContributedAmount.String(),
	).Scan(&p.ContributedAtVersion, &p.JoinedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipant insert: %v", err)
	}

	return p
}
