package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/config"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type invoiceRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Invoice, error)
	ListItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.InvoiceSummary, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	LinkContract(ctx context.Context, id int64, contractInvoiceID uint64) error
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	SetTotals(ctx context.Context, id int64, totals domain.LedgerTotals) error
	ReplaceItems(ctx context.Context, id int64, items []domain.InvoiceItem) ([]domain.InvoiceItem, error)
	IncrementVersion(ctx context.Context, id int64) (int, error)
	CreateModification(ctx context.Context, m *domain.InvoiceModification) (*domain.InvoiceModification, error)
	ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error)
}

type participantRepo interface {
	Get(ctx context.Context, invoiceID int64, userID uuid.UUID) (*domain.Participant, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Participant, error)
	Totals(ctx context.Context, invoiceID int64) (domain.LedgerTotals, error)
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	AddContribution(ctx context.Context, invoiceID int64, userID uuid.UUID, amount decimal.Decimal, version int) error
	MarkWithdrawn(ctx context.Context, invoiceID int64, userID uuid.UUID, penalty decimal.Decimal) error
	SetContributedVersion(ctx context.Context, invoiceID int64, userID uuid.UUID, version int) error
}

type txRecordRepo interface {
	Create(ctx context.Context, rec *domain.TransactionRecord) (*domain.TransactionRecord, error)
	ExistsByHash(ctx context.Context, txHash string) (bool, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error)
}

type journalRepo interface {
	Record(ctx context.Context, c *domain.UnappliedConfirmation) error
	ListUnresolved(ctx context.Context, limit int) ([]domain.UnappliedConfirmation, error)
	Resolve(ctx context.Context, txHash string) error
}

type chainGateway interface {
	SubmitSignedTransaction(ctx context.Context, signedXDR string) (*domain.Confirmation, error)
	GetState(ctx context.Context, contractInvoiceID uint64) (*domain.OnchainState, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service coordinates invoice funding and settlement between the off-chain
// ledger and the escrow contract. Chain-confirming operations follow three
// phases: validate, submit and wait for confirmation, then apply the
// off-chain mutation and its transaction record in one DB transaction.
type Service struct {
	log          *slog.Logger
	invoices     invoiceRepo
	participants participantRepo
	txRecords    txRecordRepo
	journal      journalRepo
	chain        chainGateway
	tx           txManager
	cfg          config.SettlementConfig
	now          func() time.Time
}

// NewService creates a new settlement Service.
func NewService(
	logger *slog.Logger,
	invoices invoiceRepo,
	participants participantRepo,
	txRecords txRecordRepo,
	journal journalRepo,
	chain chainGateway,
	tx txManager,
	cfg config.SettlementConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "settlement"),
		invoices:     invoices,
		participants: participants,
		txRecords:    txRecords,
		journal:      journal,
		chain:        chain,
		tx:           tx,
		cfg:          cfg,
		now:          time.Now,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}

// recomputeTotals derives the aggregates from active participant rows and
// writes them back to the invoice. Callers must hold the invoice row lock.
func (s *Service) recomputeTotals(ctx context.Context, inv *domain.Invoice) error {
	totals, err := s.participants.Totals(ctx, inv.ID)
	if err != nil {
		return err
	}
	if err := s.invoices.SetTotals(ctx, inv.ID, totals); err != nil {
		return err
	}
	inv.TotalCollected = totals.TotalCollected
	inv.ParticipantCount = totals.ParticipantCount
	return nil
}
