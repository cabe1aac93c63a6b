package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Participant is a user's membership and contribution record within one invoice.
type Participant struct {
	InvoiceID            int64
	UserID               uuid.UUID
	WalletAddress        string
	ContributedAmount    decimal.Decimal
	PenaltyAmount        decimal.Decimal
	Status               ParticipantStatus
	ContributedAtVersion int
	JoinedAt             time.Time
}

// IsActive reports whether the participant still counts toward the aggregates.
func (p *Participant) IsActive() bool {
	return p.Status == ParticipantStatusActive
}

// IsStale reports whether the payout breakdown changed after the participant
// last committed to it. A stale participant must confirm or opt out before
// any further contribution is accepted.
func (p *Participant) IsStale(invoiceVersion int) bool {
	return p.IsActive() && p.ContributedAtVersion < invoiceVersion
}

// LedgerTotals are the aggregates derived from active participant rows.
type LedgerTotals struct {
	TotalCollected   decimal.Decimal
	ParticipantCount int
}

// PenaltyFor returns the early-withdrawal penalty the contract withholds
// from amount, truncated to stroop precision.
func PenaltyFor(amount decimal.Decimal, penaltyPercent int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(penaltyPercent))).
		Div(decimal.NewFromInt(100)).
		Truncate(AssetDecimals)
}
