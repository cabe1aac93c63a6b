package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is the off-chain record of a funding pool that mirrors one
// on-chain escrow instance once linked.
type Invoice struct {
	ID                int64
	OrganizerID       uuid.UUID
	ContractInvoiceID *uint64
	Name              string
	Description       *string
	Icon              *string
	TokenAddress      *string
	AutoRelease       bool
	TargetAmount      decimal.Decimal
	MinParticipants   int
	PenaltyPercent    int
	Deadline          time.Time
	Status            InvoiceStatus
	Version           int
	TotalCollected    decimal.Decimal
	ParticipantCount  int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Items is populated only by callers that load the payout breakdown.
	Items []InvoiceItem
}

// IsLinked reports whether the invoice has an on-chain counterpart.
func (i *Invoice) IsLinked() bool {
	return i.ContractInvoiceID != nil
}

// FundingReached reports whether both the amount and headcount thresholds are met.
func (i *Invoice) FundingReached() bool {
	return i.TotalCollected.GreaterThanOrEqual(i.TargetAmount) &&
		i.ParticipantCount >= i.MinParticipants
}

// DeadlinePassed reports whether now is at or after the deadline.
func (i *Invoice) DeadlinePassed(now time.Time) bool {
	return !now.Before(i.Deadline)
}

// InvoiceItem is one line of the payout breakdown.
type InvoiceItem struct {
	ID              int64
	InvoiceID       int64
	Description     string
	Amount          decimal.Decimal
	RecipientWallet string
	BusinessRef     *string
	SortOrder       int
}

// SumItems returns the total of all item amounts.
func SumItems(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// InvoiceModification is a historical snapshot of the items replaced by an
// UpdateItems call. Version is the invoice version produced by the change.
type InvoiceModification struct {
	ID            int64
	InvoiceID     int64
	Version       int
	ChangeSummary string
	ItemsSnapshot []InvoiceItem
	CreatedAt     time.Time
}

// InvoiceSummary is the list-view projection used by dashboards.
type InvoiceSummary struct {
	ID               int64
	Name             string
	Status           InvoiceStatus
	TargetAmount     decimal.Decimal
	TotalCollected   decimal.Decimal
	ParticipantCount int
	Deadline         time.Time
	CreatedAt        time.Time
	IsOrganizer      bool
}

// OnchainState is the contract-side view of an escrow instance.
type OnchainState struct {
	Status           string
	TotalCollected   decimal.Decimal
	ParticipantCount int
}
