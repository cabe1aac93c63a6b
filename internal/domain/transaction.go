package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the append-only proof that an off-chain mutation
// corresponds to a confirmed on-chain event.
type TransactionRecord struct {
	ID             int64
	InvoiceID      int64
	UserID         uuid.UUID
	TxHash         string
	Type           TxType
	Amount         decimal.Decimal
	LedgerSequence int64
	EventData      map[string]any
	CreatedAt      time.Time
}

// UnappliedConfirmation is a confirmed on-chain event whose off-chain
// mutation failed to commit. Payload carries what is needed to replay it.
type UnappliedConfirmation struct {
	TxHash         string
	InvoiceID      int64
	UserID         uuid.UUID
	Type           TxType
	Amount         decimal.Decimal
	LedgerSequence int64
	Payload        map[string]any
	LastError      string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

// Confirmation describes a transaction the network applied successfully.
type Confirmation struct {
	TxHash string
	Ledger int64
	// ReturnValue is the decoded return value of the top-level contract call.
	// HasReturnValue is false when the chain node did not expose it.
	ReturnValue    any
	HasReturnValue bool
}
