package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// InvoiceDetails is an invoice with its items and a best-effort view of the
// contract state. OnchainError is set when the state could not be read.
type InvoiceDetails struct {
	Invoice      *domain.Invoice
	Onchain      *domain.OnchainState
	OnchainError string
}

// InvoiceList is one page of the caller's invoices.
type InvoiceList struct {
	Items []domain.InvoiceSummary
	Total int
	Page  int
	Limit int
}

// WithdrawalResult describes a confirmed withdrawal.
type WithdrawalResult struct {
	Invoice   *domain.Invoice
	Withdrawn decimal.Decimal
	Penalty   decimal.Decimal
	TxHash    string
}

// ReplayResult counts the outcome of one journal replay pass.
type ReplayResult struct {
	Applied  int
	Resolved int
	Failed   int
}
