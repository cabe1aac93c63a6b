package settlement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban/xdr"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxItems          = 50
	maxSummaryLen     = 500
)

// ItemInput is one payout line as submitted by the organizer.
type ItemInput struct {
	Description     string
	Amount          decimal.Decimal
	RecipientWallet string
	BusinessRef     *string
}

// CreateInvoiceInput holds the parameters for creating an invoice.
type CreateInvoiceInput struct {
	Name        string
	Description *string
	Icon        *string
	// TokenAddress is the asset contract; nil means the native asset.
	TokenAddress *string
	AutoRelease  bool
	Items        []ItemInput
	// TargetAmount must equal the item sum when set; nil derives it.
	TargetAmount    *decimal.Decimal
	MinParticipants int
	PenaltyPercent  int
	Deadline        time.Time
}

// Validate checks all fields against now and collects all errors.
func (i CreateInvoiceInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	if i.TokenAddress != nil && !xdr.IsContractAddress(*i.TokenAddress) {
		errs = append(errs, domain.FieldError{Field: "token_address", Message: "must be a contract address"})
	}

	errs = append(errs, validateItems(i.Items)...)

	if i.TargetAmount != nil && !i.TargetAmount.Equal(sumItemInputs(i.Items)) {
		errs = append(errs, domain.FieldError{Field: "target_amount", Message: "must equal the sum of item amounts"})
	}
	if i.MinParticipants < 1 {
		errs = append(errs, domain.FieldError{Field: "min_participants", Message: "must be at least 1"})
	}
	if i.PenaltyPercent < 0 || i.PenaltyPercent > 100 {
		errs = append(errs, domain.FieldError{Field: "penalty_percent", Message: "must be between 0 and 100"})
	}
	if i.Deadline.IsZero() {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "required"})
	} else if !i.Deadline.After(now) {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateItems(items []ItemInput) []domain.FieldError {
	var errs []domain.FieldError

	if len(items) == 0 {
		return append(errs, domain.FieldError{Field: "items", Message: "at least one item is required"})
	}
	if len(items) > maxItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", maxItems)})
	}

	for idx, it := range items {
		prefix := fmt.Sprintf("items[%d].", idx)
		if strings.TrimSpace(it.Description) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "description", Message: "required"})
		}
		if msg := checkAmount(it.Amount); msg != "" {
			errs = append(errs, domain.FieldError{Field: prefix + "amount", Message: msg})
		}
		if strings.TrimSpace(it.RecipientWallet) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "recipient_wallet", Message: "required"})
		} else if !xdr.IsAccountAddress(strings.TrimSpace(it.RecipientWallet)) {
			errs = append(errs, domain.FieldError{Field: prefix + "recipient_wallet", Message: "must be a Stellar account address"})
		}
	}
	return errs
}

// checkAmount returns a non-empty message when amount is not a positive
// value representable in stroops.
func checkAmount(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return "must be positive"
	}
	if !amount.Equal(amount.Truncate(domain.AssetDecimals)) {
		return fmt.Sprintf("at most %d decimal places", domain.AssetDecimals)
	}
	return ""
}

func sumItemInputs(items []ItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

func toDomainItems(items []ItemInput) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, 0, len(items))
	for idx, it := range items {
		out = append(out, domain.InvoiceItem{
			Description:     strings.TrimSpace(it.Description),
			Amount:          it.Amount,
			RecipientWallet: strings.TrimSpace(it.RecipientWallet),
			BusinessRef:     trimOrNil(it.BusinessRef),
			SortOrder:       idx,
		})
	}
	return out
}

// trimOrNil trims s and returns nil for nil or blank input.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// ChainActionInput identifies an invoice and the client-signed transaction
// that performs the action on chain.
type ChainActionInput struct {
	InvoiceID int64
	SignedXDR string
}

// Validate checks all fields and collects all errors.
func (i ChainActionInput) Validate() error {
	var errs []domain.FieldError
	errs = appendInvoiceID(errs, i.InvoiceID)
	errs = appendSignedXDR(errs, i.SignedXDR)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemsInput replaces the payout breakdown of an invoice. SignedXDR
// carries the update_recipients call and is required once the invoice is linked.
type UpdateItemsInput struct {
	InvoiceID     int64
	Items         []ItemInput
	ChangeSummary string
	SignedXDR     string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemsInput) Validate() error {
	var errs []domain.FieldError
	errs = appendInvoiceID(errs, i.InvoiceID)
	errs = append(errs, validateItems(i.Items)...)
	if len(i.ChangeSummary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "change_summary", Message: fmt.Sprintf("max %d characters", maxSummaryLen)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JoinInput holds the parameters for joining an invoice.
type JoinInput struct {
	InvoiceID     int64
	WalletAddress string
}

// Validate checks all fields and collects all errors.
func (i JoinInput) Validate() error {
	var errs []domain.FieldError
	errs = appendInvoiceID(errs, i.InvoiceID)
	wallet := strings.TrimSpace(i.WalletAddress)
	if wallet == "" {
		errs = append(errs, domain.FieldError{Field: "wallet_address", Message: "required"})
	} else if !xdr.IsAccountAddress(wallet) {
		errs = append(errs, domain.FieldError{Field: "wallet_address", Message: "must be a Stellar account address"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ContributeInput holds the parameters for recording a contribution.
type ContributeInput struct {
	InvoiceID int64
	Amount    decimal.Decimal
	SignedXDR string
}

// Validate checks all fields and collects all errors.
func (i ContributeInput) Validate() error {
	var errs []domain.FieldError
	errs = appendInvoiceID(errs, i.InvoiceID)
	if msg := checkAmount(i.Amount); msg != "" {
		errs = append(errs, domain.FieldError{Field: "amount", Message: msg})
	}
	errs = appendSignedXDR(errs, i.SignedXDR)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInvoicesInput holds pagination parameters. Zero values select defaults.
type ListInvoicesInput struct {
	Page  int
	Limit int
}

func appendInvoiceID(errs []domain.FieldError, id int64) []domain.FieldError {
	if id <= 0 {
		return append(errs, domain.FieldError{Field: "invoice_id", Message: "must be a positive integer"})
	}
	return errs
}

func appendSignedXDR(errs []domain.FieldError, signedXDR string) []domain.FieldError {
	if strings.TrimSpace(signedXDR) == "" {
		return append(errs, domain.FieldError{Field: "signed_xdr", Message: "required"})
	}
	return errs
}
