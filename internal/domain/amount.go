package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetDecimals is the precision of the native asset (1 XLM = 10^7 stroops).
const AssetDecimals = 7

var stroopsPerUnit = decimal.New(1, AssetDecimals)

// ParseAmount parses a positive asset amount with at most AssetDecimals
// fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	if !d.Equal(d.Truncate(AssetDecimals)) {
		return decimal.Zero, fmt.Errorf("amount has more than %d decimal places", AssetDecimals)
	}
	return d, nil
}

// ToStroops converts an asset amount to the contract's integer unit.
func ToStroops(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(stroopsPerUnit).Truncate(0)
}

// FromStroops converts the contract's integer unit back to an asset amount.
func FromStroops(stroops decimal.Decimal) decimal.Decimal {
	return stroops.Div(stroopsPerUnit)
}
