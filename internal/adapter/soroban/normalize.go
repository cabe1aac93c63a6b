package soroban

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Contract status names in declaration order; numeric enum values index this.
var contractStatuses = []string{"created", "funding", "completed", "cancelled", "released"}

// NormalizeEnum converts the shapes a contract enum can take after decoding
// into one lowercase name: a plain string, a single-element list holding the
// variant name, a numeric variant index, or a single-key map.
func NormalizeEnum(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", fmt.Errorf("soroban: empty enum value")
		}
		return strings.ToLower(t), nil
	case []any:
		if len(t) != 1 {
			return "", fmt.Errorf("soroban: enum list has %d elements", len(t))
		}
		return NormalizeEnum(t[0])
	case []string:
		if len(t) != 1 {
			return "", fmt.Errorf("soroban: enum list has %d elements", len(t))
		}
		return NormalizeEnum(t[0])
	case map[string]any:
		if len(t) != 1 {
			return "", fmt.Errorf("soroban: enum map has %d keys", len(t))
		}
		for k := range t {
			return NormalizeEnum(k)
		}
	}

	idx, err := toUint64(v)
	if err != nil {
		return "", fmt.Errorf("soroban: unsupported enum value %T", v)
	}
	if idx >= uint64(len(contractStatuses)) {
		return "", fmt.Errorf("soroban: enum index %d out of range", idx)
	}
	return contractStatuses[idx], nil
}

// ToUint64 converts a decoded integer return value to uint64.
func ToUint64(v any) (uint64, error) {
	return toUint64(v)
}

func toUint64(v any) (uint64, error) {
	switch t := v.(type) {
	case uint32:
		return uint64(t), nil
	case uint64:
		return t, nil
	case int32:
		if t >= 0 {
			return uint64(t), nil
		}
	case int64:
		if t >= 0 {
			return uint64(t), nil
		}
	case int:
		if t >= 0 {
			return uint64(t), nil
		}
	case float64:
		if t >= 0 && t <= math.MaxInt64 && t == math.Trunc(t) {
			return uint64(t), nil
		}
	case *big.Int:
		if t.Sign() >= 0 && t.IsUint64() {
			return t.Uint64(), nil
		}
	default:
		return 0, fmt.Errorf("soroban: %T is not an integer", v)
	}
	return 0, fmt.Errorf("soroban: %v is not a non-negative integer", v)
}

// stroopsToAmount converts a decoded i128 stroop value to an asset amount.
func stroopsToAmount(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case *big.Int:
		return domain.FromStroops(decimal.NewFromBigInt(t, 0)), nil
	case int64:
		return domain.FromStroops(decimal.NewFromInt(t)), nil
	}
	n, err := toUint64(v)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.FromStroops(decimal.NewFromUint64(n)), nil
}

// ParseState converts a decoded get_state result into domain.OnchainState.
func ParseState(v any) (*domain.OnchainState, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("soroban: state is %T, want map", v)
	}

	status, err := NormalizeEnum(m["status"])
	if err != nil {
		return nil, fmt.Errorf("soroban: state status: %w", err)
	}
	total, err := stroopsToAmount(m["total_collected"])
	if err != nil {
		return nil, fmt.Errorf("soroban: state total_collected: %w", err)
	}
	count, err := toUint64(m["participant_count"])
	if err != nil {
		return nil, fmt.Errorf("soroban: state participant_count: %w", err)
	}

	return &domain.OnchainState{
		Status:           status,
		TotalCollected:   total,
		ParticipantCount: int(count),
	}, nil
}
