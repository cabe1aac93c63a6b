package xdr

import (
	"fmt"
	"time"
)

const (
	envelopeTypeTx             int32 = 2
	keyTypeEd25519             int32 = 0
	precondTime                int32 = 1
	memoNone                   int32 = 0
	opInvokeHostFunction       int32 = 24
	hostFunctionInvokeContract int32 = 0
)

// InvokeParams describes an unsigned single-operation contract invocation.
type InvokeParams struct {
	// Source is the raw ed25519 key of the source account. A zero key is
	// enough for simulation, which never checks the source exists.
	Source   [32]byte
	Fee      uint32
	Sequence int64
	Contract string
	Function string
	Args     []ScVal
	ValidFor time.Duration
	Now      time.Time
}

// BuildInvokeEnvelope encodes a TransactionEnvelope (ENVELOPE_TYPE_TX) with one
// InvokeHostFunction operation, no auth entries, no Soroban data and no
// signatures. The result is suitable for simulateTransaction.
func BuildInvokeEnvelope(p InvokeParams) (string, error) {
	contractKey, err := DecodeStrkey(VersionContract, p.Contract)
	if err != nil {
		return "", fmt.Errorf("xdr: contract %q: %w", p.Contract, err)
	}
	if len(p.Function) == 0 || len(p.Function) > maxSymbolLen {
		return "", fmt.Errorf("xdr: invalid function name %q", p.Function)
	}

	var e Encoder
	e.Int32(envelopeTypeTx)

	// Transaction
	e.Int32(keyTypeEd25519)
	e.Fixed(p.Source[:])
	e.Uint32(p.Fee)
	e.Int64(p.Sequence)

	e.Int32(precondTime)
	minTime := uint64(0)
	maxTime := uint64(0)
	if p.ValidFor > 0 {
		maxTime = uint64(p.Now.Add(p.ValidFor).Unix())
	}
	e.Uint64(minTime)
	e.Uint64(maxTime)

	e.Int32(memoNone)

	e.Uint32(1) // operations
	e.Bool(false)
	e.Int32(opInvokeHostFunction)
	e.Int32(hostFunctionInvokeContract)
	e.Int32(scAddressContract)
	e.Fixed(contractKey)
	e.String(p.Function)
	e.Uint32(uint32(len(p.Args)))
	for i, arg := range p.Args {
		if err := arg.EncodeXDR(&e); err != nil {
			return "", fmt.Errorf("xdr: arg %d: %w", i, err)
		}
	}
	e.Uint32(0) // auth entries

	e.Int32(0)  // tx ext
	e.Uint32(0) // signatures

	return e.Base64(), nil
}
