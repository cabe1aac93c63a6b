package xdr

import (
	"fmt"
	"math/big"
)

// ScValType is the SCVal union discriminant.
type ScValType int32

const (
	ScvBool      ScValType = 0
	ScvVoid      ScValType = 1
	ScvError     ScValType = 2
	ScvU32       ScValType = 3
	ScvI32       ScValType = 4
	ScvU64       ScValType = 5
	ScvI64       ScValType = 6
	ScvTimepoint ScValType = 7
	ScvDuration  ScValType = 8
	ScvU128      ScValType = 9
	ScvI128      ScValType = 10
	ScvU256      ScValType = 11
	ScvI256      ScValType = 12
	ScvBytes     ScValType = 13
	ScvString    ScValType = 14
	ScvSymbol    ScValType = 15
	ScvVec       ScValType = 16
	ScvMap       ScValType = 17
	ScvAddress   ScValType = 18

	ScvContractInstance          ScValType = 19
	ScvLedgerKeyContractInstance ScValType = 20
	ScvLedgerKeyNonce            ScValType = 21
)

// SCAddress arms.
const (
	scAddressAccount          int32 = 0
	scAddressContract         int32 = 1
	scAddressMuxedAccount     int32 = 2
	scAddressClaimableBalance int32 = 3
	scAddressLiquidityPool    int32 = 4
)

// maxSymbolLen is the SCSymbol length limit.
const maxSymbolLen = 32

// ScVal is a value that can be passed as a contract call argument.
type ScVal interface {
	EncodeXDR(e *Encoder) error
}

type (
	Bool   bool
	U32    uint32
	I32    int32
	U64    uint64
	I64    int64
	Symbol string
	String string
	Bytes  []byte
	// Address is a G... account or C... contract strkey.
	Address string
	Vec     []ScVal
	Void    struct{}
)

// I128 is a signed 128-bit integer argument.
type I128 struct {
	V *big.Int
}

func (v Bool) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvBool))
	e.Bool(bool(v))
	return nil
}

func (Void) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvVoid))
	return nil
}

func (v U32) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvU32))
	e.Uint32(uint32(v))
	return nil
}

func (v I32) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvI32))
	e.Int32(int32(v))
	return nil
}

func (v U64) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvU64))
	e.Uint64(uint64(v))
	return nil
}

func (v I64) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvI64))
	e.Int64(int64(v))
	return nil
}

func (v Symbol) EncodeXDR(e *Encoder) error {
	if len(v) > maxSymbolLen {
		return fmt.Errorf("xdr: symbol %q longer than %d", string(v), maxSymbolLen)
	}
	e.Int32(int32(ScvSymbol))
	e.String(string(v))
	return nil
}

func (v String) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvString))
	e.String(string(v))
	return nil
}

func (v Bytes) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvBytes))
	e.Opaque(v)
	return nil
}

func (v Address) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvAddress))
	return encodeSCAddress(e, string(v))
}

func (v Vec) EncodeXDR(e *Encoder) error {
	e.Int32(int32(ScvVec))
	e.Bool(true)
	e.Uint32(uint32(len(v)))
	for i, item := range v {
		if err := item.EncodeXDR(e); err != nil {
			return fmt.Errorf("xdr: vec[%d]: %w", i, err)
		}
	}
	return nil
}

var (
	two64   = new(big.Int).Lsh(big.NewInt(1), 64)
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func (v I128) EncodeXDR(e *Encoder) error {
	if v.V == nil || v.V.Cmp(minI128) < 0 || v.V.Cmp(maxI128) > 0 {
		return fmt.Errorf("xdr: i128 out of range: %v", v.V)
	}
	hi := new(big.Int).Rsh(v.V, 64)
	lo := new(big.Int).Sub(v.V, new(big.Int).Mul(hi, two64))
	e.Int32(int32(ScvI128))
	e.Int64(hi.Int64())
	e.Uint64(lo.Uint64())
	return nil
}

func encodeSCAddress(e *Encoder, s string) error {
	if key, err := DecodeStrkey(VersionContract, s); err == nil {
		e.Int32(scAddressContract)
		e.Fixed(key)
		return nil
	}
	key, err := DecodeStrkey(VersionAccountID, s)
	if err != nil {
		return fmt.Errorf("xdr: address %q: %w", s, err)
	}
	e.Int32(scAddressAccount)
	e.Int32(0) // PUBLIC_KEY_TYPE_ED25519
	e.Fixed(key)
	return nil
}

// ContractError is a decoded SCV_ERROR value.
type ContractError struct {
	Type int32
	Code uint32
}

func (e ContractError) Error() string {
	if e.Type == 0 {
		return fmt.Sprintf("contract error %d", e.Code)
	}
	return fmt.Sprintf("host error type %d code %d", e.Type, e.Code)
}

// EncodeScValBase64 encodes a single value to base64 XDR.
func EncodeScValBase64(v ScVal) (string, error) {
	var e Encoder
	if err := v.EncodeXDR(&e); err != nil {
		return "", err
	}
	return e.Base64(), nil
}

// DecodeScValBase64 decodes a base64 SCVal into a native Go value.
func DecodeScValBase64(s string) (any, error) {
	d, err := NewDecoderBase64(s)
	if err != nil {
		return nil, err
	}
	v, err := DecodeScVal(d)
	if err != nil {
		return nil, err
	}
	if d.Remaining() != 0 {
		return nil, fmt.Errorf("xdr: %d trailing bytes after scval", d.Remaining())
	}
	return v, nil
}

// DecodeScVal reads one SCVal and converts it to a native Go value:
// bool, nil, ContractError, uint32, int32, uint64, int64, *big.Int for
// 128/256-bit integers, []byte, string for strings, symbols and addresses,
// []any for vectors and map[string]any for maps.
func DecodeScVal(d *Decoder) (any, error) {
	disc, err := d.Int32()
	if err != nil {
		return nil, err
	}

	switch ScValType(disc) {
	case ScvBool:
		return d.Bool()
	case ScvVoid:
		return nil, nil
	case ScvError:
		return decodeSCError(d)
	case ScvU32:
		return d.Uint32()
	case ScvI32:
		return d.Int32()
	case ScvU64, ScvTimepoint, ScvDuration:
		return d.Uint64()
	case ScvI64:
		return d.Int64()
	case ScvU128:
		return decodeWide(d, 2, false)
	case ScvI128:
		return decodeWide(d, 2, true)
	case ScvU256:
		return decodeWide(d, 4, false)
	case ScvI256:
		return decodeWide(d, 4, true)
	case ScvBytes:
		return d.Opaque()
	case ScvString, ScvSymbol:
		return d.String()
	case ScvVec:
		return decodeVec(d)
	case ScvMap:
		return decodeMap(d)
	case ScvAddress:
		return decodeSCAddress(d)
	case ScvContractInstance:
		return decodeContractInstance(d)
	case ScvLedgerKeyContractInstance:
		return nil, nil
	case ScvLedgerKeyNonce:
		return d.Int64()
	}
	return nil, fmt.Errorf("%w: scval type %d", ErrUnsupported, disc)
}

func decodeSCError(d *Decoder) (any, error) {
	typ, err := d.Int32()
	if err != nil {
		return nil, err
	}
	code, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	return ContractError{Type: typ, Code: code}, nil
}

// decodeWide reads words 64-bit words, most significant first. When signed,
// the first word is two's complement.
func decodeWide(d *Decoder, words int, signed bool) (*big.Int, error) {
	out := new(big.Int)
	for i := range words {
		w, err := d.Uint64()
		if err != nil {
			return nil, err
		}
		out.Lsh(out, 64)
		if i == 0 && signed {
			out.Add(out, big.NewInt(int64(w)))
		} else {
			out.Add(out, new(big.Int).SetUint64(w))
		}
	}
	return out, nil
}

func decodeVec(d *Decoder) (any, error) {
	present, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return []any{}, nil
	}
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, n)
	for i := range n {
		v, err := DecodeScVal(d)
		if err != nil {
			return nil, fmt.Errorf("vec[%d]: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeMap(d *Decoder) (any, error) {
	present, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return map[string]any{}, nil
	}
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, n)
	for i := range n {
		k, err := DecodeScVal(d)
		if err != nil {
			return nil, fmt.Errorf("map[%d] key: %w", i, err)
		}
		v, err := DecodeScVal(d)
		if err != nil {
			return nil, fmt.Errorf("map[%d] value: %w", i, err)
		}
		out[fmt.Sprint(k)] = v
	}
	return out, nil
}

func decodeSCAddress(d *Decoder) (any, error) {
	typ, err := d.Int32()
	if err != nil {
		return nil, err
	}
	switch typ {
	case scAddressAccount:
		keyType, err := d.Int32()
		if err != nil {
			return nil, err
		}
		if keyType != 0 {
			return nil, fmt.Errorf("%w: public key type %d", ErrUnsupported, keyType)
		}
		key, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		return EncodeStrkey(VersionAccountID, key), nil
	case scAddressContract:
		key, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		return EncodeStrkey(VersionContract, key), nil
	case scAddressMuxedAccount:
		// id then ed25519 key; rendered as the base account.
		if _, err := d.Uint64(); err != nil {
			return nil, err
		}
		key, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		return EncodeStrkey(VersionAccountID, key), nil
	case scAddressClaimableBalance:
		if _, err := d.Int32(); err != nil {
			return nil, err
		}
		id, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%x", id), nil
	case scAddressLiquidityPool:
		id, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%x", id), nil
	}
	return nil, fmt.Errorf("%w: sc address type %d", ErrUnsupported, typ)
}

// decodeContractInstance reads an SCContractInstance: the executable (wasm
// hash or the built-in asset contract) and its optional instance storage.
func decodeContractInstance(d *Decoder) (any, error) {
	kind, err := d.Int32()
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	switch kind {
	case 0: // CONTRACT_EXECUTABLE_WASM
		hash, err := d.Fixed(32)
		if err != nil {
			return nil, err
		}
		out["wasm_hash"] = fmt.Sprintf("%x", hash)
	case 1: // CONTRACT_EXECUTABLE_STELLAR_ASSET
		out["stellar_asset"] = true
	default:
		return nil, fmt.Errorf("%w: contract executable %d", ErrUnsupported, kind)
	}
	storage, err := decodeMap(d)
	if err != nil {
		return nil, fmt.Errorf("instance storage: %w", err)
	}
	out["storage"] = storage
	return out, nil
}
