package xdr

import (
	"errors"
	"fmt"
)

// ErrNoSorobanMeta means the transaction meta carries no Soroban section,
// either because it predates meta v3 or the transaction invoked no contract.
var ErrNoSorobanMeta = errors.New("xdr: no soroban meta")

// LedgerEntryType discriminants.
const (
	ledgerEntryAccount          int32 = 0
	ledgerEntryTrustline        int32 = 1
	ledgerEntryOffer            int32 = 2
	ledgerEntryData             int32 = 3
	ledgerEntryClaimableBalance int32 = 4
	ledgerEntryLiquidityPool    int32 = 5
	ledgerEntryContractData     int32 = 6
	ledgerEntryContractCode     int32 = 7
	ledgerEntryConfigSetting    int32 = 8
	ledgerEntryTTL              int32 = 9
)

// LedgerEntryChangeType discriminants.
const (
	changeCreated  int32 = 0
	changeUpdated  int32 = 1
	changeRemoved  int32 = 2
	changeState    int32 = 3
	changeRestored int32 = 4
)

// MetaReturnValue decodes a base64 TransactionMeta (the resultMetaXdr field
// of getTransaction) and returns the contract invocation's return value from
// its Soroban section. Meta v3 and v4 are supported.
func MetaReturnValue(metaXDR string) (any, error) {
	d, err := NewDecoderBase64(metaXDR)
	if err != nil {
		return nil, err
	}

	version, err := d.Int32()
	if err != nil {
		return nil, err
	}

	switch version {
	case 0, 1, 2:
		return nil, ErrNoSorobanMeta
	case 3:
		return decodeMetaV3(d)
	case 4:
		return decodeMetaV4(d)
	}
	return nil, fmt.Errorf("%w: transaction meta v%d", ErrUnsupported, version)
}

// TransactionMetaV3: ext, txChangesBefore, operations, txChangesAfter,
// optional SorobanTransactionMeta{ext, events, returnValue, diagnosticEvents}.
func decodeMetaV3(d *Decoder) (any, error) {
	if err := skipMetaPrefix(d, false); err != nil {
		return nil, err
	}

	present, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, ErrNoSorobanMeta
	}

	if err := skipSorobanMetaExt(d); err != nil {
		return nil, err
	}
	if err := skipContractEvents(d); err != nil {
		return nil, fmt.Errorf("soroban events: %w", err)
	}

	v, err := DecodeScVal(d)
	if err != nil {
		return nil, fmt.Errorf("return value: %w", err)
	}
	return v, nil
}

// TransactionMetaV4: ext, txChangesBefore, OperationMetaV2 operations,
// txChangesAfter, optional SorobanTransactionMetaV2{ext, optional returnValue}.
func decodeMetaV4(d *Decoder) (any, error) {
	if err := skipMetaPrefix(d, true); err != nil {
		return nil, err
	}

	present, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, ErrNoSorobanMeta
	}

	if err := skipSorobanMetaExt(d); err != nil {
		return nil, err
	}

	hasReturn, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if !hasReturn {
		return nil, ErrNoSorobanMeta
	}

	v, err := DecodeScVal(d)
	if err != nil {
		return nil, fmt.Errorf("return value: %w", err)
	}
	return v, nil
}

func skipMetaPrefix(d *Decoder, operationsV2 bool) error {
	if err := skipExtensionPoint(d); err != nil {
		return err
	}
	if err := skipLedgerEntryChanges(d); err != nil {
		return fmt.Errorf("tx changes before: %w", err)
	}

	n, err := d.length()
	if err != nil {
		return err
	}
	for i := range n {
		if operationsV2 {
			if err := skipExtensionPoint(d); err != nil {
				return err
			}
		}
		if err := skipLedgerEntryChanges(d); err != nil {
			return fmt.Errorf("operation %d changes: %w", i, err)
		}
		if operationsV2 {
			if err := skipContractEvents(d); err != nil {
				return fmt.Errorf("operation %d events: %w", i, err)
			}
		}
	}

	if err := skipLedgerEntryChanges(d); err != nil {
		return fmt.Errorf("tx changes after: %w", err)
	}
	return nil
}

// skipSorobanMetaExt reads SorobanTransactionMetaExt; v1 carries the ext
// point and three int64 fee totals.
func skipSorobanMetaExt(d *Decoder) error {
	v, err := d.Int32()
	if err != nil {
		return err
	}
	switch v {
	case 0:
		return nil
	case 1:
		if err := skipExtensionPoint(d); err != nil {
			return err
		}
		return skipWords(d, 6)
	}
	return fmt.Errorf("%w: soroban meta ext v%d", ErrUnsupported, v)
}

func skipContractEvents(d *Decoder) error {
	n, err := d.length()
	if err != nil {
		return err
	}
	for i := range n {
		var ev DiagnosticEvent
		if err := decodeContractEvent(d, &ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func skipLedgerEntryChanges(d *Decoder) error {
	n, err := d.length()
	if err != nil {
		return err
	}
	for i := range n {
		typ, err := d.Int32()
		if err != nil {
			return err
		}
		switch typ {
		case changeCreated, changeUpdated, changeState, changeRestored:
			err = skipLedgerEntry(d)
		case changeRemoved:
			err = skipLedgerKey(d)
		default:
			err = fmt.Errorf("%w: ledger entry change %d", ErrUnsupported, typ)
		}
		if err != nil {
			return fmt.Errorf("change %d: %w", i, err)
		}
	}
	return nil
}

// skipLedgerEntry reads lastModifiedLedgerSeq, the entry data and the
// entry extension (v1 carries an optional sponsoring account).
func skipLedgerEntry(d *Decoder) error {
	if _, err := d.Uint32(); err != nil {
		return err
	}

	typ, err := d.Int32()
	if err != nil {
		return err
	}
	switch typ {
	case ledgerEntryAccount:
		err = skipAccountEntry(d)
	case ledgerEntryTrustline:
		err = skipTrustLineEntry(d)
	case ledgerEntryOffer:
		err = skipOfferEntry(d)
	case ledgerEntryData:
		err = skipDataEntry(d)
	case ledgerEntryContractData:
		err = skipContractDataEntry(d)
	case ledgerEntryContractCode:
		err = skipContractCodeEntry(d)
	case ledgerEntryTTL:
		err = skipFixed(d, 32+4)
	default:
		err = fmt.Errorf("%w: ledger entry type %d", ErrUnsupported, typ)
	}
	if err != nil {
		return err
	}

	ext, err := d.Int32()
	if err != nil {
		return err
	}
	switch ext {
	case 0:
		return nil
	case 1:
		if err := skipOptionalAccountID(d); err != nil {
			return err
		}
		return skipExtensionPoint(d)
	}
	return fmt.Errorf("%w: ledger entry ext v%d", ErrUnsupported, ext)
}

func skipLedgerKey(d *Decoder) error {
	typ, err := d.Int32()
	if err != nil {
		return err
	}
	switch typ {
	case ledgerEntryAccount:
		return skipAccountID(d)
	case ledgerEntryTrustline:
		if err := skipAccountID(d); err != nil {
			return err
		}
		return skipTrustLineAsset(d)
	case ledgerEntryOffer:
		if err := skipAccountID(d); err != nil {
			return err
		}
		return skipWords(d, 2)
	case ledgerEntryData:
		if err := skipAccountID(d); err != nil {
			return err
		}
		_, err := d.Opaque()
		return err
	case ledgerEntryClaimableBalance:
		return skipFixed(d, 4+32)
	case ledgerEntryLiquidityPool, ledgerEntryContractCode, ledgerEntryTTL:
		return skipFixed(d, 32)
	case ledgerEntryContractData:
		if _, err := decodeSCAddress(d); err != nil {
			return err
		}
		if _, err := DecodeScVal(d); err != nil {
			return err
		}
		_, err := d.Int32()
		return err
	case ledgerEntryConfigSetting:
		_, err := d.Int32()
		return err
	}
	return fmt.Errorf("%w: ledger key type %d", ErrUnsupported, typ)
}

// AccountEntry with its nested v1 (liabilities), v2 (sponsorship) and v3
// (sequence ledger and time) extensions.
func skipAccountEntry(d *Decoder) error {
	if err := skipAccountID(d); err != nil {
		return err
	}
	// balance, seqNum
	if err := skipWords(d, 4); err != nil {
		return err
	}
	// numSubEntries
	if _, err := d.Uint32(); err != nil {
		return err
	}
	if err := skipOptionalAccountID(d); err != nil {
		return err
	}
	// flags
	if _, err := d.Uint32(); err != nil {
		return err
	}
	// homeDomain
	if _, err := d.Opaque(); err != nil {
		return err
	}
	// thresholds
	if err := skipFixed(d, 4); err != nil {
		return err
	}

	signers, err := d.length()
	if err != nil {
		return err
	}
	for range signers {
		if err := skipSignerKey(d); err != nil {
			return err
		}
		if _, err := d.Uint32(); err != nil {
			return err
		}
	}

	v, err := d.Int32()
	if err != nil || v == 0 {
		return err
	}
	if v != 1 {
		return fmt.Errorf("%w: account ext v%d", ErrUnsupported, v)
	}
	// liabilities
	if err := skipWords(d, 4); err != nil {
		return err
	}

	if v, err = d.Int32(); err != nil || v == 0 {
		return err
	}
	if v != 2 {
		return fmt.Errorf("%w: account ext v1 ext v%d", ErrUnsupported, v)
	}
	// numSponsored, numSponsoring
	if err := skipWords(d, 2); err != nil {
		return err
	}
	sponsors, err := d.length()
	if err != nil {
		return err
	}
	for range sponsors {
		if err := skipOptionalAccountID(d); err != nil {
			return err
		}
	}

	if v, err = d.Int32(); err != nil || v == 0 {
		return err
	}
	if v != 3 {
		return fmt.Errorf("%w: account ext v2 ext v%d", ErrUnsupported, v)
	}
	if err := skipExtensionPoint(d); err != nil {
		return err
	}
	// seqLedger, seqTime
	return skipWords(d, 3)
}

func skipSignerKey(d *Decoder) error {
	typ, err := d.Int32()
	if err != nil {
		return err
	}
	switch typ {
	case 0, 1, 2: // ed25519, pre-auth tx, hash(x)
		return skipFixed(d, 32)
	case 3: // ed25519 signed payload
		if err := skipFixed(d, 32); err != nil {
			return err
		}
		_, err := d.Opaque()
		return err
	}
	return fmt.Errorf("%w: signer key type %d", ErrUnsupported, typ)
}

func skipTrustLineEntry(d *Decoder) error {
	if err := skipAccountID(d); err != nil {
		return err
	}
	if err := skipTrustLineAsset(d); err != nil {
		return err
	}
	// balance, limit, flags
	if err := skipWords(d, 5); err != nil {
		return err
	}

	v, err := d.Int32()
	if err != nil || v == 0 {
		return err
	}
	if v != 1 {
		return fmt.Errorf("%w: trustline ext v%d", ErrUnsupported, v)
	}
	// liabilities
	if err := skipWords(d, 4); err != nil {
		return err
	}
	if v, err = d.Int32(); err != nil || v == 0 {
		return err
	}
	if v != 2 {
		return fmt.Errorf("%w: trustline ext v1 ext v%d", ErrUnsupported, v)
	}
	// liquidityPoolUseCount
	if _, err := d.Int32(); err != nil {
		return err
	}
	return skipExtensionPoint(d)
}

// skipTrustLineAsset reads a TrustLineAsset; Asset shares the first three arms.
func skipTrustLineAsset(d *Decoder) error {
	typ, err := d.Int32()
	if err != nil {
		return err
	}
	switch typ {
	case 0: // native
		return nil
	case 1: // alphanum4
		if err := skipFixed(d, 4); err != nil {
			return err
		}
		return skipAccountID(d)
	case 2: // alphanum12
		if err := skipFixed(d, 12); err != nil {
			return err
		}
		return skipAccountID(d)
	case 3: // pool share
		return skipFixed(d, 32)
	}
	return fmt.Errorf("%w: asset type %d", ErrUnsupported, typ)
}

func skipOfferEntry(d *Decoder) error {
	if err := skipAccountID(d); err != nil {
		return err
	}
	// offerID
	if err := skipWords(d, 2); err != nil {
		return err
	}
	for range 2 { // selling, buying
		if err := skipTrustLineAsset(d); err != nil {
			return err
		}
	}
	// amount, price n/d, flags
	if err := skipWords(d, 5); err != nil {
		return err
	}
	return skipExtensionPoint(d)
}

func skipDataEntry(d *Decoder) error {
	if err := skipAccountID(d); err != nil {
		return err
	}
	if _, err := d.Opaque(); err != nil { // dataName
		return err
	}
	if _, err := d.Opaque(); err != nil { // dataValue
		return err
	}
	return skipExtensionPoint(d)
}

func skipContractDataEntry(d *Decoder) error {
	if err := skipExtensionPoint(d); err != nil {
		return err
	}
	if _, err := decodeSCAddress(d); err != nil {
		return err
	}
	if _, err := DecodeScVal(d); err != nil {
		return fmt.Errorf("contract data key: %w", err)
	}
	// durability
	if _, err := d.Int32(); err != nil {
		return err
	}
	if _, err := DecodeScVal(d); err != nil {
		return fmt.Errorf("contract data value: %w", err)
	}
	return nil
}

// skipContractCodeEntry: ext (v1 adds ten uint32 cost inputs behind an ext
// point), hash, code.
func skipContractCodeEntry(d *Decoder) error {
	v, err := d.Int32()
	if err != nil {
		return err
	}
	switch v {
	case 0:
	case 1:
		if err := skipExtensionPoint(d); err != nil {
			return err
		}
		if err := skipExtensionPoint(d); err != nil {
			return err
		}
		if err := skipWords(d, 10); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: contract code ext v%d", ErrUnsupported, v)
	}
	if err := skipFixed(d, 32); err != nil {
		return err
	}
	_, err = d.Opaque()
	return err
}

func skipAccountID(d *Decoder) error {
	keyType, err := d.Int32()
	if err != nil {
		return err
	}
	if keyType != 0 {
		return fmt.Errorf("%w: public key type %d", ErrUnsupported, keyType)
	}
	return skipFixed(d, 32)
}

func skipOptionalAccountID(d *Decoder) error {
	present, err := d.Bool()
	if err != nil || !present {
		return err
	}
	return skipAccountID(d)
}

// skipExtensionPoint reads an ExtensionPoint, which only has the void arm.
func skipExtensionPoint(d *Decoder) error {
	v, err := d.Int32()
	if err != nil {
		return err
	}
	if v != 0 {
		return fmt.Errorf("%w: extension point v%d", ErrUnsupported, v)
	}
	return nil
}

// skipWords discards n 4-byte words.
func skipWords(d *Decoder, n int) error {
	return skipFixed(d, 4*n)
}

func skipFixed(d *Decoder, n int) error {
	_, err := d.Fixed(n)
	return err
}
