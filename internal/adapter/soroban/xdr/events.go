package xdr

import (
	"errors"
	"fmt"
)

// ErrNoReturnValue means no fn_return diagnostic event was found.
var ErrNoReturnValue = errors.New("xdr: no fn_return event")

// DiagnosticEvent is a decoded DiagnosticEvent. Only the v0 body is supported.
type DiagnosticEvent struct {
	InSuccessfulContractCall bool
	ContractID               string
	Type                     int32
	Topics                   []any
	Data                     any
}

// DecodeDiagnosticEventBase64 decodes one base64 DiagnosticEvent.
func DecodeDiagnosticEventBase64(s string) (*DiagnosticEvent, error) {
	d, err := NewDecoderBase64(s)
	if err != nil {
		return nil, err
	}

	var ev DiagnosticEvent
	if ev.InSuccessfulContractCall, err = d.Bool(); err != nil {
		return nil, err
	}
	if err := decodeContractEvent(d, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// decodeContractEvent reads a ContractEvent into ev, leaving
// InSuccessfulContractCall untouched.
func decodeContractEvent(d *Decoder, ev *DiagnosticEvent) error {
	ext, err := d.Int32()
	if err != nil {
		return err
	}
	if ext != 0 {
		return fmt.Errorf("%w: contract event ext %d", ErrUnsupported, ext)
	}

	hasContract, err := d.Bool()
	if err != nil {
		return err
	}
	if hasContract {
		id, err := d.Fixed(32)
		if err != nil {
			return err
		}
		ev.ContractID = EncodeStrkey(VersionContract, id)
	}

	if ev.Type, err = d.Int32(); err != nil {
		return err
	}

	bodyVersion, err := d.Int32()
	if err != nil {
		return err
	}
	if bodyVersion != 0 {
		return fmt.Errorf("%w: contract event body v%d", ErrUnsupported, bodyVersion)
	}

	n, err := d.length()
	if err != nil {
		return err
	}
	ev.Topics = make([]any, 0, n)
	for i := range n {
		t, err := DecodeScVal(d)
		if err != nil {
			return fmt.Errorf("topic %d: %w", i, err)
		}
		ev.Topics = append(ev.Topics, t)
	}

	if ev.Data, err = DecodeScVal(d); err != nil {
		return fmt.Errorf("event data: %w", err)
	}
	return nil
}

// ReturnValue scans diagnostic events for the fn_return event of the
// top-level invocation of contractID and returns its data. The last matching
// event wins since nested calls emit theirs first.
func ReturnValue(events []string, contractID string) (any, error) {
	var (
		found bool
		value any
	)
	for i, raw := range events {
		ev, err := DecodeDiagnosticEventBase64(raw)
		if err != nil {
			if errors.Is(err, ErrUnsupported) {
				continue
			}
			return nil, fmt.Errorf("diagnostic event %d: %w", i, err)
		}
		if ev.ContractID != contractID || len(ev.Topics) == 0 {
			continue
		}
		if name, ok := ev.Topics[0].(string); ok && name == "fn_return" {
			found, value = true, ev.Data
		}
	}
	if !found {
		return nil, ErrNoReturnValue
	}
	return value, nil
}
