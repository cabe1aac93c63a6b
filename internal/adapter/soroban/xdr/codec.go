// Package xdr implements the subset of Stellar XDR needed to simulate Soroban
// contract calls and to decode their results: SCVal, SCAddress, strkeys,
// unsigned invoke envelopes, diagnostic events and transaction meta.
package xdr

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupported is returned for XDR arms this package does not decode.
var ErrUnsupported = errors.New("xdr: unsupported value")

// maxVarLen caps variable-length fields so a corrupt length prefix cannot
// trigger a huge allocation.
const maxVarLen = 1 << 20

// Encoder writes big-endian, 4-byte aligned XDR.
type Encoder struct {
	buf bytes.Buffer
}

// Bytes returns the encoded data.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Base64 returns the encoded data in standard base64.
func (e *Encoder) Base64() string { return base64.StdEncoding.EncodeToString(e.buf.Bytes()) }

func (e *Encoder) Uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) Int32(v int32) { e.Uint32(uint32(v)) }

func (e *Encoder) Uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) Int64(v int64) { e.Uint64(uint64(v)) }

func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint32(1)
		return
	}
	e.Uint32(0)
}

// Fixed writes opaque data of a length known to both sides.
func (e *Encoder) Fixed(b []byte) {
	e.buf.Write(b)
	e.pad(len(b))
}

// Opaque writes variable-length opaque data.
func (e *Encoder) Opaque(b []byte) {
	e.Uint32(uint32(len(b)))
	e.Fixed(b)
}

func (e *Encoder) String(s string) { e.Opaque([]byte(s)) }

func (e *Encoder) pad(n int) {
	if r := n % 4; r != 0 {
		e.buf.Write(make([]byte, 4-r))
	}
}

// Decoder reads XDR produced by an Encoder or by stellar-core.
type Decoder struct {
	r *bytes.Reader
}

// NewDecoder returns a decoder over b.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(b)}
}

// NewDecoderBase64 decodes standard base64 and returns a decoder over it.
func NewDecoderBase64(s string) (*Decoder, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("xdr: decode base64: %w", err)
	}
	return NewDecoder(b), nil
}

// Remaining reports the number of unread bytes.
func (d *Decoder) Remaining() int { return d.r.Len() }

func (d *Decoder) read(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, fmt.Errorf("xdr: read %d bytes: %w", n, err)
	}
	return b, nil
}

func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("xdr: invalid bool %d", v)
}

func (d *Decoder) Fixed(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	if r := n % 4; r != 0 {
		if _, err := d.read(4 - r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (d *Decoder) Opaque() ([]byte, error) {
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	return d.Fixed(n)
}

func (d *Decoder) String() (string, error) {
	b, err := d.Opaque()
	return string(b), err
}

// length reads an array or opaque length prefix.
func (d *Decoder) length() (int, error) {
	n, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	if n > maxVarLen || int(n) > d.r.Len() {
		return 0, fmt.Errorf("xdr: length %d exceeds input", n)
	}
	return int(n), nil
}
