package xdr

import (
	"encoding/base32"
	"fmt"
)

// Strkey version bytes.
const (
	VersionAccountID byte = 6 << 3 // G...
	VersionContract  byte = 2 << 3 // C...
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeStrkey renders a 32-byte key as a Stellar strkey.
func EncodeStrkey(version byte, payload []byte) string {
	raw := make([]byte, 0, 1+len(payload)+2)
	raw = append(raw, version)
	raw = append(raw, payload...)
	sum := crc16(raw)
	raw = append(raw, byte(sum), byte(sum>>8))
	return b32.EncodeToString(raw)
}

// DecodeStrkey parses a strkey and verifies its version and checksum.
func DecodeStrkey(version byte, s string) ([]byte, error) {
	raw, err := b32.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("strkey: %w", err)
	}
	if len(raw) != 1+32+2 {
		return nil, fmt.Errorf("strkey: unexpected length %d", len(raw))
	}
	if raw[0] != version {
		return nil, fmt.Errorf("strkey: version byte %d, want %d", raw[0], version)
	}
	body, sum := raw[:len(raw)-2], raw[len(raw)-2:]
	if want := crc16(body); sum[0] != byte(want) || sum[1] != byte(want>>8) {
		return nil, fmt.Errorf("strkey: checksum mismatch")
	}
	return body[1:], nil
}

// IsAccountAddress reports whether s is a valid G... account strkey.
func IsAccountAddress(s string) bool {
	_, err := DecodeStrkey(VersionAccountID, s)
	return err == nil
}

// IsContractAddress reports whether s is a valid C... contract strkey.
func IsContractAddress(s string) bool {
	_, err := DecodeStrkey(VersionContract, s)
	return err == nil
}

// crc16 is CRC-16/XMODEM (poly 0x1021, init 0).
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
