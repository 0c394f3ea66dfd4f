package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of a wallet/guardian/contract address.
const AddressLength = 20

// Address is a 20-byte account identifier (EOA or contract).
type Address [AddressLength]byte

// ZeroAddress is the null address; it is never a valid owner or guardian.
var ZeroAddress Address

// ParseAddress decodes a 0x-prefixed hex string into an Address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return a, fmt.Errorf("address %q: missing 0x prefix", s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return a, fmt.Errorf("address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return a, fmt.Errorf("address %q: expected %d bytes, got %d", s, AddressLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// BytesToAddress copies b into an Address, left-truncating if too long.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// Hex returns the 0x-prefixed lowercase hex encoding.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is the null address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Less reports whether a sorts before b. Relay signatures must be supplied
// in ascending signer order so duplicate signers are structurally impossible.
func (a Address) Less(b Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
