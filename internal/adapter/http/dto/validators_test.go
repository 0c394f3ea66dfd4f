package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEthAddr_Valid(t *testing.T) {
	cases := []string{
		"0x00112233445566778899aabbccddeeff00112233",
		"0x0000000000000000000000000000000000000000",
		"0xABCDEF0123456789abcdef0123456789ABCDEF01",
	}
	for _, tc := range cases {
		assert.True(t, ethAddrRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestEthAddr_Invalid(t *testing.T) {
	cases := []string{
		"",
		"00112233445566778899aabbccddeeff00112233",   // missing 0x
		"0x00112233445566778899aabbccddeeff001122",    // too short
		"0x00112233445566778899aabbccddeeff0011223344", // too long
		"0x00112233445566778899aabbccddeeff0011223g",  // non-hex
		"0X00112233445566778899aabbccddeeff00112233",  // uppercase prefix
	}
	for _, tc := range cases {
		assert.False(t, ethAddrRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestHexBlob_Valid(t *testing.T) {
	cases := []string{
		"",
		"0x",
		"a9059cbb",
		"0xa9059cbb",
		"0xDEADbeef00",
	}
	for _, tc := range cases {
		assert.True(t, hexBlobRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestHexBlob_Invalid(t *testing.T) {
	cases := []string{
		"0xabc",     // odd nibble count
		"xyz",       // non-hex
		"0x 1234",   // space
		"0x12\n34",  // newline
	}
	for _, tc := range cases {
		assert.False(t, hexBlobRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
