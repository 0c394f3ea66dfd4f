package domain

import (
	"encoding/hex"
	"strings"
)

// FilterType names a calldata validation strategy.
type FilterType string

const (
	// FilterMethodAllowlist accepts calldata whose 4-byte selector is listed.
	FilterMethodAllowlist FilterType = "method-allowlist"
	// FilterValueOnly rejects any non-empty calldata (plain transfers only).
	FilterValueOnly FilterType = "value-only"
)

// Filter is a pluggable validator applied to call payloads before a registry
// authorisation is granted.
type Filter struct {
	Type FilterType `json:"type"`
	// Selectors holds lowercase hex-encoded 4-byte selectors for
	// method-allowlist filters.
	Selectors []string `json:"selectors,omitempty"`
}

// Accept reports whether the calldata passes the filter. Empty calldata is
// always accepted; an unknown filter type fails closed.
func (f *Filter) Accept(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if f == nil {
		return true
	}
	switch f.Type {
	case FilterValueOnly:
		return false
	case FilterMethodAllowlist:
		if len(data) < 4 {
			return false
		}
		selector := strings.ToLower(hex.EncodeToString(data[:4]))
		for _, s := range f.Selectors {
			if strings.TrimPrefix(strings.ToLower(s), "0x") == selector {
				return true
			}
		}
		return false
	}
	return false
}
