// Package hexfixture turns whitespace-separated hex byte strings, as they
// appear in encoding tables and test vectors ("f0 9f 8c b5"), into byte
// slices. Shared across the module's tests and the inspector CLI.
package hexfixture

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Bytes converts a hex string like "c3 a9" or "c3a9" into bytes.
func Bytes(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("hexfixture: cannot parse %q: %w", s, err)
	}
	return b, nil
}

// MustBytes is Bytes, panicking on malformed fixtures.
func MustBytes(s string) []byte {
	b, err := Bytes(s)
	if err != nil {
		panic(err)
	}
	return b
}
