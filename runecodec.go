/*
Package runecodec bundles a strict UTF-8 codec with the Unicode services
a text tool typically needs next to it: character names and normalization.

The codec itself lives in package u8 (slice-based) and u8stream
(io.Reader/io.Writer based); package u8query wraps the name and
normalization collaborators from golang.org/x/text. This root package is a
thin convenience surface over the three.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package runecodec

import (
	"github.com/npillmayer/runecodec/u8"
	"github.com/npillmayer/runecodec/u8query"
)

// Decode transforms UTF-8 bytes into code points, strictly: the first
// malformed byte aborts with a u8.DecodeError carrying its offset.
func Decode(p []byte) ([]rune, error) {
	return u8.Decode(p)
}

// DecodeString is Decode over the bytes of s.
func DecodeString(s string) ([]rune, error) {
	return u8.DecodeString(s)
}

// Encode transforms code points into UTF-8 bytes, aborting on the first
// invalid code point with a u8.EncodeError carrying its index.
func Encode(points []rune) ([]byte, error) {
	return u8.Encode(points)
}

// NameOf returns the Unicode name of a code point, empty if unassigned
// or invalid.
func NameOf(r rune) string {
	return u8query.Name(r)
}

// Normalize brings s into the given normalization form (one of
// u8query.NFC, NFD, NFKC, NFKD).
func Normalize(form u8query.Form, s string) (string, error) {
	return u8query.Normalize(form, s)
}
