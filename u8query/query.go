/*
Package u8query answers questions about code points and decoded text which
go beyond the codec itself: character names from the Unicode Character
Database and canonical/compatibility normalization. Both are consumed from
golang.org/x/text as opaque services; this package adds no Unicode tables
of its own.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package u8query

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/runecodec/u8"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'unicode.codec'
func tracer() tracing.Trace {
	return tracing.Select("unicode.codec")
}

// Name returns the Unicode Character Database name of r, e.g.
// "LATIN SMALL LETTER E WITH ACUTE" for U+00E9. Empty for unassigned or
// invalid code points.
func Name(r rune) string {
	if !u8.ValidPoint(r) {
		return ""
	}
	return runenames.Name(r)
}

// Info collects printable facts about a single code point into a map,
// keyed by "point", "name", "utf8", "decimal" and "category". Invalid code
// points yield a map with an "error" entry instead.
func Info(r rune) map[string]string {
	info := make(map[string]string)
	run, err := u8.EncodeRune(r)
	if err != nil {
		tracer().Debugf("no info for invalid code point: %v", err)
		info["error"] = err.Error()
		return info
	}
	info["point"] = fmt.Sprintf("U+%04X", r)
	info["name"] = runenames.Name(r)
	info["utf8"] = run.String()
	info["decimal"] = fmt.Sprintf("%d", r)
	info["category"] = category(r)
	return info
}

// category gives a coarse classification, enough for table output.
func category(r rune) string {
	switch {
	case unicode.IsLetter(r):
		return "letter"
	case unicode.IsDigit(r):
		return "digit"
	case unicode.IsSpace(r):
		return "space"
	case unicode.IsPunct(r):
		return "punctuation"
	case unicode.IsSymbol(r):
		return "symbol"
	case unicode.IsMark(r):
		return "mark"
	case unicode.IsControl(r):
		return "control"
	}
	return "other"
}
