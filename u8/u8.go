package u8

import "fmt"

// Code comments often cite the encoding table of RFC 3629, section 3;
// bit patterns are written with 'x' marking payload bits.

// Limits of the encoding. MaxPoint is the upper bound of the Unicode
// codespace; runs never exceed MaxRunLen bytes.
const (
	MaxPoint  rune = 0x10FFFF // maximum valid code point
	MaxRunLen      = 4        // longest code-unit run

	surrMin rune = 0xD800 // surrogate range, invalid in UTF-8
	surrMax rune = 0xDFFF

	RuneError rune = 0xFFFD // replacement character, used by DecodeAll
)

// Minimum code point representable by a run of the given length. A run
// assembling to a value below the minimum for its length is overlong.
var runMin = [MaxRunLen + 1]rune{1: 0x0000, 2: 0x0080, 3: 0x0800, 4: 0x10000}

// Lead byte tags and payload masks, per the RFC 3629 table:
//
//	0xxxxxxx                                        U+0000 … U+007F
//	110xxxxx 10xxxxxx                               U+0080 … U+07FF
//	1110xxxx 10xxxxxx 10xxxxxx                      U+0800 … U+FFFF
//	11110xxx 10xxxxxx 10xxxxxx 10xxxxxx             U+10000 … U+10FFFF
const (
	tag1  = 0x00 // 0xxxxxxx
	mask1 = 0x80
	tag2  = 0xC0 // 110xxxxx
	mask2 = 0xE0
	tag3  = 0xE0 // 1110xxxx
	mask3 = 0xF0
	tag4  = 0xF0 // 11110xxx
	mask4 = 0xF8
	tagC  = 0x80 // 10xxxxxx, continuation
	maskC = 0xC0

	payload1 = 0x7F // payload bits of a 1-byte run's lead
	payload2 = 0x1F
	payload3 = 0x0F
	payload4 = 0x07
	payloadC = 0x3F // payload bits of a continuation byte
)

// ---Code-unit runs ---------------------------------------------------------

// Run is the code-unit sequence for exactly one code point: 1 to 4 bytes,
// the first byte carrying the length tag, all others being continuation
// bytes. Runs produced by the segmenter alias the input byte sequence;
// the codec never mutates them.
type Run []byte

// Len returns the number of code units in the run.
func (run Run) Len() int {
	return len(run)
}

// Bytes returns the run as a byte slice.
func (run Run) Bytes() []byte {
	return run
}

// Point assembles the run into its code point, or None if the run is
// malformed. Convenience wrapper around Assemble for callers which do not
// care about the error details.
func (run Run) Point() Option[rune] {
	r, err := Assemble(run)
	if err != nil {
		return None[rune]()
	}
	return Some(r)
}

// String returns the run's bytes in hex, e.g. "<f0 9f 8c b5>".
func (run Run) String() string {
	s := "<"
	for i, b := range run {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02x", b)
	}
	return s + ">"
}

// runLength classifies a lead byte and returns the declared run length,
// or 0 if b is not a valid lead byte (stray continuation byte or an
// invalid 11111xxx tag).
func runLength(b byte) int {
	switch {
	case b&mask1 == tag1:
		return 1
	case b&mask2 == tag2:
		return 2
	case b&mask3 == tag3:
		return 3
	case b&mask4 == tag4:
		return 4
	}
	return 0
}

// isContinuation reports whether b matches 10xxxxxx.
func isContinuation(b byte) bool {
	return b&maskC == tagC
}

// IsSurrogate reports whether r falls into the UTF-16 surrogate range
// U+D800–U+DFFF, which is invalid as a standalone code point.
func IsSurrogate(r rune) bool {
	return surrMin <= r && r <= surrMax
}

// ValidPoint reports whether r may legally be encoded in UTF-8, i.e. is
// within the codespace and not a surrogate.
func ValidPoint(r rune) bool {
	return 0 <= r && r <= MaxPoint && !IsSurrogate(r)
}
