package u8

import (
	"bytes"
	"testing"

	"github.com/npillmayer/runecodec/internal/hexfixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncodeRuneMinimalLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	tests := []struct {
		r    rune
		want string // hex
	}{
		{0x0000, "00"},
		{'A', "41"},
		{0x007F, "7f"},
		{0x0080, "c2 80"},
		{0x00E9, "c3 a9"},
		{0x07FF, "df bf"},
		{0x0800, "e0 a0 80"},
		{0x20AC, "e2 82 ac"},
		{0xFFFF, "ef bf bf"},
		{0x10000, "f0 90 80 80"},
		{0x1F335, "f0 9f 8c b5"},
		{0x10FFFF, "f4 8f bf bf"},
	}
	for _, tt := range tests {
		run, err := EncodeRune(tt.r)
		if err != nil {
			t.Errorf("encoding %#U failed: %v", tt.r, err)
			continue
		}
		if !bytes.Equal(run.Bytes(), hexfixture.MustBytes(tt.want)) {
			t.Errorf("encoding %#U: expected <%s>, got %v", tt.r, tt.want, run)
		}
	}
}

func TestEncodeRejectsInvalidPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	tests := []struct {
		name string
		r    rune
		kind Kind
	}{
		{"SurrogateLow", 0xD800, LoneSurrogate},
		{"SurrogateHigh", 0xDFFF, LoneSurrogate},
		{"Negative", -1, CodePointOutOfRange},
		{"AboveCodespace", 0x110000, CodePointOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeRune(tt.r)
			if err == nil {
				t.Fatalf("expected encoding of %#U to fail", tt.r)
			}
			eerr, ok := err.(EncodeError)
			if !ok {
				t.Fatalf("expected EncodeError, got %T", err)
			}
			if eerr.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, eerr.Kind)
			}
		})
	}
}

func TestEncodeReportsIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	buf, err := Encode([]rune{'a', 'b', 0xD800, 'c'})
	if err == nil {
		t.Fatal("expected encoding to fail on the surrogate")
	}
	if buf != nil {
		t.Error("expected no partial output on failure")
	}
	eerr := err.(EncodeError)
	if eerr.Kind != LoneSurrogate || eerr.Index != 2 {
		t.Errorf("expected LONE-SURROGATE at index 2, got %v", eerr)
	}
}

// Round-trip over the complete codespace, excluding surrogates: every code
// point survives encode followed by decode unchanged.
func TestRoundTripAllScalarValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	for r := rune(0); r <= MaxPoint; r++ {
		if IsSurrogate(r) {
			continue
		}
		run, err := EncodeRune(r)
		if err != nil {
			t.Fatalf("encoding %#U failed: %v", r, err)
		}
		back, err := Assemble(run)
		if err != nil {
			t.Fatalf("decoding %v (from %#U) failed: %v", run, r, err)
		}
		if back != r {
			t.Fatalf("round trip of %#U yielded %#U", r, back)
		}
	}
}

func TestEncodeDecodeSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	points := []rune{'n', 'a', 'ï', 'v', 'e', ' ', 0x1F335}
	buf, err := Encode(points)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(points) {
		t.Fatalf("expected %d points back, got %d", len(points), len(back))
	}
	for i := range points {
		if back[i] != points[i] {
			t.Errorf("point %d: expected %#U, got %#U", i, points[i], back[i])
		}
	}
}
