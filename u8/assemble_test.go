package u8

import (
	"testing"

	"github.com/npillmayer/runecodec/internal/hexfixture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAssembleValidRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	tests := []struct {
		run  string // hex
		want rune
	}{
		{"00", 0x0000},
		{"41", 'A'},
		{"7f", 0x007F},
		{"c2 80", 0x0080}, // smallest 2-byte value
		{"c3 a9", 0x00E9}, // é precomposed
		{"df bf", 0x07FF},
		{"e0 a0 80", 0x0800}, // smallest 3-byte value
		{"e2 82 ac", 0x20AC}, // €
		{"ef bf bf", 0xFFFF},
		{"f0 90 80 80", 0x10000}, // smallest 4-byte value
		{"f0 9f 8c b5", 0x1F335}, // 🌵
		{"f4 8f bf bf", 0x10FFFF},
	}
	for _, tt := range tests {
		r, err := Assemble(Run(hexfixture.MustBytes(tt.run)))
		if err != nil {
			t.Errorf("assembling %q failed: %v", tt.run, err)
			continue
		}
		if r != tt.want {
			t.Errorf("assembling %q: expected %#U, got %#U", tt.run, tt.want, r)
		}
	}
}

func TestAssembleMalformedRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	tests := []struct {
		name string
		run  string // hex
		kind Kind
	}{
		{"OverlongNUL", "c0 80", Overlong},
		{"OverlongASCII", "c1 81", Overlong},
		{"OverlongThreeBytes", "e0 80 af", Overlong},
		{"OverlongFourBytes", "f0 80 80 80", Overlong},
		{"AboveCodespace", "f4 90 80 80", CodePointOutOfRange},
		{"SurrogateLow", "ed a0 80", LoneSurrogate},  // U+D800
		{"SurrogateHigh", "ed bf bf", LoneSurrogate}, // U+DFFF
		{"BadContinuation", "c3 29", InvalidContinuationByte},
		{"EmptyRun", "", InvalidLeadByte},
		{"ContinuationAsLead", "80", InvalidLeadByte},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(Run(hexfixture.MustBytes(tt.run)))
			if err == nil {
				t.Fatalf("expected assembly of %q to fail", tt.run)
			}
			derr, ok := err.(DecodeError)
			if !ok {
				t.Fatalf("expected DecodeError, got %T", err)
			}
			if derr.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, derr.Kind)
			}
		})
	}
}

// A run whose length does not match its lead byte's tag is a segmenter
// defect; Assemble must reject it rather than produce garbage.
func TestAssembleLengthMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	run := Run(hexfixture.MustBytes("e2 82")) // 3-byte tag, 2 bytes handed over
	if _, err := Assemble(run); err == nil {
		t.Fatal("expected assembly of short-handed run to fail")
	}
}

func TestRunPointOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	good := Run(hexfixture.MustBytes("c3 a9"))
	if r, ok := good.Point().Unwrap(); !ok || r != 0x00E9 {
		t.Errorf("expected Some(U+00E9), got %#U, %v", r, ok)
	}
	bad := Run(hexfixture.MustBytes("c0 80"))
	if bad.Point().IsSome() {
		t.Error("expected None for an overlong run")
	}
	if r := bad.Point().Or(RuneError); r != RuneError {
		t.Errorf("expected replacement default, got %#U", r)
	}
}
