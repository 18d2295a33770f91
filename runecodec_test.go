package runecodec

import (
	"testing"

	"github.com/npillmayer/runecodec/u8query"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	points, err := DecodeString("Grüße 🌵")
	if err != nil {
		t.Fatal(err)
	}
	buf, err := Encode(points)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "Grüße 🌵" {
		t.Fatalf("round trip changed the text: %q", buf)
	}
}

func TestNameOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	if name := NameOf(0x1F335); name != "CACTUS" {
		t.Errorf("expected name CACTUS for U+1F335, got %q", name)
	}
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicode.codec")
	defer teardown()
	//
	s, err := Normalize(u8query.NFC, "é")
	if err != nil {
		t.Fatal(err)
	}
	if s != "é" {
		t.Errorf("expected precomposed é, got %q", s)
	}
}
