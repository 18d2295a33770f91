package main

import "testing"

func TestParseCommand(t *testing.T) {
	op, err := parseCommand("decode héllo wörld")
	if err != nil {
		t.Fatal(err)
	}
	if op.code != DECODE || op.arg != "héllo wörld" {
		t.Errorf("expected decode op with full argument, got %v %q", op.code, op.arg)
	}
	op, err = parseCommand("quit")
	if err != nil {
		t.Fatal(err)
	}
	if op.code != QUIT || !op.noArg() {
		t.Errorf("expected bare quit op, got %v %q", op.code, op.arg)
	}
	if _, err = parseCommand("bogus"); err == nil {
		t.Error("expected unknown command to be rejected")
	}
}

func TestParsePoints(t *testing.T) {
	points, err := parsePoints("U+1F335 e9 u+0301")
	if err != nil {
		t.Fatal(err)
	}
	want := []rune{0x1F335, 0xE9, 0x0301}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: expected %#U, got %#U", i, want[i], points[i])
		}
	}
	if _, err = parsePoints("U+XYZ"); err == nil {
		t.Error("expected malformed code point to be rejected")
	}
}
