package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/runecodec/internal/hexfixture"
	"github.com/npillmayer/runecodec/u8"
	"github.com/npillmayer/runecodec/u8query"
	"github.com/pterm/pterm"
)

// decodeOp decodes the argument text and prints one table row per
// code-unit run.
func decodeOp(op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("decode needs a text argument"), false
	}
	printDecoded([]byte(op.arg))
	return nil, false
}

// hexOp decodes raw bytes given in hex, e.g. "hex f0 9f 8c b5". Unlike
// decodeOp this may run into malformed input, which is the point: errors
// are reported with kind and offset.
func hexOp(op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("hex needs a byte-string argument, e.g. 'hex c3 a9'"), false
	}
	data, err := hexfixture.Bytes(op.arg)
	if err != nil {
		return err, false
	}
	printDecoded(data)
	return nil, false
}

// printDecoded prints a table of runs: offset, code units, code point,
// name and display width. Lenient decoding: malformed runs show up as
// error rows instead of aborting the table.
func printDecoded(input []byte) {
	points, errs := u8.DecodeAll(input)
	data := [][]string{
		{"Offset", "Run", "Point", "Glyph", "Width", "Name"},
	}
	for off, run := range u8.Runs(input) {
		r := run.Point().Or(u8.RuneError)
		data = append(data, []string{
			fmt.Sprintf("%d", off),
			run.String(),
			fmt.Sprintf("U+%04X", r),
			string(r),
			fmt.Sprintf("%d", runewidth.RuneWidth(r)),
			u8query.Name(r),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	pterm.Printf("%d bytes, %d code points\n", len(input), len(points))
	for _, derr := range errs {
		pterm.Error.Println(derr.Error())
	}
}

// encodeOp encodes code points given as "U+xxxx" (or bare hex) arguments
// and prints the resulting byte sequence.
func encodeOp(op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("encode needs code-point arguments, e.g. 'encode U+1F335'"), false
	}
	points, err := parsePoints(op.arg)
	if err != nil {
		return err, false
	}
	buf, err := u8.Encode(points)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s = %q\n", u8.Run(buf).String(), string(buf))
	return nil, false
}

// nameOp looks up the Unicode name of a single code point.
func nameOp(op *Op) (error, bool) {
	if op.noArg() {
		return errors.New("name needs a code-point argument, e.g. 'name U+00E9'"), false
	}
	points, err := parsePoints(op.arg)
	if err != nil {
		return err, false
	}
	for _, r := range points {
		info := u8query.Info(r)
		pterm.Printf("%s  %s  (%s, %s)\n", info["point"], info["name"], info["category"], info["utf8"])
	}
	return nil, false
}

// normOp normalizes text and prints the code-point sequences before and
// after, e.g. "norm NFD é".
func normOp(op *Op) (error, bool) {
	form, text, _ := strings.Cut(op.arg, " ")
	if form == "" || text == "" {
		return errors.New("norm needs a form and a text, e.g. 'norm NFD é'"), false
	}
	f, err := u8query.ParseForm(form)
	if err != nil {
		return err, false
	}
	normalized, err := u8query.Normalize(f, text)
	if err != nil {
		return err, false
	}
	before, err := u8.DecodeString(text)
	if err != nil {
		return err, false
	}
	after, err := u8.DecodeString(normalized)
	if err != nil {
		return err, false
	}
	pterm.Printf("input:  %s\n", formatPoints(before))
	pterm.Printf("%s:    %s\n", f, formatPoints(after))
	return nil, false
}

func formatPoints(points []rune) string {
	sb := strings.Builder{}
	for i, r := range points {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("U+%04X", r))
	}
	return sb.String()
}

// parsePoints parses whitespace-separated code points, each "U+xxxx" or
// bare hex.
func parsePoints(arg string) ([]rune, error) {
	fields := strings.Fields(arg)
	points := make([]rune, 0, len(fields))
	for _, f := range fields {
		h := strings.TrimPrefix(strings.TrimPrefix(f, "U+"), "u+")
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("cannot parse code point %q: %w", f, err)
		}
		points = append(points, rune(n))
	}
	return points, nil
}
