package u8

// ---Encoder -----------------------------------------------------------------

// EncodeRune encodes a single code point into its code-unit run, picking
// the minimal run length from the code point's magnitude. It fails with
// CodePointOutOfRange for values outside the codespace and with
// LoneSurrogate for U+D800–U+DFFF; the Index of the returned EncodeError
// is 0.
func EncodeRune(r rune) (Run, error) {
	run, err := AppendRune(nil, r)
	if err != nil {
		return nil, err
	}
	return Run(run), nil
}

// AppendRune appends the UTF-8 encoding of r to dst and returns the
// extended slice. The appended bytes distribute the code point's payload
// bits over the run using the inverse of the assembler's masks, with the
// fixed tag bits set per byte.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	switch {
	case r < 0 || r > MaxPoint:
		return dst, EncodeError{Kind: CodePointOutOfRange, Point: r}
	case IsSurrogate(r):
		return dst, EncodeError{Kind: LoneSurrogate, Point: r}
	case r < runMin[2]:
		return append(dst, byte(r)), nil
	case r < runMin[3]:
		return append(dst,
			tag2|byte(r>>6),
			tagC|byte(r)&payloadC), nil
	case r < runMin[4]:
		return append(dst,
			tag3|byte(r>>12),
			tagC|byte(r>>6)&payloadC,
			tagC|byte(r)&payloadC), nil
	default:
		return append(dst,
			tag4|byte(r>>18),
			tagC|byte(r>>12)&payloadC,
			tagC|byte(r>>6)&payloadC,
			tagC|byte(r)&payloadC), nil
	}
}

// Encode transforms a sequence of code points into UTF-8 bytes. Encoding
// aborts at the first invalid code point with an EncodeError reporting its
// position in the input sequence; no partial output is returned.
func Encode(points []rune) ([]byte, error) {
	buf := make([]byte, 0, len(points)*2)
	for i, r := range points {
		var err error
		if buf, err = AppendRune(buf, r); err != nil {
			e := err.(EncodeError)
			e.Index = i
			return nil, e
		}
	}
	return buf, nil
}

// EncodeString encodes points and returns the result as a string.
func EncodeString(points []rune) (string, error) {
	buf, err := Encode(points)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
