package u8

// ---Decoding entry points ---------------------------------------------------

// Decode transforms UTF-8 bytes into the sequence of code points they
// encode. Decoding is strict and all-or-nothing: the first malformed byte
// aborts with a DecodeError carrying its absolute offset, and no partial
// output is returned. Empty input decodes to an empty sequence.
//
// The output length equals the number of code-unit runs in p, not the
// number of bytes.
func Decode(p []byte) ([]rune, error) {
	points := make([]rune, 0, len(p))
	for i := 0; i < len(p); {
		run, err := Cut(p, i)
		if err != nil {
			return nil, err
		}
		r, err := Assemble(run)
		if err != nil {
			return nil, rebase(err, i)
		}
		points = append(points, r)
		i += run.Len()
	}
	return points, nil
}

// DecodeString is Decode over the bytes of s.
func DecodeString(s string) ([]rune, error) {
	return Decode([]byte(s))
}

// DecodeAll is the lenient counterpart of Decode: every malformed run
// becomes a U+FFFD replacement character in the output, the scan
// resynchronizes at the next plausible lead byte, and all errors are
// collected with their offsets. The returned slice of errors is nil for
// well-formed input.
//
// Self-synchronization follows the structure of the encoding: after a bad
// lead byte the scan advances one byte; after a bad continuation byte it
// re-examines the offending byte as a potential lead; a truncated final
// run consumes the remainder of the input.
func DecodeAll(p []byte) ([]rune, []DecodeError) {
	points := make([]rune, 0, len(p))
	ec := &errorCollector{}
	for i := 0; i < len(p); {
		run, err := Cut(p, i)
		if err != nil {
			i = resync(p, i, err.(DecodeError), ec)
			points = append(points, RuneError)
			continue
		}
		r, err := Assemble(run)
		if err != nil {
			e := rebase(err, i).(DecodeError)
			ec.addError(e.Kind, e.Offset, e.Byte)
			points = append(points, RuneError)
			i += run.Len()
			continue
		}
		points = append(points, r)
		i += run.Len()
	}
	if !ec.hasErrors() {
		return points, nil
	}
	tracer().Infof("lenient decoding found %d malformed runs", len(ec.errors))
	return points, ec.errors
}

// rebase shifts a run-relative DecodeError to the absolute offset of the
// run within the input.
func rebase(err error, base int) error {
	if e, ok := err.(DecodeError); ok {
		e.Offset += base
		return e
	}
	return err
}

// resync records e and returns the offset at which scanning resumes.
func resync(p []byte, i int, e DecodeError, ec *errorCollector) int {
	ec.addError(e.Kind, e.Offset, e.Byte)
	switch e.Kind {
	case InvalidLeadByte:
		return i + 1
	case InvalidContinuationByte:
		return e.Offset // re-examine the offending byte as a lead
	case TruncatedSequence:
		return len(p)
	}
	return i + 1
}
