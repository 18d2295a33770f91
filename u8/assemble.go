package u8

// ---Point assembler ---------------------------------------------------------

// Assemble strips the length tag and the continuation markers from a run
// and reassembles the payload bits into a code point.
//
// The bit arithmetic alone would accept sequences which the UTF-8 standard
// forbids, so Assemble additionally rejects runs with malformed
// continuation bytes, overlong encodings, values above U+10FFFF, and
// surrogates. Offsets in the returned DecodeError are relative to the run;
// callers which track the run's position add their own base offset.
func Assemble(run Run) (rune, error) {
	n := run.Len()
	if n < 1 || n > MaxRunLen || runLength(run[0]) != n {
		// defensive: the segmenter never produces such a run
		var lead byte
		if n > 0 {
			lead = run[0]
		}
		return RuneError, decodeErr(InvalidLeadByte, 0, lead)
	}
	for j := 1; j < n; j++ {
		if !isContinuation(run[j]) {
			return RuneError, decodeErr(InvalidContinuationByte, j, run[j])
		}
	}
	var r rune
	switch n {
	case 1:
		r = rune(run[0] & payload1)
	case 2:
		r = rune(run[0]&payload2)<<6 | rune(run[1]&payloadC)
	case 3:
		r = rune(run[0]&payload3)<<12 | rune(run[1]&payloadC)<<6 | rune(run[2]&payloadC)
	case 4:
		r = rune(run[0]&payload4)<<18 | rune(run[1]&payloadC)<<12 | rune(run[2]&payloadC)<<6 |
			rune(run[3]&payloadC)
	}
	if r < runMin[n] {
		return RuneError, decodeErr(Overlong, 0, run[0])
	}
	if r > MaxPoint {
		return RuneError, decodeErr(CodePointOutOfRange, 0, run[0])
	}
	if IsSurrogate(r) {
		return RuneError, decodeErr(LoneSurrogate, 0, run[0])
	}
	return r, nil
}
