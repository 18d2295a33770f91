package u8

import "iter"

// ---Segmenter ---------------------------------------------------------------

// Cut carves the code-unit run starting at offset i out of p. It is the
// single-step primitive of the segmenter: the lead byte at p[i] declares the
// run length, and every non-leading byte must have continuation shape.
// The returned run aliases p.
//
// Cut fails with InvalidLeadByte if p[i] cannot start a run, with
// InvalidContinuationByte (at the precise offset of the bad byte) if a
// non-leading byte does not match 10xxxxxx, and with TruncatedSequence if
// the declared length reads past the end of p. Continuation bytes which
// are present get validated even when the run is undersized, so that a
// malformed byte near the end of the input is not misdiagnosed as mere
// truncation.
func Cut(p []byte, i int) (Run, error) {
	lead := p[i]
	n := runLength(lead)
	if n == 0 {
		return nil, decodeErr(InvalidLeadByte, i, lead)
	}
	for j := i + 1; j < min(i+n, len(p)); j++ {
		if !isContinuation(p[j]) {
			return nil, decodeErr(InvalidContinuationByte, j, p[j])
		}
	}
	if i+n > len(p) {
		return nil, decodeErr(TruncatedSequence, i, lead)
	}
	return Run(p[i : i+n]), nil
}

// Segment partitions p into maximal runs of 1–4 code units, each run being
// the encoding of exactly one code point. Empty input yields an empty
// (non-nil) sequence. Concatenating the returned runs reproduces p exactly.
//
// Segment validates run shape only; overlong, out-of-range and surrogate
// values are caught by Assemble. The first malformed byte aborts the scan.
func Segment(p []byte) ([]Run, error) {
	runs := make([]Run, 0, len(p))
	for i := 0; i < len(p); {
		run, err := Cut(p, i)
		if err != nil {
			tracer().Debugf("segmentation stopped: %v", err)
			return nil, err
		}
		runs = append(runs, run)
		i += run.Len()
	}
	return runs, nil
}

// Runs iterates over the code-unit runs of p, yielding each run together
// with its byte offset. Iteration stops silently at the first malformed
// run; callers which need the error use Segment or Cut instead.
func Runs(p []byte) iter.Seq2[int, Run] {
	return func(yield func(int, Run) bool) {
		for i := 0; i < len(p); {
			run, err := Cut(p, i)
			if err != nil {
				return
			}
			if !yield(i, run) {
				return
			}
			i += run.Len()
		}
	}
}
