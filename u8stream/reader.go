package u8stream

import (
	"io"

	"github.com/npillmayer/runecodec/u8"
)

// Reader decodes a UTF-8 byte stream into code points, one run at a time.
// It implements io.RuneReader. Readers are not safe for concurrent use;
// distinct Readers over distinct sources need no coordination.
type Reader struct {
	src    io.Reader
	buf    [u8.MaxRunLen]byte // bytes of the run currently assembled
	offset int64              // stream offset of the next unread byte
	err    error              // sticky error after the first failure
}

// NewReader returns a Reader decoding from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// Offset returns the stream offset of the next byte to be read.
func (rd *Reader) Offset() int64 {
	return rd.offset
}

// ReadRune decodes and returns the next code point from the stream,
// together with the length of its code-unit run. At the end of the stream
// it returns io.EOF; a stream ending in the middle of a run fails with a
// TruncatedSequence error at the absolute offset of the run's lead byte.
// After the first error every subsequent call returns the same error.
func (rd *Reader) ReadRune() (rune, int, error) {
	if rd.err != nil {
		return u8.RuneError, 0, rd.err
	}
	r, n, err := rd.readRune()
	if err != nil {
		rd.err = err
		return u8.RuneError, 0, err
	}
	return r, n, nil
}

func (rd *Reader) readRune() (rune, int, error) {
	lead := rd.offset
	if _, err := io.ReadFull(rd.src, rd.buf[:1]); err != nil {
		if err == io.EOF {
			return 0, 0, io.EOF // clean end at a run boundary
		}
		return 0, 0, err
	}
	rd.offset++
	run, err := u8.Cut(rd.buf[:1], 0)
	if err != nil {
		derr := err.(u8.DecodeError)
		if derr.Kind == u8.TruncatedSequence {
			// multi-byte run: fetch the declared remainder
			return rd.readTail(lead)
		}
		derr.Offset = int(lead)
		return 0, 0, derr
	}
	r, err := u8.Assemble(run)
	if err != nil {
		return 0, 0, rebase(err, lead)
	}
	return r, 1, nil
}

// readTail completes a multi-byte run whose lead byte sits in buf[0].
func (rd *Reader) readTail(lead int64) (rune, int, error) {
	n := runLength(rd.buf[0])
	m, err := io.ReadFull(rd.src, rd.buf[1:n])
	rd.offset += int64(m)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			tracer().Debugf("stream ends inside a %d-byte run at offset %d", n, lead)
			return 0, 0, u8.DecodeError{Kind: u8.TruncatedSequence, Offset: int(lead), Byte: rd.buf[0]}
		}
		return 0, 0, err
	}
	run, err := u8.Cut(rd.buf[:n], 0)
	if err != nil {
		return 0, 0, rebase(err, lead)
	}
	r, err := u8.Assemble(run)
	if err != nil {
		return 0, 0, rebase(err, lead)
	}
	return r, n, nil
}

// runLength re-derives the declared run length from a lead byte which Cut
// has already accepted as a valid multi-byte tag.
func runLength(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	default:
		return 4
	}
}

// rebase shifts a run-relative DecodeError to its absolute stream offset.
func rebase(err error, lead int64) error {
	if derr, ok := err.(u8.DecodeError); ok {
		derr.Offset += int(lead)
		return derr
	}
	return err
}

// ReadAll decodes the complete remainder of the stream, failing fast on
// the first malformed run.
func (rd *Reader) ReadAll() ([]rune, error) {
	var points []rune
	for {
		r, _, err := rd.ReadRune()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		points = append(points, r)
	}
}
