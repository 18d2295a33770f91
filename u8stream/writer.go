package u8stream

import (
	"io"

	"github.com/npillmayer/runecodec/u8"
)

// Writer encodes code points into a UTF-8 byte stream.
type Writer struct {
	dst io.Writer
	buf []byte
	n   int64 // bytes written so far
}

// NewWriter returns a Writer encoding to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, buf: make([]byte, 0, u8.MaxRunLen)}
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 {
	return w.n
}

// WriteRune encodes r and writes its code-unit run to the stream,
// returning the run length. Invalid code points fail with an EncodeError
// before anything is written.
func (w *Writer) WriteRune(r rune) (int, error) {
	buf, err := u8.AppendRune(w.buf[:0], r)
	if err != nil {
		return 0, err
	}
	m, err := w.dst.Write(buf)
	w.n += int64(m)
	if err != nil {
		return m, err
	}
	return m, nil
}

// WriteString encodes the code points of s one run at a time. The input
// is decoded strictly first: malformed bytes, which Go strings can
// technically contain, fail with a DecodeError before anything is
// written (range-over-string would silently replace them with U+FFFD).
func (w *Writer) WriteString(s string) (int, error) {
	points, err := u8.DecodeString(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range points {
		m, err := w.WriteRune(r)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Transcode validates src as UTF-8 while copying it to dst, re-encoding
// run by run. It returns the number of bytes written. The copy aborts on
// the first malformed run with the error the Reader reports for it.
func Transcode(dst io.Writer, src io.Reader) (int64, error) {
	rd := NewReader(src)
	w := NewWriter(dst)
	for {
		r, _, err := rd.ReadRune()
		if err == io.EOF {
			return w.Written(), nil
		}
		if err != nil {
			return w.Written(), err
		}
		if _, err := w.WriteRune(r); err != nil {
			return w.Written(), err
		}
	}
}
