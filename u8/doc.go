/*
Package u8 implements a strict UTF-8 codec.

The codec is split into two small stages, mirroring the structure of the
encoding itself:

▪︎ a segmenter, which partitions a byte sequence into runs of 1–4 code units,
each run carrying exactly one code point

▪︎ a point assembler, which strips the length tag and continuation markers
from a run and reassembles the payload bits into a code point

Decode is the composition of the two; Encode is the exact inverse. All
functions are pure transforms over their input: no global state, no I/O,
and arbitrarily many calls may run concurrently on disjoint inputs.

Unlike the lenient decoder of the standard library, which substitutes
U+FFFD for malformed input and carries on, this package is strict by
default: the first malformed byte aborts decoding and is reported with its
kind and offset (see DecodeError). The lenient, resynchronizing behavior is
available explicitly through DecodeAll.

Rejected beyond the plain bit arithmetic are overlong encodings, code
points above U+10FFFF, and surrogates (UTF-8 has no legal surrogate
pairs, so a surrogate code point is invalid wherever it appears).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package u8

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'unicode.codec'
func tracer() tracing.Trace {
	return tracing.Select("unicode.codec")
}
