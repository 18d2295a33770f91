/*
Package u8stream lifts the strict codec of package u8 onto io.Reader and
io.Writer: incremental decoding of a byte stream into code points, and
incremental encoding the other way. Errors carry absolute stream offsets.

A Reader keeps no more state than the current stream position and a
single pending run, so a trailing partial run surfaces as a truncation
error at the offset of its lead byte, exactly as the slice-based codec
reports it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package u8stream

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'unicode.codec'
func tracer() tracing.Trace {
	return tracing.Select("unicode.codec")
}
