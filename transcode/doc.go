// Package transcode converts text between UTF-8, UTF-16, and UTF-32 code
// units held in native byte order.
//
// # Conversion Contract
//
// Every conversion has the shape
//
//	convert(src []A, dst []B, consumed *int) ([]B, error)
//
// and supports three modes selected by its optional arguments:
//
//   - Unbounded: dst is nil. The conversion allocates exactly enough output
//     and consumes the entire input. A malformed or truncated sequence is an
//     error.
//   - Bounded: dst is non-nil. Output is written into dst, which is never
//     grown or reallocated; the caller owns buffer sizing. Without a consumed
//     pointer the whole input must fit or the conversion fails with
//     buffer_too_small.
//   - Streaming: consumed is non-nil. The conversion may stop early, at a
//     full destination or an incomplete trailing sequence, and reports how
//     many source units it actually used.
//
// Identity conversions (same unit width on both sides) are zero-copy: in
// unbounded mode the returned slice shares the source's backing array.
//
// # Services
//
// The Service interface groups the six conversions reaching a single internal
// unit type U. UTF8, UTF16, and UTF32 are the built-in implementations for
// byte, uint16, and rune internals. All services are stateless and safe for
// concurrent use.
//
// Malformed input (lone surrogates, out-of-range code points, invalid UTF-8
// bytes) is always an error, never replaced with U+FFFD.
package transcode
