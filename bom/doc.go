// Package bom detects, strips, and converts Unicode byte-order-mark
// signatures while transcoding between external byte streams and a fixed
// internal code-unit width.
//
// # Signature Table
//
// A fixed nine-entry table describes the supported encodings:
//
//	Encoding     Signature      Auto-detect  Fallback
//	─────────────────────────────────────────────────
//	Unknown      -              yes          UTF8
//	UTF8NoSig    -              yes          UTF8
//	UTF8         EF BB BF       no           -
//	UTF16        -              yes          UTF16BE
//	UTF16BE      FE FF          no           -
//	UTF16LE      FF FE          no           -
//	UTF32        -              yes          UTF32BE
//	UTF32BE      00 00 FE FF    no           -
//	UTF32LE      FF FE 00 00    no           -
//
// FindSignature scans longest-signature-first so a UTF-32 mark is never
// swallowed by the UTF-16 mark it shares a prefix with.
//
// # Codec
//
// Codec[U] decodes external bytes into internal code units of type U (byte,
// uint16, or rune) and encodes them back. A codec created with an
// auto-detecting encoding resolves itself on the first Decode, via the
// input's signature or the encoding's declared fallback, and stays pinned to
// the resolved encoding until reconfigured:
//
//	c := bom.New[rune](bom.Unknown)
//	out, err := c.Decode(input, nil, nil)
//	// c.Encoding() now names the concrete encoding
//
// Decode supports streaming through a caller-supplied destination buffer and
// a consumed-bytes out-parameter; see the Decode documentation.
//
// Encode refuses to run while the configured encoding is still
// auto-detecting, and never emits a signature on its own; callers wanting a
// signed output prepend Signature() themselves.
//
// # Thread Safety
//
// The signature table is immutable and safe for arbitrary concurrent
// readers. A Codec instance is mutable state private to its owner; concurrent
// use of one instance must be serialized by the caller.
package bom
