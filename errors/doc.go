// Package errors provides structured error types for the text-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the encoding involved, the
// offending byte offset or unit index, and a cause chain. Every Kind also
// carries a stable numeric code for callers that report errors out-of-band.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnexpectedSignature).
//		Encoding("utf16le").
//		Detail("input carries a utf8 signature").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedSignature("utf16le", sig)
//	err := errors.BufferTooSmall(errors.PhaseConvert, need, have)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
