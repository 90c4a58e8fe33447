package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDetect  Phase = "detect"  // signature sniffing
	PhaseDecode  Phase = "decode"  // external bytes to internal units
	PhaseEncode  Phase = "encode"  // internal units to external bytes
	PhaseConvert Phase = "convert" // code-unit transcoding
	PhaseConfig  Phase = "config"  // encoding selection
)

// Kind categorizes the error
type Kind string

const (
	KindMissingSignature    Kind = "missing_signature"
	KindUnexpectedSignature Kind = "unexpected_signature"
	KindNonExplicitEncoding Kind = "non_explicit_encoding"
	KindBufferTooSmall      Kind = "buffer_too_small"
	KindInvalidData         Kind = "invalid_data"
	KindUnknownEncoding     Kind = "unknown_encoding"
)

// kindCodes assigns each Kind a stable numeric code for out-of-band
// reporting sinks. Codes are part of the public contract; never renumber.
var kindCodes = map[Kind]int{
	KindMissingSignature:    1,
	KindUnexpectedSignature: 2,
	KindNonExplicitEncoding: 3,
	KindBufferTooSmall:      4,
	KindInvalidData:         5,
	KindUnknownEncoding:     6,
}

// Code returns the numeric code for the kind, or 0 if unregistered.
func (k Kind) Code() int {
	return kindCodes[k]
}

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string
	Detail   string
	Offset   int // byte offset or unit index; -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Encoding != "" {
		b.WriteString(": encoding ")
		b.WriteString(e.Encoding)
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		fmt.Fprintf(&b, "%d", e.Offset)
	}

	if e.Detail != "" {
		if e.Encoding != "" || e.Offset >= 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Encoding sets the logical encoding name
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Offset sets the byte offset or unit index where the error was detected
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingSignature creates an error for an auto-detecting encoding with no
// recognizable signature and no declared fallback
func MissingSignature(encoding string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindMissingSignature,
		Encoding: encoding,
		Detail:   "no known signature found and no fallback declared",
		Offset:   -1,
	}
}

// UnexpectedSignature creates an error for a signature found while decoding
// under an explicit, non-auto-detecting encoding
func UnexpectedSignature(encoding string, sig []byte) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindUnexpectedSignature,
		Encoding: encoding,
		Detail:   fmt.Sprintf("explicit encoding must not carry a signature, found % x", sig),
		Offset:   0,
	}
}

// NonExplicitEncoding creates an error for encoding under an unresolved
// auto-detecting configuration
func NonExplicitEncoding(encoding string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindNonExplicitEncoding,
		Encoding: encoding,
		Detail:   "encoding is not resolved to an explicit byte layout",
		Offset:   -1,
	}
}

// BufferTooSmall creates an error for a destination buffer that cannot hold
// the required output
func BufferTooSmall(phase Phase, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("destination needs at least %d units, have %d", need, have),
		Offset: -1,
	}
}

// InvalidData creates an error for a malformed code-unit sequence
func InvalidData(conv string, offset int, detail string) *Error {
	return &Error{
		Phase:    PhaseConvert,
		Kind:     KindInvalidData,
		Encoding: conv,
		Detail:   detail,
		Offset:   offset,
	}
}

// UnknownEncoding creates an error for an unparseable encoding name
func UnknownEncoding(name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindUnknownEncoding,
		Detail: fmt.Sprintf("unknown encoding name %q", name),
		Offset: -1,
	}
}
