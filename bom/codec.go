package bom

import (
	"go.uber.org/zap"

	"github.com/wippyai/text-codec/errors"
	"github.com/wippyai/text-codec/transcode"
)

// Unit is the constraint for internal code-unit element types.
type Unit = transcode.Unit

// state is the codec's resolved-encoding identity. configure is its only
// mutator.
type state struct {
	entry    *Entry
	id       Encoding
	sigFound bool
}

// Codec transcodes between external bytes and internal code units of type U.
// A Codec is NOT safe for concurrent use; Decode mutates the resolved
// encoding as auto-detection progresses.
type Codec[U Unit] struct {
	svc   transcode.Service[U]
	state state
}

// New creates a codec pinned to id, using the built-in transcoding service
// for U. An auto-detecting id (Unknown, UTF8NoSig, UTF16, UTF32) resolves
// itself on the first Decode.
func New[U Unit](id Encoding) *Codec[U] {
	return NewWithService[U](id, defaultService[U]())
}

// NewWithService creates a codec delegating unit conversion to svc.
func NewWithService[U Unit](id Encoding, svc transcode.Service[U]) *Codec[U] {
	c := &Codec[U]{svc: svc}
	c.configure(id, false)
	return c
}

func defaultService[U Unit]() transcode.Service[U] {
	var u U
	var svc any
	switch any(u).(type) {
	case byte:
		svc = transcode.UTF8{}
	case uint16:
		svc = transcode.UTF16{}
	case rune:
		svc = transcode.UTF32{}
	}
	return svc.(transcode.Service[U])
}

// Configure pins the codec to id, discarding any previously resolved state.
// Use it to force a concrete encoding known out-of-band.
func (c *Codec[U]) Configure(id Encoding) {
	c.configure(id, false)
}

func (c *Codec[U]) configure(id Encoding, found bool) {
	e := EntryFor(id)
	if e == nil {
		id = Unknown
		e = EntryFor(Unknown)
	}
	c.state.id = id
	c.state.sigFound = found
	c.state.entry = e
}

// Encoding returns the encoding currently in effect.
func (c *Codec[U]) Encoding() Encoding {
	return c.state.id
}

// SignatureFound reports whether the current encoding was resolved from a
// detected signature, as opposed to explicit configuration or a fallback.
func (c *Codec[U]) SignatureFound() bool {
	return c.state.sigFound
}

// Signature returns the signature bytes of the current encoding, or nil for
// the unsigned ids. The slice is a read-only view of the table; callers
// wanting a signed output prepend it to Encode's result themselves.
func (c *Codec[U]) Signature() []byte {
	return c.state.entry.Signature
}

// Decode converts input into internal code units.
//
// Under an auto-detecting encoding the input's signature, or the encoding's
// declared fallback, resolves the codec to a concrete encoding first; a
// recognized signature under an explicit encoding is an error. Signature
// bytes are stripped, byte order is corrected in place (the input buffer may
// be modified), and the remainder is handed to the transcoding service.
//
// When dst is non-nil the service writes into it without reallocating. When
// consumed is non-nil the call is streaming: it may use fewer input bytes
// than provided and reports the exact count, signature included. Streaming
// callers must resupply unconsumed bytes from their original source rather
// than re-passing the corrected buffer.
func (c *Codec[U]) Decode(input []byte, dst []U, consumed *int) ([]U, error) {
	sigLen := 0
	match, found := FindSignature(input)

	if c.state.entry.AutoDetect {
		switch {
		case found:
			c.configure(match.ID, true)
			sigLen = len(match.Signature)
			input = input[sigLen:]
			Logger().Debug("signature detected",
				zap.Stringer("encoding", match.ID),
				zap.Int("signature_len", sigLen))
		case c.state.entry.HasFallback:
			fb := c.state.entry.Fallback
			c.configure(fb, false)
			Logger().Debug("no signature, resolved via fallback",
				zap.Stringer("encoding", fb))
		default:
			return nil, errors.MissingSignature(c.state.id.String())
		}
	} else if found {
		return nil, errors.UnexpectedSignature(c.state.id.String(), match.Signature)
	}

	e := c.state.entry
	correctByteOrder(input, e)

	w := int(e.Width)
	if rem := len(input) % w; rem != 0 && consumed == nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Encoding(e.ID.String()).
			Offset(len(input) - rem).
			Detail("input length %d is not a multiple of the %d-byte code unit", len(input), w).
			Build()
	}

	var (
		units int
		ucp   *int
	)
	if consumed != nil {
		ucp = &units
	}

	var (
		out []U
		err error
	)
	switch e.Width {
	case Width8:
		out, err = c.svc.FromUTF8(input, dst, ucp)
	case Width16:
		out, err = c.svc.FromUTF16(viewUTF16(input), dst, ucp)
	case Width32:
		out, err = c.svc.FromUTF32(viewUTF32(input), dst, ucp)
	}
	if err != nil {
		return nil, err
	}

	if consumed != nil {
		*consumed = units*w + sigLen
	}
	return out, nil
}

// Encode converts internal code units into the configured encoding's byte
// layout, writing into dst when supplied and large enough. The configured
// encoding must be explicit; encoding under an unresolved auto-detecting id
// fails. No signature is emitted.
func (c *Codec[U]) Encode(content []U, dst []byte) ([]byte, error) {
	e := c.state.entry
	if e.AutoDetect {
		// UTF8NoSig names a definite byte layout even though decode
		// treats it as auto-detecting; the truly ambiguous ids do not.
		if e.ID != UTF8NoSig {
			return nil, errors.NonExplicitEncoding(e.ID.String())
		}
		e = EntryFor(e.Fallback)
	}

	var (
		out []byte
		err error
	)
	switch e.Width {
	case Width8:
		out, err = c.svc.ToUTF8(content, dst, nil)
	case Width16:
		d16, direct := boundedUTF16(dst)
		var u []uint16
		u, err = c.svc.ToUTF16(content, d16, nil)
		if err == nil {
			out = bytesOfUTF16(u)
			if dst != nil && !direct {
				out, err = fitInto(out, dst)
			}
		}
	case Width32:
		d32, direct := boundedUTF32(dst)
		var u []rune
		u, err = c.svc.ToUTF32(content, d32, nil)
		if err == nil {
			out = bytesOfUTF32(u)
			if dst != nil && !direct {
				out, err = fitInto(out, dst)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	// The identity conversion can hand back content's own storage; clone
	// before an in-place swap would clobber the caller's data.
	if needsSwap(e) && sameBacking(out, content) {
		out = append([]byte(nil), out...)
	}
	return correctByteOrder(out, e), nil
}

// fitInto copies a service-allocated result into the caller's destination
// when the destination could not be used directly.
func fitInto(out, dst []byte) ([]byte, error) {
	if len(out) > len(dst) {
		return nil, errors.BufferTooSmall(errors.PhaseEncode, len(out), len(dst))
	}
	copy(dst, out)
	return dst[:len(out)], nil
}
