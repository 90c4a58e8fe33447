package transcode

import (
	"github.com/wippyai/text-codec/errors"
)

// unitStatus reports the outcome of decoding one code point from a source
// slice.
type unitStatus int

const (
	unitOK unitStatus = iota
	unitIncomplete
	unitInvalid
)

// convert is the shared driver behind every cross-width conversion. It walks
// src one code point at a time via next, sizes the code point's target form
// via width, and writes it via put. Mode selection follows the package
// contract: dst bounds the output, consumed enables partial consumption.
func convert[S, D Unit](src []S, dst []D, consumed *int, conv string,
	next func([]S) (rune, int, unitStatus),
	width func(rune) int,
	put func([]D, rune) int) ([]D, error) {

	streaming := consumed != nil
	bounded := dst != nil

	var out []D
	if bounded {
		out = dst[:0:len(dst)]
	} else {
		out = make([]D, 0, len(src))
	}

	i := 0
	for i < len(src) {
		r, n, st := next(src[i:])
		if st == unitIncomplete {
			if streaming {
				break
			}
			return nil, errors.InvalidData(conv, i, "truncated sequence at end of input")
		}
		if st == unitInvalid {
			return nil, errors.InvalidData(conv, i, "malformed code-unit sequence")
		}

		need := width(r)
		if bounded && len(out)+need > len(dst) {
			if !streaming || i == 0 {
				return nil, errors.BufferTooSmall(errors.PhaseConvert, len(out)+need, len(dst))
			}
			break
		}

		k := len(out)
		out = out[:k+need]
		put(out[k:], r)
		i += n
	}

	if consumed != nil {
		*consumed = i
	}
	return out, nil
}

// identity handles same-width conversions. In unbounded mode it returns src
// itself: the zero-copy reinterpretation the conversion contract requires.
func identity[U Unit](src []U, dst []U, consumed *int) ([]U, error) {
	if dst == nil {
		if consumed != nil {
			*consumed = len(src)
		}
		return src, nil
	}

	n := len(src)
	if n > len(dst) {
		if consumed == nil || len(dst) == 0 {
			return nil, errors.BufferTooSmall(errors.PhaseConvert, n, len(dst))
		}
		n = len(dst)
	}
	copy(dst, src[:n])
	if consumed != nil {
		*consumed = n
	}
	return dst[:n], nil
}

func utf8ToUTF16(src []byte, dst []uint16, consumed *int) ([]uint16, error) {
	return convert(src, dst, consumed, "utf8 to utf16", nextUTF8, utf16Width, putUTF16)
}

func utf8ToUTF32(src []byte, dst []rune, consumed *int) ([]rune, error) {
	return convert(src, dst, consumed, "utf8 to utf32", nextUTF8, utf32Width, putUTF32)
}

func utf16ToUTF8(src []uint16, dst []byte, consumed *int) ([]byte, error) {
	return convert(src, dst, consumed, "utf16 to utf8", nextUTF16, utf8Width, putUTF8)
}

func utf16ToUTF32(src []uint16, dst []rune, consumed *int) ([]rune, error) {
	return convert(src, dst, consumed, "utf16 to utf32", nextUTF16, utf32Width, putUTF32)
}

func utf32ToUTF8(src []rune, dst []byte, consumed *int) ([]byte, error) {
	return convert(src, dst, consumed, "utf32 to utf8", nextUTF32, utf8Width, putUTF8)
}

func utf32ToUTF16(src []rune, dst []uint16, consumed *int) ([]uint16, error) {
	return convert(src, dst, consumed, "utf32 to utf16", nextUTF32, utf16Width, putUTF16)
}
