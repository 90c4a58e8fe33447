// Package xtext provides a transcoding service backed by golang.org/x/text.
//
// Service is a drop-in transcode.Service[byte] for codecs with an 8-bit
// internal representation, wired in through bom.NewWithService. Unlike the
// built-in transcode services it follows x/text's lenient convention:
// malformed sequences become U+FFFD instead of failing the conversion.
package xtext

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/wippyai/text-codec/errors"
	"github.com/wippyai/text-codec/transcode"
)

var hostBig = binary.NativeEndian.Uint16([]byte{0xAB, 0xCD}) == 0xABCD

var (
	utf16Native = unicode.UTF16(endian16(), unicode.IgnoreBOM)
	utf32Native = utf32.UTF32(endian32(), utf32.IgnoreBOM)
)

func endian16() unicode.Endianness {
	if hostBig {
		return unicode.BigEndian
	}
	return unicode.LittleEndian
}

func endian32() utf32.Endianness {
	if hostBig {
		return utf32.BigEndian
	}
	return utf32.LittleEndian
}

// Service converts between UTF-8 bytes and native-order UTF-16/32 units
// using x/text transformers. It is stateless and safe for concurrent use.
type Service struct{}

var _ transcode.Service[byte] = Service{}

func (Service) FromUTF8(src []byte, dst []byte, consumed *int) ([]byte, error) {
	return transcode.UTF8{}.FromUTF8(src, dst, consumed)
}

func (Service) ToUTF8(src []byte, dst []byte, consumed *int) ([]byte, error) {
	return transcode.UTF8{}.ToUTF8(src, dst, consumed)
}

func (Service) FromUTF16(src []uint16, dst []byte, consumed *int) ([]byte, error) {
	out, nSrc, err := runTransform(utf16Native.NewDecoder(), pack16(src), dst, consumed != nil)
	if err != nil {
		return nil, err
	}
	if consumed != nil {
		*consumed = nSrc / 2
	}
	return out, nil
}

func (Service) ToUTF16(src []byte, dst []uint16, consumed *int) ([]uint16, error) {
	var bdst []byte
	if dst != nil {
		bdst = make([]byte, len(dst)*2)
	}
	out, nSrc, err := runTransform(utf16Native.NewEncoder(), src, bdst, consumed != nil)
	if err != nil {
		return nil, err
	}
	if consumed != nil {
		*consumed = nSrc
	}
	if dst != nil {
		return unpack16Into(dst, out), nil
	}
	return unpack16(out), nil
}

func (Service) FromUTF32(src []rune, dst []byte, consumed *int) ([]byte, error) {
	out, nSrc, err := runTransform(utf32Native.NewDecoder(), pack32(src), dst, consumed != nil)
	if err != nil {
		return nil, err
	}
	if consumed != nil {
		*consumed = nSrc / 4
	}
	return out, nil
}

func (Service) ToUTF32(src []byte, dst []rune, consumed *int) ([]rune, error) {
	var bdst []byte
	if dst != nil {
		bdst = make([]byte, len(dst)*4)
	}
	out, nSrc, err := runTransform(utf32Native.NewEncoder(), src, bdst, consumed != nil)
	if err != nil {
		return nil, err
	}
	if consumed != nil {
		*consumed = nSrc
	}
	if dst != nil {
		return unpack32Into(dst, out), nil
	}
	return unpack32(out), nil
}

// runTransform drives a transformer under the conversion contract: a nil dst
// allocates exactly enough output and consumes everything; otherwise dst
// bounds the output, and only streaming calls may stop early.
func runTransform(t transform.Transformer, src, dst []byte, streaming bool) ([]byte, int, error) {
	if dst == nil {
		out, n, err := transform.Bytes(t, src)
		if err != nil {
			return nil, 0, errors.New(errors.PhaseConvert, errors.KindInvalidData).
				Cause(err).
				Detail("transform failed").
				Build()
		}
		return out, n, nil
	}

	nDst, nSrc, err := t.Transform(dst, src, true)
	switch {
	case err == nil:
	case err == transform.ErrShortDst:
		if !streaming || nSrc == 0 {
			return nil, 0, errors.BufferTooSmall(errors.PhaseConvert, len(src), len(dst))
		}
	default:
		return nil, 0, errors.New(errors.PhaseConvert, errors.KindInvalidData).
			Cause(err).
			Detail("transform failed").
			Build()
	}
	return dst[:nDst], nSrc, nil
}

func pack16(src []uint16) []byte {
	out := make([]byte, len(src)*2)
	for i, u := range src {
		binary.NativeEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func unpack16(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	return unpack16Into(out, b)
}

func unpack16Into(dst []uint16, b []byte) []uint16 {
	n := len(b) / 2
	for i := 0; i < n; i++ {
		dst[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return dst[:n]
}

func pack32(src []rune) []byte {
	out := make([]byte, len(src)*4)
	for i, r := range src {
		binary.NativeEndian.PutUint32(out[4*i:], uint32(r))
	}
	return out
}

func unpack32(b []byte) []rune {
	out := make([]rune, len(b)/4)
	return unpack32Into(out, b)
}

func unpack32Into(dst []rune, b []byte) []rune {
	n := len(b) / 4
	for i := 0; i < n; i++ {
		dst[i] = rune(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return dst[:n]
}
