package transcode

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Surrogate ranges and the supplementary-plane offset, per the Unicode
// standard.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

func nextUTF8(src []byte) (rune, int, unitStatus) {
	if !utf8.FullRune(src) {
		return 0, 0, unitIncomplete
	}
	r, n := utf8.DecodeRune(src)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0, unitInvalid
	}
	return r, n, unitOK
}

func nextUTF16(src []uint16) (rune, int, unitStatus) {
	u := src[0]
	switch {
	case u < surr1 || u >= surr3:
		return rune(u), 1, unitOK
	case u < surr2:
		// High surrogate; the pair's low half must follow.
		if len(src) < 2 {
			return 0, 0, unitIncomplete
		}
		v := src[1]
		if v < surr2 || v >= surr3 {
			return 0, 0, unitInvalid
		}
		return (rune(u)-surr1)<<10 | (rune(v) - surr2) + surrSelf, 2, unitOK
	default:
		// Lone low surrogate.
		return 0, 0, unitInvalid
	}
}

func nextUTF32(src []rune) (rune, int, unitStatus) {
	r := src[0]
	if r < 0 || r > utf8.MaxRune || (r >= surr1 && r < surr3) {
		return 0, 0, unitInvalid
	}
	return r, 1, unitOK
}

func utf8Width(r rune) int {
	return utf8.RuneLen(r)
}

func utf16Width(r rune) int {
	if r >= surrSelf {
		return 2
	}
	return 1
}

func utf32Width(rune) int {
	return 1
}

func putUTF8(dst []byte, r rune) int {
	return utf8.EncodeRune(dst, r)
}

func putUTF16(dst []uint16, r rune) int {
	if r >= surrSelf {
		hi, lo := utf16.EncodeRune(r)
		dst[0], dst[1] = uint16(hi), uint16(lo)
		return 2
	}
	dst[0] = uint16(r)
	return 1
}

func putUTF32(dst []rune, r rune) int {
	dst[0] = r
	return 1
}
