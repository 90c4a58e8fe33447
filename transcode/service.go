package transcode

// Unit constrains the code-unit element types handled by this package:
// byte for UTF-8, uint16 for UTF-16, rune for UTF-32.
type Unit interface {
	byte | uint16 | rune
}

// Service converts between an internal code-unit type U and the three
// external unit widths. Implementations must honor the conversion contract
// described in the package documentation: dst, when supplied, bounds the
// output and is never reallocated; consumed, when supplied, enables partial
// consumption and receives the number of source units used.
type Service[U Unit] interface {
	FromUTF8(src []byte, dst []U, consumed *int) ([]U, error)
	FromUTF16(src []uint16, dst []U, consumed *int) ([]U, error)
	FromUTF32(src []rune, dst []U, consumed *int) ([]U, error)
	ToUTF8(src []U, dst []byte, consumed *int) ([]byte, error)
	ToUTF16(src []U, dst []uint16, consumed *int) ([]uint16, error)
	ToUTF32(src []U, dst []rune, consumed *int) ([]rune, error)
}

// UTF8 is the built-in Service for an 8-bit internal representation.
type UTF8 struct{}

func (UTF8) FromUTF8(src []byte, dst []byte, consumed *int) ([]byte, error) {
	return identity(src, dst, consumed)
}

func (UTF8) FromUTF16(src []uint16, dst []byte, consumed *int) ([]byte, error) {
	return utf16ToUTF8(src, dst, consumed)
}

func (UTF8) FromUTF32(src []rune, dst []byte, consumed *int) ([]byte, error) {
	return utf32ToUTF8(src, dst, consumed)
}

func (UTF8) ToUTF8(src []byte, dst []byte, consumed *int) ([]byte, error) {
	return identity(src, dst, consumed)
}

func (UTF8) ToUTF16(src []byte, dst []uint16, consumed *int) ([]uint16, error) {
	return utf8ToUTF16(src, dst, consumed)
}

func (UTF8) ToUTF32(src []byte, dst []rune, consumed *int) ([]rune, error) {
	return utf8ToUTF32(src, dst, consumed)
}

// UTF16 is the built-in Service for a 16-bit internal representation.
type UTF16 struct{}

func (UTF16) FromUTF8(src []byte, dst []uint16, consumed *int) ([]uint16, error) {
	return utf8ToUTF16(src, dst, consumed)
}

func (UTF16) FromUTF16(src []uint16, dst []uint16, consumed *int) ([]uint16, error) {
	return identity(src, dst, consumed)
}

func (UTF16) FromUTF32(src []rune, dst []uint16, consumed *int) ([]uint16, error) {
	return utf32ToUTF16(src, dst, consumed)
}

func (UTF16) ToUTF8(src []uint16, dst []byte, consumed *int) ([]byte, error) {
	return utf16ToUTF8(src, dst, consumed)
}

func (UTF16) ToUTF16(src []uint16, dst []uint16, consumed *int) ([]uint16, error) {
	return identity(src, dst, consumed)
}

func (UTF16) ToUTF32(src []uint16, dst []rune, consumed *int) ([]rune, error) {
	return utf16ToUTF32(src, dst, consumed)
}

// UTF32 is the built-in Service for a 32-bit internal representation.
type UTF32 struct{}

func (UTF32) FromUTF8(src []byte, dst []rune, consumed *int) ([]rune, error) {
	return utf8ToUTF32(src, dst, consumed)
}

func (UTF32) FromUTF16(src []uint16, dst []rune, consumed *int) ([]rune, error) {
	return utf16ToUTF32(src, dst, consumed)
}

func (UTF32) FromUTF32(src []rune, dst []rune, consumed *int) ([]rune, error) {
	return identity(src, dst, consumed)
}

func (UTF32) ToUTF8(src []rune, dst []byte, consumed *int) ([]byte, error) {
	return utf32ToUTF8(src, dst, consumed)
}

func (UTF32) ToUTF16(src []rune, dst []uint16, consumed *int) ([]uint16, error) {
	return utf32ToUTF16(src, dst, consumed)
}

func (UTF32) ToUTF32(src []rune, dst []rune, consumed *int) ([]rune, error) {
	return identity(src, dst, consumed)
}
