package bom

import (
	"encoding/binary"
	"unsafe"
)

// Reinterpretation helpers between byte buffers and wider code units. Buffers
// are viewed in place when aligned; the rare unaligned buffer is copied out
// (or in) at native order instead. Trailing bytes short of a full unit are
// excluded from the view.

func viewUTF16(b []byte) []uint16 {
	n := len(b) / 2
	if n == 0 {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(uint16(0)) == 0 {
		return unsafe.Slice((*uint16)(p), n)
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return out
}

func viewUTF32(b []byte) []rune {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(rune(0)) == 0 {
		return unsafe.Slice((*rune)(p), n)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return out
}

func bytesOfUTF16(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u)*2)
}

func bytesOfUTF32(u []rune) []byte {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u)*4)
}

// boundedUTF16 views dst as a uint16 destination for the transcoding
// service. direct is false when dst cannot back the view and the result must
// be copied in afterwards.
func boundedUTF16(dst []byte) (d []uint16, direct bool) {
	if dst == nil {
		return nil, true
	}
	n := len(dst) / 2
	if n == 0 {
		return []uint16{}, true
	}
	p := unsafe.Pointer(unsafe.SliceData(dst))
	if uintptr(p)%unsafe.Alignof(uint16(0)) == 0 {
		return unsafe.Slice((*uint16)(p), n), true
	}
	return nil, false
}

func boundedUTF32(dst []byte) (d []rune, direct bool) {
	if dst == nil {
		return nil, true
	}
	n := len(dst) / 4
	if n == 0 {
		return []rune{}, true
	}
	p := unsafe.Pointer(unsafe.SliceData(dst))
	if uintptr(p)%unsafe.Alignof(rune(0)) == 0 {
		return unsafe.Slice((*rune)(p), n), true
	}
	return nil, false
}

// sameBacking reports whether two slices start at the same storage.
func sameBacking[A, B any](a []A, b []B) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.Pointer(unsafe.SliceData(a)) == unsafe.Pointer(unsafe.SliceData(b))
}
