package bom

import "encoding/binary"

var hostBigEndian = binary.NativeEndian.Uint16([]byte{0xAB, 0xCD}) == 0xABCD

// needsSwap reports whether bytes stored under e's layout differ from the
// host's native order.
func needsSwap(e *Entry) bool {
	return e.SwapBytes && e.BigEndian != hostBigEndian
}

// correctByteOrder swaps b in place, at e's code-unit granularity, when the
// stored order differs from native. It returns b for convenience; the buffer
// identity never changes. The swap is its own inverse, so the same call
// serves the decode and encode paths.
func correctByteOrder(b []byte, e *Entry) []byte {
	if !needsSwap(e) {
		return b
	}
	switch e.Width {
	case Width16:
		swap16(b)
	case Width32:
		swap32(b)
	}
	return b
}

func swap16(b []byte) {
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
}

func swap32(b []byte) {
	for i := 0; i+3 < len(b); i += 4 {
		b[i], b[i+3] = b[i+3], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
	}
}
