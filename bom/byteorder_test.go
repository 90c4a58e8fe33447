package bom

import (
	"bytes"
	"slices"
	"testing"
)

func TestSwap16(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04}
	swap16(b)
	if !bytes.Equal(b, []byte{0x02, 0x01, 0x04, 0x03}) {
		t.Errorf("swap16 = % x", b)
	}
}

func TestSwap32(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	swap32(b)
	if !bytes.Equal(b, []byte{0x04, 0x03, 0x02, 0x01, 0x08, 0x07, 0x06, 0x05}) {
		t.Errorf("swap32 = % x", b)
	}
}

func TestCorrectByteOrder_Involution(t *testing.T) {
	// Applying correction twice restores the original bytes, whatever the
	// host order.
	for _, id := range []Encoding{UTF16BE, UTF16LE, UTF32BE, UTF32LE} {
		t.Run(id.String(), func(t *testing.T) {
			e := EntryFor(id)
			original := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}
			b := slices.Clone(original)

			out := correctByteOrder(b, e)
			if &out[0] != &b[0] {
				t.Fatal("correctByteOrder changed buffer identity")
			}
			correctByteOrder(b, e)
			if !bytes.Equal(b, original) {
				t.Errorf("double correction = % x, want % x", b, original)
			}
		})
	}
}

func TestCorrectByteOrder_SingleByteNeverSwaps(t *testing.T) {
	original := []byte{0x01, 0x02, 0x03}
	b := slices.Clone(original)
	correctByteOrder(b, EntryFor(UTF8))
	if !bytes.Equal(b, original) {
		t.Errorf("utf8 correction modified bytes: % x", b)
	}
}

func TestCorrectByteOrder_ExactlyOneEndiannessSwaps(t *testing.T) {
	// For each width, the host matches exactly one of the two byte orders;
	// the other must swap.
	pairs := [][2]Encoding{{UTF16BE, UTF16LE}, {UTF32BE, UTF32LE}}
	for _, pair := range pairs {
		a := needsSwap(EntryFor(pair[0]))
		b := needsSwap(EntryFor(pair[1]))
		if a == b {
			t.Errorf("%s and %s both report needsSwap=%v", pair[0], pair[1], a)
		}
	}
}
