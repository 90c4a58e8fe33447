package textcodec

import (
	"bytes"
	stderrors "errors"
	"slices"
	"testing"

	"github.com/wippyai/text-codec/bom"
	"github.com/wippyai/text-codec/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		want   bom.Encoding
		sigLen int
	}{
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, bom.UTF8, 3},
		{"utf16be", []byte{0xFE, 0xFF, 0x00, 'h'}, bom.UTF16BE, 2},
		{"utf32le", []byte{0xFF, 0xFE, 0x00, 0x00}, bom.UTF32LE, 4},
		{"none", []byte("hi"), bom.Unknown, 0},
		{"empty", nil, bom.Unknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, n := Detect(tt.input)
			if enc != tt.want || n != tt.sigLen {
				t.Errorf("Detect = %s, %d; want %s, %d", enc, n, tt.want, tt.sigLen)
			}
		})
	}
}

func TestDecodeString(t *testing.T) {
	const text = "abcあいう"

	utf16le, err := EncodeString(text, bom.UTF16LE, true)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	pristine := slices.Clone(utf16le)

	got, enc, err := DecodeString(utf16le)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if got != text || enc != bom.UTF16LE {
		t.Errorf("DecodeString = %q, %s; want %q, utf16le", got, enc, text)
	}
	if !bytes.Equal(utf16le, pristine) {
		t.Error("DecodeString modified its input")
	}

	// Unsigned input falls back to utf8.
	got, enc, err = DecodeString([]byte(text))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if got != text || enc != bom.UTF8 {
		t.Errorf("DecodeString = %q, %s; want %q, utf8", got, enc, text)
	}
}

func TestEncodeString(t *testing.T) {
	out, err := EncodeString("A", bom.UTF16BE, true)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if want := []byte{0xFE, 0xFF, 0x00, 'A'}; !bytes.Equal(out, want) {
		t.Errorf("EncodeString = % x, want % x", out, want)
	}

	out, err = EncodeString("A", bom.UTF16BE, false)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if want := []byte{0x00, 'A'}; !bytes.Equal(out, want) {
		t.Errorf("EncodeString = % x, want % x", out, want)
	}

	_, err = EncodeString("A", bom.UTF16, false)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindNonExplicitEncoding}) {
		t.Errorf("EncodeString(utf16) error = %v, want non_explicit_encoding", err)
	}
}

func TestRoundTrip_AllExplicit(t *testing.T) {
	const text = "héllo wörld \U0001F600"
	for _, id := range []bom.Encoding{bom.UTF8, bom.UTF16BE, bom.UTF16LE, bom.UTF32BE, bom.UTF32LE} {
		for _, withBOM := range []bool{true, false} {
			encoded, err := EncodeString(text, id, withBOM)
			if err != nil {
				t.Fatalf("EncodeString(%s): %v", id, err)
			}
			if !withBOM && id != bom.UTF8 {
				// Unsigned non-utf8 payloads cannot auto-detect;
				// decode them pinned.
				c := bom.New[byte](id)
				out, err := c.Decode(slices.Clone(encoded), nil, nil)
				if err != nil {
					t.Fatalf("pinned decode(%s): %v", id, err)
				}
				if string(out) != text {
					t.Errorf("pinned decode(%s) = %q", id, string(out))
				}
				continue
			}
			got, _, err := DecodeString(encoded)
			if err != nil {
				t.Fatalf("DecodeString(%s, bom=%v): %v", id, withBOM, err)
			}
			if got != text {
				t.Errorf("round trip(%s, bom=%v) = %q, want %q", id, withBOM, got, text)
			}
		}
	}
}
