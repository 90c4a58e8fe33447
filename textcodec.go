package textcodec

import (
	"slices"

	"github.com/wippyai/text-codec/bom"
)

// Detect sniffs b for a byte-order mark and returns the encoding it names
// plus the signature's byte length. Without a recognizable signature it
// returns bom.Unknown and zero.
func Detect(b []byte) (bom.Encoding, int) {
	e, found := bom.FindSignature(b)
	if !found {
		return bom.Unknown, 0
	}
	return e.ID, len(e.Signature)
}

// DecodeString auto-detects b's encoding, strips any signature, and decodes
// the whole input to a string. It also reports the resolved encoding. The
// input is never modified.
func DecodeString(b []byte) (string, bom.Encoding, error) {
	// The codec corrects byte order in place; shield the caller's bytes
	// when a multi-byte-unit encoding was detected.
	if e, found := bom.FindSignature(b); found && e.Width != bom.Width8 {
		b = slices.Clone(b)
	}

	c := bom.New[byte](bom.Unknown)
	out, err := c.Decode(b, nil, nil)
	if err != nil {
		return "", c.Encoding(), err
	}
	return string(out), c.Encoding(), nil
}

// EncodeString renders s in the byte layout of id, prefixed with id's
// signature when withBOM is set. The id must be explicit; auto-detecting ids
// fail with a non_explicit_encoding error.
func EncodeString(s string, id bom.Encoding, withBOM bool) ([]byte, error) {
	c := bom.New[byte](id)
	out, err := c.Encode([]byte(s), nil)
	if err != nil {
		return nil, err
	}
	if withBOM {
		out = append(slices.Clone(c.Signature()), out...)
	}
	return out, nil
}
