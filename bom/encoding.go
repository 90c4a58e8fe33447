package bom

import (
	"strings"

	"github.com/wippyai/text-codec/errors"
)

// Encoding identifies an external text encoding, concrete or auto-detecting.
type Encoding int

const (
	// Unknown auto-detects any signed encoding and falls back to UTF8.
	Unknown Encoding = iota
	// UTF8NoSig is explicit no-signature UTF-8; detection behaves exactly
	// like Unknown.
	UTF8NoSig
	// UTF8 is UTF-8 with the EF BB BF signature recognized on decode.
	UTF8
	// UTF16 is endian-unspecified UTF-16, resolved by signature or the
	// UTF16BE fallback.
	UTF16
	UTF16BE
	UTF16LE
	// UTF32 is endian-unspecified UTF-32, resolved by signature or the
	// UTF32BE fallback.
	UTF32
	UTF32BE
	UTF32LE
)

var encodingNames = [...]string{
	Unknown:   "unknown",
	UTF8NoSig: "utf8-nosig",
	UTF8:      "utf8",
	UTF16:     "utf16",
	UTF16BE:   "utf16be",
	UTF16LE:   "utf16le",
	UTF32:     "utf32",
	UTF32BE:   "utf32be",
	UTF32LE:   "utf32le",
}

func (e Encoding) String() string {
	if !e.Valid() {
		return "invalid"
	}
	return encodingNames[e]
}

// Valid reports whether e is one of the nine defined encodings.
func (e Encoding) Valid() bool {
	return e >= Unknown && int(e) < len(encodingNames)
}

// Parse resolves a human-entered encoding name. It is lenient about case,
// dashes, and underscores: "UTF-16-LE", "utf16le", and "utf_16_le" all name
// UTF16LE. "auto" is accepted for Unknown.
func Parse(name string) (Encoding, error) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")

	switch key {
	case "unknown", "auto", "":
		return Unknown, nil
	case "utf8nosig", "utf8nobom":
		return UTF8NoSig, nil
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	case "utf16be":
		return UTF16BE, nil
	case "utf16le":
		return UTF16LE, nil
	case "utf32":
		return UTF32, nil
	case "utf32be":
		return UTF32BE, nil
	case "utf32le":
		return UTF32LE, nil
	}
	return Unknown, errors.UnknownEncoding(name)
}

// Width is the byte size of one external code unit.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)
