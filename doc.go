// Package textcodec detects Unicode byte-order marks and transcodes text
// between UTF-8, UTF-16, and UTF-32 byte streams.
//
// The library is organized into focused packages:
//
//	textcodec/           Root package with whole-input convenience helpers
//	├── bom/             Signature table, BOM sniffing, and the generic Codec
//	├── transcode/       Code-unit conversion between UTF-8/16/32
//	├── xtext/           golang.org/x/text-backed transcoding service
//	└── errors/          Structured error types
//
// # Quick Start
//
// Decode a byte stream of unknown encoding into a Go string:
//
//	text, enc, err := textcodec.DecodeString(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s payload: %s\n", enc, text)
//
// For streaming, pinned encodings, or non-8-bit internal representations,
// use bom.Codec directly:
//
//	c := bom.New[uint16](bom.UTF16)
//	units, err := c.Decode(data, nil, nil)
//
// The root helpers never modify their input; bom.Codec corrects byte order
// in place for speed.
package textcodec
