package bom

import "bytes"

// Entry describes one encoding in the signature table. Entries are immutable
// process-wide data; callers receive read-only views and must not modify the
// Signature slice.
type Entry struct {
	Signature   []byte
	ID          Encoding
	Width       Width
	AutoDetect  bool
	SwapBytes   bool
	BigEndian   bool
	Fallback    Encoding
	HasFallback bool
}

// table is indexed by Encoding and kept in definition order. FindSignature
// walks it back to front, so the 4-byte UTF-32 signatures are tested before
// the 2-byte UTF-16 signatures they share a leading prefix with.
var table = [...]Entry{
	Unknown:   {ID: Unknown, Width: Width8, AutoDetect: true, Fallback: UTF8, HasFallback: true},
	UTF8NoSig: {ID: UTF8NoSig, Width: Width8, AutoDetect: true, Fallback: UTF8, HasFallback: true},
	UTF8:      {ID: UTF8, Width: Width8, Signature: []byte{0xEF, 0xBB, 0xBF}},
	UTF16:     {ID: UTF16, Width: Width16, AutoDetect: true, Fallback: UTF16BE, HasFallback: true},
	UTF16BE:   {ID: UTF16BE, Width: Width16, Signature: []byte{0xFE, 0xFF}, SwapBytes: true, BigEndian: true},
	UTF16LE:   {ID: UTF16LE, Width: Width16, Signature: []byte{0xFF, 0xFE}, SwapBytes: true},
	UTF32:     {ID: UTF32, Width: Width32, AutoDetect: true, Fallback: UTF32BE, HasFallback: true},
	UTF32BE:   {ID: UTF32BE, Width: Width32, Signature: []byte{0x00, 0x00, 0xFE, 0xFF}, SwapBytes: true, BigEndian: true},
	UTF32LE:   {ID: UTF32LE, Width: Width32, Signature: []byte{0xFF, 0xFE, 0x00, 0x00}, SwapBytes: true},
}

// EntryFor returns the table entry for id, or nil for an invalid id.
func EntryFor(id Encoding) *Entry {
	if !id.Valid() {
		return nil
	}
	return &table[id]
}

// FindSignature scans the table for the longest signature prefixing b. It is
// pure: no codec state is read or written. Entries without a signature are
// never matched.
func FindSignature(b []byte) (*Entry, bool) {
	for i := len(table) - 1; i >= 0; i-- {
		e := &table[i]
		n := len(e.Signature)
		if n == 0 || n > len(b) {
			continue
		}
		if bytes.Equal(b[:n], e.Signature) {
			return e, true
		}
	}
	return nil, false
}
