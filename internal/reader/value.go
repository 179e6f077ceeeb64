package reader

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/vdfkit/internal/format"
)

// String decodes a TypeString value: the bytes up to the next nul, with the
// nul consumed. Invalid UTF-8 is replaced with U+FFFD rather than rejected.
func (r *Reader) String() (string, error) {
	start := r.cur.Offset()
	raw, ok := r.cur.Until(format.Terminator)
	if !ok {
		return "", fmt.Errorf("string at offset %d: %w (no terminator)", start, format.ErrTruncated)
	}
	return DecodeText(raw), nil
}

// Uint32 decodes a TypeInt32 value as an unsigned little-endian integer. Any
// bit pattern is accepted.
func (r *Reader) Uint32() (uint32, error) {
	start := r.cur.Offset()
	raw, ok := r.cur.Take(format.Int32Size)
	if !ok {
		return 0, fmt.Errorf("int32 at offset %d: %w (have %d, need %d)",
			start, format.ErrTruncated, r.cur.Offset()-start, format.Int32Size)
	}
	return binary.LittleEndian.Uint32(raw), nil
}

// DecodeText converts raw string bytes into UTF-8, substituting U+FFFD for
// every byte that is not part of a valid sequence.
func DecodeText(raw []byte) string {
	// Fast path: Steam writes UTF-8, so this almost always holds.
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return string(decoded)
}
