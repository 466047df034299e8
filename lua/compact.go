// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import (
	"io"
	"math"
	"strconv"
)

var _ Formatter = (*CompactFormatter)(nil)

// CompactFormatter writes a Lua table with no whitespace at all.
type CompactFormatter struct{}

func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

func (f *CompactFormatter) WriteNil(w io.Writer) error {
	return writeString(w, "nil")
}

func (f *CompactFormatter) WriteBool(w io.Writer, value bool) error {
	if value {
		return writeString(w, "true")
	}
	return writeString(w, "false")
}

func (f *CompactFormatter) WriteI8(w io.Writer, value int8) error {
	return writeInt(w, int64(value))
}

func (f *CompactFormatter) WriteI16(w io.Writer, value int16) error {
	return writeInt(w, int64(value))
}

func (f *CompactFormatter) WriteI32(w io.Writer, value int32) error {
	return writeInt(w, int64(value))
}

func (f *CompactFormatter) WriteI64(w io.Writer, value int64) error {
	return writeInt(w, value)
}

func (f *CompactFormatter) WriteU8(w io.Writer, value uint8) error {
	return writeUint(w, uint64(value))
}

func (f *CompactFormatter) WriteU16(w io.Writer, value uint16) error {
	return writeUint(w, uint64(value))
}

func (f *CompactFormatter) WriteU32(w io.Writer, value uint32) error {
	return writeUint(w, uint64(value))
}

func (f *CompactFormatter) WriteU64(w io.Writer, value uint64) error {
	return writeUint(w, value)
}

func (f *CompactFormatter) WriteF32(w io.Writer, value float32) error {
	return writeFloat(w, float64(value), 32)
}

func (f *CompactFormatter) WriteF64(w io.Writer, value float64) error {
	return writeFloat(w, value, 64)
}

func (f *CompactFormatter) BeginString(w io.Writer) error {
	return writeString(w, `"`)
}

func (f *CompactFormatter) WriteStringContents(w io.Writer, value string) error {
	return writeEscapedContents(w, value)
}

func (f *CompactFormatter) EndString(w io.Writer) error {
	return writeString(w, `"`)
}

func (f *CompactFormatter) BeginArray(w io.Writer) error {
	return writeString(w, "{")
}

func (f *CompactFormatter) EndArray(w io.Writer) error {
	return writeString(w, "}")
}

func (f *CompactFormatter) BeginArrayValue(w io.Writer, first bool) error {
	if first {
		return nil
	}
	return writeString(w, ",")
}

func (f *CompactFormatter) EndArrayValue(w io.Writer) error {
	return nil
}

func (f *CompactFormatter) BeginObject(w io.Writer) error {
	return writeString(w, "{")
}

func (f *CompactFormatter) EndObject(w io.Writer) error {
	return writeString(w, "}")
}

func (f *CompactFormatter) BeginObjectKey(w io.Writer, first bool) error {
	if !first {
		if err := writeString(w, ","); err != nil {
			return err
		}
	}
	return writeString(w, "[")
}

func (f *CompactFormatter) EndObjectKey(w io.Writer) error {
	return writeString(w, "]")
}

func (f *CompactFormatter) BeginObjectValue(w io.Writer) error {
	return writeString(w, "=")
}

func (f *CompactFormatter) EndObjectValue(w io.Writer) error {
	return nil
}

func writeInt(w io.Writer, value int64) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], value, 10))
	return err
}

func writeUint(w io.Writer, value uint64) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendUint(buf[:0], value, 10))
	return err
}

// writeFloat renders the shortest representation that round-trips at the
// given width. Renderings with no exponent and no fraction get a ".0" suffix
// so the literal stays a float in Lua 5.3+. Non-finite values have no Lua
// literal; they are written as arithmetic expressions that evaluate to the
// same value.
func writeFloat(w io.Writer, value float64, bits int) error {
	switch {
	case math.IsNaN(value):
		return writeString(w, "(0/0)")
	case math.IsInf(value, 1):
		return writeString(w, "(1/0)")
	case math.IsInf(value, -1):
		return writeString(w, "(-1/0)")
	}
	var buf [32]byte
	out := strconv.AppendFloat(buf[:0], value, 'g', -1, bits)
	if isIntegral(out) {
		out = append(out, '.', '0')
	}
	_, err := w.Write(out)
	return err
}

func isIntegral(num []byte) bool {
	for _, c := range num {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

// Short escapes for the control characters Lua names; zero means "use a
// decimal escape".
var shortEscape = [0x20]byte{
	0x07: 'a',
	0x08: 'b',
	0x09: 't',
	0x0A: 'n',
	0x0B: 'v',
	0x0C: 'f',
	0x0D: 'r',
}

// writeEscapedContents writes the body of a string literal without its
// surrounding quotes. Printable ASCII other than the quote and backslash is
// copied through in runs; bytes at or above 0x80 are copied verbatim (they
// are the tail of multi-byte sequences and need no escaping).
func writeEscapedContents(w io.Writer, value string) error {
	start := 0
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= 0x20 && c != '"' && c != '\\' && c != 0x7F {
			continue
		}
		if start < i {
			if err := writeString(w, value[start:i]); err != nil {
				return err
			}
		}
		if err := writeByteEscape(w, c); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(value) {
		return writeString(w, value[start:])
	}
	return nil
}

func writeByteEscape(w io.Writer, c byte) error {
	switch {
	case c == '"':
		return writeString(w, `\"`)
	case c == '\\':
		return writeString(w, `\\`)
	case c < 0x20 && shortEscape[c] != 0:
		_, err := w.Write([]byte{'\\', shortEscape[c]})
		return err
	default:
		// Always three digits so a following literal digit cannot extend
		// the escape.
		buf := [4]byte{'\\', '0' + c/100, '0' + c/10%10, '0' + c%10}
		_, err := w.Write(buf[:])
		return err
	}
}
