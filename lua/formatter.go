// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import "io"

// Formatter emits the structural tokens and scalar literals of the Lua table
// syntax. CompactFormatter writes the minimal form; PrettyFormatter adds
// newlines and indentation. Implementations may keep state across begin/end
// calls (PrettyFormatter tracks nesting depth) but must be back at depth zero
// when the top-level value is finished.
type Formatter interface {
	WriteNil(w io.Writer) error

	WriteBool(w io.Writer, value bool) error

	WriteI8(w io.Writer, value int8) error

	WriteI16(w io.Writer, value int16) error

	WriteI32(w io.Writer, value int32) error

	WriteI64(w io.Writer, value int64) error

	WriteU8(w io.Writer, value uint8) error

	WriteU16(w io.Writer, value uint16) error

	WriteU32(w io.Writer, value uint32) error

	WriteU64(w io.Writer, value uint64) error

	WriteF32(w io.Writer, value float32) error

	WriteF64(w io.Writer, value float64) error

	// BeginString and EndString write the surrounding quotes. The escaped
	// body goes through WriteStringContents so key writers can reuse it
	// without re-emitting delimiters.
	BeginString(w io.Writer) error

	WriteStringContents(w io.Writer, value string) error

	EndString(w io.Writer) error

	BeginArray(w io.Writer) error

	EndArray(w io.Writer) error

	// BeginArrayValue runs before every element; the separator is written
	// here when first is false.
	BeginArrayValue(w io.Writer, first bool) error

	EndArrayValue(w io.Writer) error

	BeginObject(w io.Writer) error

	EndObject(w io.Writer) error

	BeginObjectKey(w io.Writer, first bool) error

	EndObjectKey(w io.Writer) error

	BeginObjectValue(w io.Writer) error

	EndObjectValue(w io.Writer) error
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
