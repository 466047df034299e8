// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import "io"

var _ Formatter = (*PrettyFormatter)(nil)

// PrettyFormatter extends CompactFormatter with newlines and indentation.
// Scalar literals and escaping are inherited; only the structural tokens
// change, so stripping whitespace from pretty output yields the compact form.
type PrettyFormatter struct {
	CompactFormatter

	indent string
	depth  int

	// hasValue reports whether anything was written inside the current
	// structure; an empty structure closes with no interior whitespace.
	hasValue bool
}

func NewPrettyFormatter() *PrettyFormatter {
	return NewPrettyFormatterIndent("  ")
}

func NewPrettyFormatterIndent(indent string) *PrettyFormatter {
	return &PrettyFormatter{indent: indent}
}

func (f *PrettyFormatter) BeginArray(w io.Writer) error {
	f.depth++
	f.hasValue = false
	return writeString(w, "{")
}

func (f *PrettyFormatter) EndArray(w io.Writer) error {
	f.depth--
	if f.hasValue {
		if err := f.writeNewline(w); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func (f *PrettyFormatter) BeginArrayValue(w io.Writer, first bool) error {
	if !first {
		if err := writeString(w, ","); err != nil {
			return err
		}
	}
	return f.writeNewline(w)
}

func (f *PrettyFormatter) EndArrayValue(w io.Writer) error {
	f.hasValue = true
	return nil
}

func (f *PrettyFormatter) BeginObject(w io.Writer) error {
	f.depth++
	f.hasValue = false
	return writeString(w, "{")
}

func (f *PrettyFormatter) EndObject(w io.Writer) error {
	f.depth--
	if f.hasValue {
		if err := f.writeNewline(w); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func (f *PrettyFormatter) BeginObjectKey(w io.Writer, first bool) error {
	if !first {
		if err := writeString(w, ","); err != nil {
			return err
		}
	}
	if err := f.writeNewline(w); err != nil {
		return err
	}
	return writeString(w, "[")
}

func (f *PrettyFormatter) BeginObjectValue(w io.Writer) error {
	return writeString(w, " = ")
}

func (f *PrettyFormatter) EndObjectValue(w io.Writer) error {
	f.hasValue = true
	return nil
}

func (f *PrettyFormatter) writeNewline(w io.Writer) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	for i := 0; i < f.depth; i++ {
		if err := writeString(w, f.indent); err != nil {
			return err
		}
	}
	return nil
}
