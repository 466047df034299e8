// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

// Package lua serializes values as Lua table literals. Values that implement
// serde.Serializable describe their own shape; anything else can go through
// the reflection-based Marshal helpers. Output is written in a single pass
// with no lookahead, either compact or indented.
package lua

import (
	"bytes"
	"io"

	"github.com/novifinancial/serde-lua/serde"
)

// ToWriter writes value to w in compact form.
func ToWriter(w io.Writer, value serde.Serializable) error {
	return value.Serialize(NewSerializer(w))
}

// ToWriterPretty writes value to w with newlines and indentation.
func ToWriterPretty(w io.Writer, value serde.Serializable) error {
	return value.Serialize(NewPrettySerializer(w))
}

// ToBytes renders value in compact form. On error the returned slice is nil;
// bytes already flushed to an external sink are not rolled back, but here the
// buffer is discarded with the error.
func ToBytes(value serde.Serializable) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(128)
	if err := ToWriter(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToBytesPretty renders value with newlines and indentation.
func ToBytesPretty(value serde.Serializable) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(128)
	if err := ToWriterPretty(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToString renders value in compact form as a string.
func ToString(value serde.Serializable) (string, error) {
	out, err := ToBytes(value)
	return string(out), err
}

// ToStringPretty renders value with newlines and indentation as a string.
func ToStringPretty(value serde.Serializable) (string, error) {
	out, err := ToBytesPretty(value)
	return string(out), err
}

// Marshal renders an arbitrary Go value in compact form through the
// reflection driver.
func Marshal(v interface{}) ([]byte, error) {
	return ToBytes(Value(v))
}

// MarshalPretty renders an arbitrary Go value with newlines and indentation.
func MarshalPretty(v interface{}) ([]byte, error) {
	return ToBytesPretty(Value(v))
}
