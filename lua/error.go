// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import "github.com/pkg/errors"

// ErrInvalidKeyKind is returned when a mapping key is not a number, char,
// string or unit-variant name. Such an entry cannot be indexed in a Lua
// table, so serialization aborts rather than coerce or drop the key.
var ErrInvalidKeyKind = errors.New("lua: table key must be a string or a number")

// ErrMaxDepthExceeded is returned when nesting goes past MaxContainerDepth.
var ErrMaxDepthExceeded = errors.New("lua: exceeded maximum container depth")

// SinkError wraps a write failure of the underlying sink. Sink failures are
// always fatal; a partially written stream cannot be retried.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return "lua: sink write failed: " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// CustomError reports a failure raised by a value's own Serialize
// implementation and is propagated verbatim.
type CustomError string

func (e CustomError) Error() string {
	return "lua: " + string(e)
}

// sinkErr classifies an error coming back from a Formatter call. Formatter
// methods only fail when the sink does, so everything is wrapped as a
// SinkError unless it already is one.
func sinkErr(err error) error {
	if err == nil {
		return nil
	}
	var sink *SinkError
	if errors.As(err, &sink) {
		return err
	}
	return &SinkError{Err: err}
}
