// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import (
	"io"

	"github.com/novifinancial/serde-lua/serde"
)

// Maximum nesting of tables. The walk recurses once per level, so the bound
// also caps stack growth on pathological inputs.
const MaxContainerDepth = 500

var _ serde.Serializer = (*Serializer)(nil)

// Serializer implements serde.Serializer by rendering every value as a Lua
// expression. It owns the sink and the formatter for the duration of one
// top-level call.
type Serializer struct {
	writer    io.Writer
	formatter Formatter
	depth     int
}

// NewSerializer writes compact output to w.
func NewSerializer(w io.Writer) *Serializer {
	return NewSerializerWithFormatter(w, NewCompactFormatter())
}

// NewPrettySerializer writes indented output to w.
func NewPrettySerializer(w io.Writer) *Serializer {
	return NewSerializerWithFormatter(w, NewPrettyFormatter())
}

func NewSerializerWithFormatter(w io.Writer, formatter Formatter) *Serializer {
	return &Serializer{writer: w, formatter: formatter}
}

func (s *Serializer) SerializeBool(value bool) error {
	return sinkErr(s.formatter.WriteBool(s.writer, value))
}

func (s *Serializer) SerializeI8(value int8) error {
	return sinkErr(s.formatter.WriteI8(s.writer, value))
}

func (s *Serializer) SerializeI16(value int16) error {
	return sinkErr(s.formatter.WriteI16(s.writer, value))
}

func (s *Serializer) SerializeI32(value int32) error {
	return sinkErr(s.formatter.WriteI32(s.writer, value))
}

func (s *Serializer) SerializeI64(value int64) error {
	return sinkErr(s.formatter.WriteI64(s.writer, value))
}

func (s *Serializer) SerializeU8(value uint8) error {
	return sinkErr(s.formatter.WriteU8(s.writer, value))
}

func (s *Serializer) SerializeU16(value uint16) error {
	return sinkErr(s.formatter.WriteU16(s.writer, value))
}

func (s *Serializer) SerializeU32(value uint32) error {
	return sinkErr(s.formatter.WriteU32(s.writer, value))
}

func (s *Serializer) SerializeU64(value uint64) error {
	return sinkErr(s.formatter.WriteU64(s.writer, value))
}

func (s *Serializer) SerializeF32(value float32) error {
	return sinkErr(s.formatter.WriteF32(s.writer, value))
}

func (s *Serializer) SerializeF64(value float64) error {
	return sinkErr(s.formatter.WriteF64(s.writer, value))
}

// SerializeChar re-encodes the rune as UTF-8 and takes the string path.
func (s *Serializer) SerializeChar(value rune) error {
	return s.SerializeStr(string(value))
}

func (s *Serializer) SerializeStr(value string) error {
	if err := s.formatter.BeginString(s.writer); err != nil {
		return sinkErr(err)
	}
	if err := s.formatter.WriteStringContents(s.writer, value); err != nil {
		return sinkErr(err)
	}
	return sinkErr(s.formatter.EndString(s.writer))
}

// SerializeBytes renders a byte string as a sequence of small integers.
func (s *Serializer) SerializeBytes(value []byte) error {
	seq, err := s.SerializeSeq(len(value))
	if err != nil {
		return err
	}
	for _, b := range value {
		if err := seq.SerializeElement(byteValue(b)); err != nil {
			return err
		}
	}
	return seq.End()
}

func (s *Serializer) SerializeNone() error {
	return s.SerializeUnit()
}

func (s *Serializer) SerializeSome(value serde.Serializable) error {
	return value.Serialize(s)
}

func (s *Serializer) SerializeUnit() error {
	return sinkErr(s.formatter.WriteNil(s.writer))
}

func (s *Serializer) SerializeUnitStruct(name string) error {
	return s.SerializeUnit()
}

// SerializeUnitVariant writes the bare variant name, not a nested table.
func (s *Serializer) SerializeUnitVariant(name string, index uint32, variant string) error {
	return s.SerializeStr(variant)
}

func (s *Serializer) SerializeNewtypeStruct(name string, value serde.Serializable) error {
	return value.Serialize(s)
}

// SerializeNewtypeVariant renders {[variant]=payload}.
func (s *Serializer) SerializeNewtypeVariant(name string, index uint32, variant string, value serde.Serializable) error {
	if err := s.beginVariant(variant); err != nil {
		return err
	}
	if err := value.Serialize(s); err != nil {
		return err
	}
	return s.endVariant()
}

func (s *Serializer) SerializeSeq(length int) (serde.SeqSerializer, error) {
	c, err := s.openSeq(length)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Serializer) SerializeTuple(length int) (serde.SeqSerializer, error) {
	return s.SerializeSeq(length)
}

func (s *Serializer) SerializeTupleStruct(name string, length int) (serde.SeqSerializer, error) {
	return s.SerializeSeq(length)
}

func (s *Serializer) SerializeTupleVariant(name string, index uint32, variant string, length int) (serde.SeqSerializer, error) {
	if err := s.beginVariant(variant); err != nil {
		return nil, err
	}
	c, err := s.openSeq(length)
	if err != nil {
		return nil, err
	}
	return &variantCompound{Compound: *c}, nil
}

func (s *Serializer) SerializeMap(length int) (serde.MapSerializer, error) {
	c, err := s.openMap(length)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SerializeStruct treats field names as table keys.
func (s *Serializer) SerializeStruct(name string, length int) (serde.StructSerializer, error) {
	c, err := s.openMap(length)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Serializer) SerializeStructVariant(name string, index uint32, variant string, length int) (serde.StructSerializer, error) {
	if err := s.beginVariant(variant); err != nil {
		return nil, err
	}
	c, err := s.openMap(length)
	if err != nil {
		return nil, err
	}
	return &variantCompound{Compound: *c}, nil
}

// openSeq emits the opening brace and decides the cursor's starting state. A
// known-zero length closes the structure immediately; everything else,
// including unknown length, starts at First.
func (s *Serializer) openSeq(length int) (*Compound, error) {
	if err := s.enterContainer(); err != nil {
		return nil, err
	}
	if err := s.formatter.BeginArray(s.writer); err != nil {
		return nil, sinkErr(err)
	}
	if length == 0 {
		if err := s.formatter.EndArray(s.writer); err != nil {
			return nil, sinkErr(err)
		}
		s.leaveContainer()
		return &Compound{ser: s, state: stateEmpty}, nil
	}
	return &Compound{ser: s, state: stateFirst}, nil
}

func (s *Serializer) openMap(length int) (*Compound, error) {
	if err := s.enterContainer(); err != nil {
		return nil, err
	}
	if err := s.formatter.BeginObject(s.writer); err != nil {
		return nil, sinkErr(err)
	}
	if length == 0 {
		if err := s.formatter.EndObject(s.writer); err != nil {
			return nil, sinkErr(err)
		}
		s.leaveContainer()
		return &Compound{ser: s, state: stateEmpty, object: true}, nil
	}
	return &Compound{ser: s, state: stateFirst, object: true}, nil
}

// beginVariant opens the single-key wrapper table of a tagged variant and
// leaves the serializer positioned at its value.
func (s *Serializer) beginVariant(variant string) error {
	if err := s.enterContainer(); err != nil {
		return err
	}
	if err := s.formatter.BeginObject(s.writer); err != nil {
		return sinkErr(err)
	}
	if err := s.formatter.BeginObjectKey(s.writer, true); err != nil {
		return sinkErr(err)
	}
	if err := s.SerializeStr(variant); err != nil {
		return err
	}
	if err := s.formatter.EndObjectKey(s.writer); err != nil {
		return sinkErr(err)
	}
	return sinkErr(s.formatter.BeginObjectValue(s.writer))
}

func (s *Serializer) endVariant() error {
	if err := s.formatter.EndObjectValue(s.writer); err != nil {
		return sinkErr(err)
	}
	if err := s.formatter.EndObject(s.writer); err != nil {
		return sinkErr(err)
	}
	s.leaveContainer()
	return nil
}

func (s *Serializer) enterContainer() error {
	if s.depth >= MaxContainerDepth {
		return ErrMaxDepthExceeded
	}
	s.depth++
	return nil
}

func (s *Serializer) leaveContainer() {
	s.depth--
}

type byteValue uint8

func (b byteValue) Serialize(serializer serde.Serializer) error {
	return serializer.SerializeU8(uint8(b))
}
