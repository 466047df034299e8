// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import "github.com/novifinancial/serde-lua/serde"

var _ serde.Serializer = (*mapKeySerializer)(nil)

// mapKeySerializer is the restricted dispatch surface used while a table key
// is being written. Numbers, chars, strings and unit-variant names pass
// through to the parent serializer; every other kind fails before a single
// key byte reaches the sink.
type mapKeySerializer struct {
	ser *Serializer
}

func (m *mapKeySerializer) SerializeBool(value bool) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeI8(value int8) error {
	return m.ser.SerializeI8(value)
}

func (m *mapKeySerializer) SerializeI16(value int16) error {
	return m.ser.SerializeI16(value)
}

func (m *mapKeySerializer) SerializeI32(value int32) error {
	return m.ser.SerializeI32(value)
}

func (m *mapKeySerializer) SerializeI64(value int64) error {
	return m.ser.SerializeI64(value)
}

func (m *mapKeySerializer) SerializeU8(value uint8) error {
	return m.ser.SerializeU8(value)
}

func (m *mapKeySerializer) SerializeU16(value uint16) error {
	return m.ser.SerializeU16(value)
}

func (m *mapKeySerializer) SerializeU32(value uint32) error {
	return m.ser.SerializeU32(value)
}

func (m *mapKeySerializer) SerializeU64(value uint64) error {
	return m.ser.SerializeU64(value)
}

func (m *mapKeySerializer) SerializeF32(value float32) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeF64(value float64) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeChar(value rune) error {
	return m.ser.SerializeChar(value)
}

func (m *mapKeySerializer) SerializeStr(value string) error {
	return m.ser.SerializeStr(value)
}

func (m *mapKeySerializer) SerializeBytes(value []byte) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeNone() error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeSome(value serde.Serializable) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeUnit() error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeUnitStruct(name string) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeUnitVariant(name string, index uint32, variant string) error {
	return m.ser.SerializeStr(variant)
}

// SerializeNewtypeStruct unwraps the newtype and re-dispatches on the inner
// value, still under key restrictions.
func (m *mapKeySerializer) SerializeNewtypeStruct(name string, value serde.Serializable) error {
	return value.Serialize(m)
}

func (m *mapKeySerializer) SerializeNewtypeVariant(name string, index uint32, variant string, value serde.Serializable) error {
	return ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeSeq(length int) (serde.SeqSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeTuple(length int) (serde.SeqSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeTupleStruct(name string, length int) (serde.SeqSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeTupleVariant(name string, index uint32, variant string, length int) (serde.SeqSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeMap(length int) (serde.MapSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeStruct(name string, length int) (serde.StructSerializer, error) {
	return nil, ErrInvalidKeyKind
}

func (m *mapKeySerializer) SerializeStructVariant(name string, index uint32, variant string, length int) (serde.StructSerializer, error) {
	return nil, ErrInvalidKeyKind
}
