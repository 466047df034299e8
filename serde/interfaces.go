// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package serde

// LengthUnknown is passed to SerializeSeq or SerializeMap when the number of
// elements is not known up front (e.g. when draining an iterator).
const LengthUnknown = -1

// Serializable is implemented by values that know how to describe their own
// shape to a Serializer.
type Serializable interface {
	Serialize(serializer Serializer) error
}

// Serializer receives one call per native kind. Scalars are written
// immediately; compound kinds hand back a cursor that the caller feeds one
// element at a time and then closes with End.
type Serializer interface {
	SerializeBool(value bool) error

	SerializeI8(value int8) error

	SerializeI16(value int16) error

	SerializeI32(value int32) error

	SerializeI64(value int64) error

	SerializeU8(value uint8) error

	SerializeU16(value uint16) error

	SerializeU32(value uint32) error

	SerializeU64(value uint64) error

	SerializeF32(value float32) error

	SerializeF64(value float64) error

	SerializeChar(value rune) error

	SerializeStr(value string) error

	SerializeBytes(value []byte) error

	SerializeNone() error

	SerializeSome(value Serializable) error

	SerializeUnit() error

	SerializeUnitStruct(name string) error

	SerializeUnitVariant(name string, index uint32, variant string) error

	SerializeNewtypeStruct(name string, value Serializable) error

	SerializeNewtypeVariant(name string, index uint32, variant string, value Serializable) error

	// SerializeSeq opens a sequence. Pass LengthUnknown when the element
	// count is not known in advance.
	SerializeSeq(length int) (SeqSerializer, error)

	SerializeTuple(length int) (SeqSerializer, error)

	SerializeTupleStruct(name string, length int) (SeqSerializer, error)

	SerializeTupleVariant(name string, index uint32, variant string, length int) (SeqSerializer, error)

	// SerializeMap opens a mapping. Pass LengthUnknown when the entry count
	// is not known in advance.
	SerializeMap(length int) (MapSerializer, error)

	SerializeStruct(name string, length int) (StructSerializer, error)

	SerializeStructVariant(name string, index uint32, variant string, length int) (StructSerializer, error)
}

// SeqSerializer is the cursor for sequences, tuples, tuple structs and tuple
// variants. While it is live it holds the only write access to its parent
// Serializer.
type SeqSerializer interface {
	SerializeElement(value Serializable) error

	End() error
}

// MapSerializer is the cursor for mappings. Each entry is either one
// SerializeEntry call or a SerializeKey call followed by a SerializeValue
// call.
type MapSerializer interface {
	SerializeKey(key Serializable) error

	SerializeValue(value Serializable) error

	SerializeEntry(key Serializable, value Serializable) error

	End() error
}

// StructSerializer is the cursor for structs and struct variants. Field names
// become mapping keys.
type StructSerializer interface {
	SerializeField(name string, value Serializable) error

	End() error
}
