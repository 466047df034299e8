// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import (
	"reflect"
	"sort"
	"strings"

	"github.com/novifinancial/serde-lua/serde"
)

// Value adapts an arbitrary Go value to the serde.Serializable contract.
// Values that already implement it are used as-is. Struct fields can be
// renamed or skipped with the `lua` tag, as in encoding/json.
func Value(v interface{}) serde.Serializable {
	if s, ok := v.(serde.Serializable); ok {
		return s
	}
	return reflectValue{rv: reflect.ValueOf(v)}
}

type reflectValue struct {
	rv reflect.Value
}

func (v reflectValue) Serialize(serializer serde.Serializer) error {
	return serializeReflect(serializer, v.rv)
}

func serializeReflect(ser serde.Serializer, rv reflect.Value) error {
	if !rv.IsValid() {
		return ser.SerializeNone()
	}
	if rv.CanInterface() {
		if s, ok := rv.Interface().(serde.Serializable); ok {
			return s.Serialize(ser)
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return ser.SerializeBool(rv.Bool())
	case reflect.Int8:
		return ser.SerializeI8(int8(rv.Int()))
	case reflect.Int16:
		return ser.SerializeI16(int16(rv.Int()))
	case reflect.Int32:
		return ser.SerializeI32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return ser.SerializeI64(rv.Int())
	case reflect.Uint8:
		return ser.SerializeU8(uint8(rv.Uint()))
	case reflect.Uint16:
		return ser.SerializeU16(uint16(rv.Uint()))
	case reflect.Uint32:
		return ser.SerializeU32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return ser.SerializeU64(rv.Uint())
	case reflect.Float32:
		return ser.SerializeF32(float32(rv.Float()))
	case reflect.Float64:
		return ser.SerializeF64(rv.Float())
	case reflect.String:
		return ser.SerializeStr(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return ser.SerializeBytes(rv.Bytes())
		}
		return serializeSequence(ser, rv)
	case reflect.Array:
		return serializeSequence(ser, rv)
	case reflect.Map:
		return serializeMapValue(ser, rv)
	case reflect.Struct:
		return serializeStructValue(ser, rv)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ser.SerializeNone()
		}
		return serializeReflect(ser, rv.Elem())
	default:
		return CustomError("unsupported kind " + rv.Kind().String())
	}
}

func serializeSequence(ser serde.Serializer, rv reflect.Value) error {
	seq, err := ser.SerializeSeq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := seq.SerializeElement(reflectValue{rv: rv.Index(i)}); err != nil {
			return err
		}
	}
	return seq.End()
}

// serializeMapValue sorts keys before writing. Go map iteration order is
// randomized; emitting entries in key order keeps the output reproducible.
func serializeMapValue(ser serde.Serializer, rv reflect.Value) error {
	m, err := ser.SerializeMap(rv.Len())
	if err != nil {
		return err
	}
	keys := rv.MapKeys()
	sortKeys(keys)
	for _, key := range keys {
		entry := reflectValue{rv: rv.MapIndex(key)}
		if err := m.SerializeEntry(reflectValue{rv: key}, entry); err != nil {
			return err
		}
	}
	return m.End()
}

func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}
	switch keys[0].Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	}
}

func serializeStructValue(ser serde.Serializer, rv reflect.Value) error {
	t := rv.Type()
	type field struct {
		name  string
		index int
	}
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("lua"); ok {
			tag = strings.SplitN(tag, ",", 2)[0]
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, field{name: name, index: i})
	}
	st, err := ser.SerializeStruct(t.Name(), len(fields))
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := st.SerializeField(f.name, reflectValue{rv: rv.Field(f.index)}); err != nil {
			return err
		}
	}
	return st.End()
}
