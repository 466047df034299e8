// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua

import "github.com/novifinancial/serde-lua/serde"

var (
	_ serde.SeqSerializer    = (*Compound)(nil)
	_ serde.MapSerializer    = (*Compound)(nil)
	_ serde.StructSerializer = (*Compound)(nil)
	_ serde.SeqSerializer    = (*variantCompound)(nil)
	_ serde.StructSerializer = (*variantCompound)(nil)
)

type state int

const (
	// stateEmpty: the structure closed at creation time; End writes nothing.
	stateEmpty state = iota
	// stateFirst: the next element gets no leading separator.
	stateFirst
	// stateRest: every further element gets a leading separator.
	stateRest
)

// Compound is the cursor for one open table. It holds the only write access
// to its parent Serializer until End is called; interleaving two live
// cursors on the same Serializer corrupts separator state.
//
// The same type serves sequences and mappings; object selects the closing
// token. A structure opened with unknown length that receives no elements
// ends in First, not Empty, and still emits its closing brace on End.
type Compound struct {
	ser    *Serializer
	state  state
	object bool
}

func (c *Compound) SerializeElement(value serde.Serializable) error {
	first := c.state == stateFirst
	if err := c.ser.formatter.BeginArrayValue(c.ser.writer, first); err != nil {
		return sinkErr(err)
	}
	c.state = stateRest
	if err := value.Serialize(c.ser); err != nil {
		return err
	}
	return sinkErr(c.ser.formatter.EndArrayValue(c.ser.writer))
}

// SerializeKey advances the separator state; the matching SerializeValue
// call does not touch it. Keys go through the restricted key serializer.
func (c *Compound) SerializeKey(key serde.Serializable) error {
	first := c.state == stateFirst
	if err := c.ser.formatter.BeginObjectKey(c.ser.writer, first); err != nil {
		return sinkErr(err)
	}
	c.state = stateRest
	if err := key.Serialize(&mapKeySerializer{ser: c.ser}); err != nil {
		return err
	}
	return sinkErr(c.ser.formatter.EndObjectKey(c.ser.writer))
}

func (c *Compound) SerializeValue(value serde.Serializable) error {
	if err := c.ser.formatter.BeginObjectValue(c.ser.writer); err != nil {
		return sinkErr(err)
	}
	if err := value.Serialize(c.ser); err != nil {
		return err
	}
	return sinkErr(c.ser.formatter.EndObjectValue(c.ser.writer))
}

func (c *Compound) SerializeEntry(key serde.Serializable, value serde.Serializable) error {
	if err := c.SerializeKey(key); err != nil {
		return err
	}
	return c.SerializeValue(value)
}

func (c *Compound) SerializeField(name string, value serde.Serializable) error {
	return c.SerializeEntry(stringValue(name), value)
}

func (c *Compound) End() error {
	if c.state == stateEmpty {
		return nil
	}
	var err error
	if c.object {
		err = c.ser.formatter.EndObject(c.ser.writer)
	} else {
		err = c.ser.formatter.EndArray(c.ser.writer)
	}
	if err != nil {
		return sinkErr(err)
	}
	c.ser.leaveContainer()
	return nil
}

// variantCompound is the cursor for tuple and struct variants; after the
// payload table closes it also closes the enclosing single-key wrapper.
type variantCompound struct {
	Compound
}

func (c *variantCompound) End() error {
	if err := c.Compound.End(); err != nil {
		return err
	}
	return c.ser.endVariant()
}

type stringValue string

func (s stringValue) Serialize(serializer serde.Serializer) error {
	return serializer.SerializeStr(string(s))
}
