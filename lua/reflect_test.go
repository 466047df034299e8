// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-lua/lua"
	"github.com/novifinancial/serde-lua/serde"
)

func TestMarshal(t *testing.T) {
	type inner struct {
		Label string `lua:"label"`
	}
	type outer struct {
		Alpha  int    `lua:"alpha"`
		Plain  string
		hidden int
		Skip   bool `lua:"-"`
		Nested inner `lua:"nested"`
	}

	var nilPtr *int
	three := 3

	cases := []struct {
		name     string
		target   interface{}
		expected string
	}{
		{"nil", nil, "nil"},
		{"bool", true, "true"},
		{"int", -17, "-17"},
		{"uint8", uint8(9), "9"},
		{"float", 3.5, "3.5"},
		{"string", "hi", `"hi"`},
		{"byte slice", []byte{1, 2}, "{1,2}"},
		{"int slice", []int{1, 2, 3}, "{1,2,3}"},
		{"array", [2]string{"a", "b"}, `{"a","b"}`},
		{"empty slice", []int{}, "{}"},
		{"nil pointer", nilPtr, "nil"},
		{"pointer", &three, "3"},
		{"map sorts string keys", map[string]int{"b": 2, "a": 1, "c": 3}, `{["a"]=1,["b"]=2,["c"]=3}`},
		{"map sorts int keys", map[int]string{3: "c", 1: "a", 2: "b"}, `{[1]="a",[2]="b",[3]="c"}`},
		{"nested map", map[string][]int{"xs": {1, 2}}, `{["xs"]={1,2}}`},
		{
			"struct honors tags and field order",
			outer{Alpha: 1, Plain: "p", hidden: 5, Skip: true, Nested: inner{Label: "l"}},
			`{["alpha"]=1,["Plain"]="p",["nested"]={["label"]="l"}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := lua.Marshal(tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(out))
		})
	}
}

func TestMarshalUnsupportedKind(t *testing.T) {
	_, err := lua.Marshal(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported kind")
}

// A type that implements serde.Serializable is used as-is, even when it is
// reached through reflection.
type upper string

func (u upper) Serialize(serializer serde.Serializer) error {
	return serializer.SerializeUnitVariant("Upper", 0, string(u))
}

func TestMarshalSerializablePassthrough(t *testing.T) {
	out, err := lua.Marshal(upper("LOUD"))
	require.NoError(t, err)
	assert.Equal(t, `"LOUD"`, string(out))

	out, err = lua.Marshal([]interface{}{upper("A"), "b"})
	require.NoError(t, err)
	assert.Equal(t, `{"A","b"}`, string(out))
}

func TestMarshalPretty(t *testing.T) {
	out, err := lua.MarshalPretty(map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  [\"n\"] = 1\n}", string(out))
}

// Float keys come from the reflection driver too and must be rejected by the
// key serializer, not silently coerced.
func TestMarshalFloatKeyFails(t *testing.T) {
	_, err := lua.Marshal(map[float64]int{1.5: 1})
	require.ErrorIs(t, err, lua.ErrInvalidKeyKind)
}
