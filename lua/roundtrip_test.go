// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"

	"github.com/novifinancial/serde-lua/lua"
)

// The emitted text must be a valid Lua expression; each case is executed in a
// real Lua VM and the resulting value compared against the input.
func TestRoundTripThroughLuaVM(t *testing.T) {
	doc := map[string]interface{}{
		"name":  "escape \"me\"\nplease",
		"count": 42,
		"ratio": 0.125,
		"big":   1e21,
		"inf":   math.Inf(1),
		"ok":    true,
		"tags":  []interface{}{"alpha", "beta"},
		"nested": map[string]interface{}{
			"empty": []interface{}{},
			"deep":  []interface{}{[]interface{}{1, 2}, "x"},
		},
	}

	modes := map[string]func(interface{}) ([]byte, error){
		"compact": lua.Marshal,
		"pretty":  lua.MarshalPretty,
	}

	for name, marshal := range modes {
		t.Run(name, func(t *testing.T) {
			out, err := marshal(doc)
			require.NoError(t, err)

			L := glua.NewState()
			defer L.Close()
			require.NoError(t, L.DoString("value = "+string(out)))

			assertLuaValue(t, L.GetGlobal("value"), doc)
		})
	}
}

func TestRoundTripIntegerKeys(t *testing.T) {
	out, err := lua.Marshal(map[int]string{1: "one", 2: "two"})
	require.NoError(t, err)

	L := glua.NewState()
	defer L.Close()
	require.NoError(t, L.DoString("value = "+string(out)))

	table, ok := L.GetGlobal("value").(*glua.LTable)
	require.True(t, ok)
	assert.Equal(t, glua.LString("one"), table.RawGetInt(1))
	assert.Equal(t, glua.LString("two"), table.RawGetInt(2))
}

func TestRoundTripNonFiniteFloats(t *testing.T) {
	out, err := lua.Marshal([]interface{}{math.Inf(1), math.Inf(-1), math.NaN()})
	require.NoError(t, err)

	L := glua.NewState()
	defer L.Close()
	require.NoError(t, L.DoString("value = "+string(out)))

	table, ok := L.GetGlobal("value").(*glua.LTable)
	require.True(t, ok)
	assert.True(t, math.IsInf(float64(table.RawGetInt(1).(glua.LNumber)), 1))
	assert.True(t, math.IsInf(float64(table.RawGetInt(2).(glua.LNumber)), -1))
	assert.True(t, math.IsNaN(float64(table.RawGetInt(3).(glua.LNumber))))
}

func assertLuaValue(t *testing.T, lv glua.LValue, expected interface{}) {
	t.Helper()
	switch want := expected.(type) {
	case nil:
		assert.Equal(t, glua.LNil, lv)
	case bool:
		assert.Equal(t, glua.LBool(want), lv)
	case int:
		assertLuaNumber(t, lv, float64(want))
	case float64:
		assertLuaNumber(t, lv, want)
	case string:
		assert.Equal(t, glua.LString(want), lv)
	case []interface{}:
		table, ok := lv.(*glua.LTable)
		require.True(t, ok, "expected a table, got %s", lv.Type())
		require.Equal(t, len(want), table.Len())
		for i, elem := range want {
			assertLuaValue(t, table.RawGetInt(i+1), elem)
		}
	case map[string]interface{}:
		table, ok := lv.(*glua.LTable)
		require.True(t, ok, "expected a table, got %s", lv.Type())
		for key, val := range want {
			assertLuaValue(t, table.RawGetString(key), val)
		}
	default:
		t.Fatalf("unhandled expectation type %T", expected)
	}
}

func assertLuaNumber(t *testing.T, lv glua.LValue, want float64) {
	t.Helper()
	num, ok := lv.(glua.LNumber)
	require.True(t, ok, "expected a number, got %s", lv.Type())
	if math.IsInf(want, 1) {
		assert.True(t, math.IsInf(float64(num), 1))
		return
	}
	assert.Equal(t, want, float64(num))
}
