// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package lua_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-lua/lua"
)

func TestStringEscaping(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		expected string
	}{
		{"plain", "hello", `"hello"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"bell and friends", "\a\b\f\v", `"\a\b\f\v"`},
		{"bare control byte", "a\x01b", `"a\001b"`},
		{"nul", "a\x00b", `"a\000b"`},
		{"delete", "a\x7fb", `"a\127b"`},
		{"multi-byte passthrough", "héllo wörld", `"héllo wörld"`},
		{"emoji passthrough", "a🙂b", `"a🙂b"`},
		{"quote next to control", "\"\n", `"\"\n"`},
		{"digit after numeric escape stays literal", "\x01" + "23", `"\00123"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := lua.ToString(str(tc.target))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

// Escaping is shared between modes; only the surrounding structure changes.
func TestStringEscapingIdenticalInPrettyMode(t *testing.T) {
	target := str("a\"b\\c\nd")

	compact, err := lua.ToString(target)
	require.NoError(t, err)
	pretty, err := lua.ToStringPretty(target)
	require.NoError(t, err)
	assert.Equal(t, compact, pretty)
}
