package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	for key, value := range map[string]string{
		"GJALLARCFG_A_SIMPLE_KEY":          "simple",
		"GJALLARCFG_FOO_1":                 "bar",
		"GJALLARCFG_FOO_2":                 "baz",
		"GJALLARCFG_SOME_0_STRING__KEY":    "first val",
		"GJALLARCFG_SOME_0_INT__KEY":       "10",
		"GJALLARCFG_SOME_2_INT__KEY":       "11",
		"GJALLARCFG_SOME_3_FOO_0":          "zab",
		"GJALLARCFG_SOME_3_FOO_1":          "baz",
		"GJALLARCFG_SOME_3_FOO_2":          "azb",
		"GJALLARCFG_SOME_4_DOO_0_FOO_KEY":  "zab",
		"GJALLARCFG_SOME_4_DOO_1_FOO__KEY": "bar",
		"GJALLARCFG_SOME_4_DOO_1_BAR__KEY": "baz",
	} {
		t.Setenv(key, value)
	}

	// WHEN
	konf, err := koanfFromEnv("GJALLARCFG_")

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "simple", konf.Get("a.simple.key"))

	// a sparse list with an unset first element
	assert.Equal(t, []any{nil, "bar", "baz"}, konf.Get("foo"))

	some, ok := konf.Get("some").([]any)
	require.True(t, ok)
	require.Len(t, some, 5)

	// values are converted to the types the yaml parser guesses
	assert.Equal(t, map[string]any{"int_key": 10, "string_key": "first val"}, some[0])
	assert.Nil(t, some[1])
	assert.Equal(t, map[string]any{"int_key": 11}, some[2])
	assert.Equal(t, map[string]any{"foo": []any{"zab", "baz", "azb"}}, some[3])
	assert.Equal(t, map[string]any{"doo": []any{
		map[string]any{"foo.key": "zab"},
		map[string]any{"bar_key": "baz", "foo_key": "bar"},
	}}, some[4])
}
