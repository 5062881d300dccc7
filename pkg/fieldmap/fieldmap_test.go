package fieldmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestGet_ObjectKeys(t *testing.T) {
	obj := decode(t, `{"choices":[{"delta":{"content":"hi"}}]}`)

	assert.Equal(t, "hi", GetString(obj, "choices.0.delta.content"))
}

func TestGet_NegativeIndex(t *testing.T) {
	obj := decode(t, `{"items":["a","b","c"]}`)

	assert.Equal(t, "c", GetString(obj, "items.-1"))
}

func TestGet_ListDescendsIntoElementZero(t *testing.T) {
	// Non-integer segment over a list descends into element 0 and retries.
	obj := decode(t, `{"choices":[{"message":{"content":"x"}}]}`)

	assert.Equal(t, "x", GetString(obj, "choices.message.content"))
}

func TestGet_MissingPath(t *testing.T) {
	obj := decode(t, `{"a":{"b":1}}`)

	_, ok := Get(obj, "a.c")
	assert.False(t, ok)
	assert.Equal(t, "", GetString(obj, "a.c.d"))
}

func TestGetString_RendersScalars(t *testing.T) {
	obj := decode(t, `{"n":3,"b":true,"z":null}`)

	assert.Equal(t, "3", GetString(obj, "n"))
	assert.Equal(t, "true", GetString(obj, "b"))
	assert.Equal(t, "", GetString(obj, "z"))
}

func TestSet_GetRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
	}{
		{"object key", `{"a":{"b":"old"}}`, "a.b"},
		{"list index", `{"messages":[{"content":"old"}]}`, "messages.0.content"},
		{"negative index", `{"messages":[{"content":"x"},{"content":"y"}]}`, "messages.-1.content"},
		{"created intermediate", `{}`, "a.b.c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj := decode(t, tc.doc)
			require.NoError(t, Set(obj, tc.path, "new"))
			assert.Equal(t, "new", GetString(obj, tc.path))
		})
	}
}

func TestSet_ListIndexOutOfRange(t *testing.T) {
	obj := decode(t, `{"items":["a"]}`)

	assert.Error(t, Set(obj, "items.3", "x"))
	assert.Error(t, Set(obj, "items.-2", "x"))
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse("")
	require.NoError(t, err)

	m = m.WithDefaults()
	assert.Equal(t, "data:", m.StreamPrefix)
	assert.Equal(t, "json", m.DataFormat)
	assert.Equal(t, "[DONE]", m.StopFlag)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("{not json")
	assert.Error(t, err)
}

func TestParse_OverridesSurvive(t *testing.T) {
	m, err := Parse(`{"stop_flag":"<END>","content":"data.text","stream_prefix":"event:"}`)
	require.NoError(t, err)

	m = m.WithDefaults()
	assert.Equal(t, "<END>", m.StopFlag)
	assert.Equal(t, "data.text", m.Content)
	assert.Equal(t, "event:", m.StreamPrefix)
	assert.Equal(t, "json", m.DataFormat)
}
