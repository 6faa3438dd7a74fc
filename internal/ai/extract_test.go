package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with surrounding text", "Here you go:\n```json\n{\"a\":1}\n```\nDone.", "Here you go:\n{\"a\":1}\n\nDone."},
		{"whitespace trimmed", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestStripCodeFencesIdempotent(t *testing.T) {
	in := "```json\n{\"a\":1}\n```"
	once := stripCodeFences(in)
	assert.Equal(t, once, stripCodeFences(once))
}

func TestDecodeModelJSON(t *testing.T) {
	t.Run("valid fenced payload", func(t *testing.T) {
		raw := "```json\n{\"category\":\"work\",\"tags\":[\"meeting\"],\"reasoning\":\"ok\"}\n```"
		var got Classification
		require.NoError(t, decodeModelJSON(raw, classifySchema, &got))
		assert.Equal(t, "work", got.Category)
		assert.Equal(t, []string{"meeting"}, got.Tags)
	})

	t.Run("non-json text", func(t *testing.T) {
		raw := "Sorry, I cannot help with that."
		var got Classification
		err := decodeModelJSON(raw, classifySchema, &got)
		var perr *ResponseParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, raw, perr.Raw)
	})

	t.Run("missing required field", func(t *testing.T) {
		raw := `{"tags":["a"]}`
		var got Classification
		err := decodeModelJSON(raw, classifySchema, &got)
		var perr *ResponseParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("enum violation", func(t *testing.T) {
		raw := `{"category":"finance","tags":["a"]}`
		var got Classification
		err := decodeModelJSON(raw, classifySchema, &got)
		var perr *ResponseParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("score out of range", func(t *testing.T) {
		raw := `{"recommendations":[{"taskId":"t1","score":120}]}`
		var got RecommendationReport
		err := decodeModelJSON(raw, recommendSchema, &got)
		var perr *ResponseParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestResponseParseErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ResponseParseError{Raw: "x", Err: inner}
	assert.ErrorIs(t, err, inner)
}
