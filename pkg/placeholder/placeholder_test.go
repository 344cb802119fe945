package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SimplePrefix(t *testing.T) {
	tests := []struct {
		prefix string
		suffix string
		want   string
	}{
		{prefix: "${", suffix: "}", want: "{"},
		{prefix: "$[", suffix: "]", want: "["},
		{prefix: "#(", suffix: ")", want: "("},
		{prefix: "{{", suffix: "}}", want: "{{"},
		{prefix: "<", suffix: "}", want: "<"},
		{prefix: "%", suffix: "%", want: "%"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+tt.suffix, func(t *testing.T) {
			h, err := New(tt.prefix, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.simplePrefix)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	h, err := New("${", "}")
	require.NoError(t, err)

	assert.True(t, h.IgnoreUnresolvable())
	assert.Empty(t, h.ValueSeparator())
	assert.Equal(t, DefaultMaxDepth, h.maxDepth)
	assert.Equal(t, "${", h.Prefix())
	assert.Equal(t, "}", h.Suffix())
}

func TestNew_InvalidArgument(t *testing.T) {
	_, err := New("", "}")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New("${", "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.Panics(t, func() { MustNew("", "") })
}

func TestFindEnd(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		buf    string
		start  int
		want   int
	}{
		{name: "simple", prefix: "${", suffix: "}", buf: "${a}", want: 3},
		{name: "offset start", prefix: "${", suffix: "}", buf: "x=${a}!", start: 2, want: 5},
		{name: "nested full prefix", prefix: "${", suffix: "}", buf: "${a${b}}", want: 7},
		{name: "nested bare brace", prefix: "${", suffix: "}", buf: "${a{b}c}", want: 7},
		{name: "unterminated", prefix: "${", suffix: "}", buf: "${a", want: -1},
		{name: "unterminated nested", prefix: "${", suffix: "}", buf: "${a${b}", want: -1},
		{name: "multi char suffix", prefix: "{{", suffix: "}}", buf: "{{a}}", want: 3},
		{name: "multi char nested", prefix: "{{", suffix: "}}", buf: "{{a{{b}}}}", want: 8},
		{name: "symmetric", prefix: "%", suffix: "%", buf: "%a%", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := MustNew(tt.prefix, tt.suffix)
			assert.Equal(t, tt.want, h.findEnd(tt.buf, tt.start))
		})
	}
}

func TestIndexFrom(t *testing.T) {
	assert.Equal(t, 4, indexFrom("ab${${", "${", 3))
	assert.Equal(t, -1, indexFrom("ab", "${", 3))
	assert.Equal(t, -1, indexFrom("ab${", "${", 3))
}
