package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"simple title", "Hello World", "hello-world-a1b2c3d4"},
		{"punctuation stripped", "Hello, World!", "hello-world-a1b2c3d4"},
		{"whitespace collapsed", "  Hello   World  ", "hello-world-a1b2c3d4"},
		{"diacritics folded", "Crème Brûlée", "creme-brulee-a1b2c3d4"},
		{"uppercase lowered", "HELLO", "hello-a1b2c3d4"},
		{"empty text yields token", "", "a1b2c3d4"},
		{"only punctuation yields token", "!!!", "a1b2c3d4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeSlug(tt.raw, "a1b2c3d4"))
		})
	}
}

func TestMakeSlugNoToken(t *testing.T) {
	assert.Equal(t, "hello-world", MakeSlug("Hello World", ""))
	assert.Equal(t, "", MakeSlug("", ""))
}

func TestMakeSlugDeterministic(t *testing.T) {
	a := MakeSlug("Same Input", "tok12345")
	b := MakeSlug("Same Input", "tok12345")
	assert.Equal(t, a, b)
}

func TestNewToken(t *testing.T) {
	a := NewToken()
	b := NewToken()
	assert.Len(t, a, 8)
	assert.Len(t, b, 8)
	assert.NotEqual(t, a, b)
}

func TestWithTimestamp(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := WithTimestamp("hello-world-a1b2c3d4", now)
	assert.Equal(t, "hello-world-a1b2c3d4-1700000000000", got)
	assert.NotEqual(t, got, WithTimestamp("hello-world-a1b2c3d4", now.Add(time.Millisecond)))
}

func TestStripToken(t *testing.T) {
	assert.Equal(t, "hello-world", StripToken("hello-world-a1b2c3d4"))
	assert.Equal(t, "hello", StripToken("hello-a1b2c3d4"))
	assert.Equal(t, "plain", StripToken("plain"))
	assert.Equal(t, "-leading", StripToken("-leading"))
}

func TestStripTokenTimestampFallback(t *testing.T) {
	// A timestamp-disambiguated slug carries two derived segments; both go,
	// so re-deriving never stacks token on token.
	assert.Equal(t, "hello-world", StripToken("hello-world-a1b2c3d4-1700000000000"))
	assert.Equal(t, "hello", StripToken("hello-a1b2c3d4-1700000000000"))
	// Ordinary words after the dropped segment stay put.
	assert.Equal(t, "hello-world", StripToken("hello-world-a1b2c3d4"))
}
