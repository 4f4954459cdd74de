package chainlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenDeterministic(t *testing.T) {
	a := Token("123456", "Hello World")
	b := Token("123456", "Hello World")
	assert.Equal(t, a, b)
}

func TestTokenLinksToSeed(t *testing.T) {
	// Different seeds must produce different tokens for the same text,
	// otherwise the chain would not actually link.
	assert.NotEqual(t, Token("111", "same text"), Token("222", "same text"))
}

func TestTokenWidth(t *testing.T) {
	tests := []struct {
		name string
		seed string
		text string
	}{
		{"small_sum", "0", "a"},
		{"empty_text", "0", ""},
		{"large_seed", "999999999", "some longer line of text"},
		{"no_seed", "", "unseeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Token(tt.seed, tt.text)
			assert.Len(t, tok, 6)
			assert.Regexp(t, `^[0-9]{6}$`, tok)
		})
	}
}

func TestTokenPositionSensitive(t *testing.T) {
	// Position weighting distinguishes transposed characters.
	assert.NotEqual(t, Token("0", "ab"), Token("0", "ba"))
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, int64(0), checksum(""))
	// "ab" = 1*97 + 2*98
	assert.Equal(t, int64(293), checksum("ab"))
}

func TestDigest3(t *testing.T) {
	assert.Len(t, digest3("out.log"), 3)
	assert.Equal(t, digest3("out.log"), digest3("out.log"))
}

func TestSeedValueIgnoresGarbage(t *testing.T) {
	assert.Equal(t, int64(0), seedValue("not-a-number"))
	assert.Equal(t, int64(123456), seedValue("123456"))
	assert.Equal(t, int64(123456), seedValue("000123456"))
}
