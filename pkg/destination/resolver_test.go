package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Destination
	}{
		{"full_name", []string{"Host"}, []Destination{Host}},
		{"case_insensitive", []string{"hOSt"}, []Destination{Host}},
		{"prefix", []string{"ou"}, []Destination{Output}},
		{"single_letter", []string{"h"}, []Destination{Host}},
		{"multiple_tokens", []string{"Host", "Output", "Log"}, []Destination{Host, Log, Output}},
		{"duplicates_collapse", []string{"Host", "host", "H"}, []Destination{Host}},
		{"compact_code", []string{"hol"}, []Destination{Host, Log, Output}},
		{"compact_code_all", []string{"adehilorvwx"}, All()},
		{"no_match", []string{"Q"}, nil},
		{"no_match_word", []string{"zzz"}, nil},
		{"empty_token", []string{""}, nil},
		{"no_tokens", nil, nil},
		{"unmatched_token_contributes_nothing", []string{"Host", "Quux"}, []Destination{Host}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.tokens))
		})
	}
}

func TestResolveCompactEqualsFullNames(t *testing.T) {
	// "hol" and the three spelled-out names must address the same set.
	assert.Equal(t, Resolve([]string{"Host", "Output", "Log"}), Resolve([]string{"hol"}))
}

func TestResolveCompactRetryOnlyWhenNothingResolved(t *testing.T) {
	// "ho" is a valid prefix of Host, so it must not be expanded to
	// Host+Output even though both characters would resolve.
	assert.Equal(t, []Destination{Host}, Resolve([]string{"ho"}))
}
