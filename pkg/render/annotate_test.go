package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		code      string
		wantLabel string
		wantOK    bool
	}{
		{"I", "INFO:    ", true},
		{"W", "WARNING: ", true},
		{"C", "CAUTION: ", true},
		{"E", "ERROR:   ", true},
		{"F", "FATAL:   ", true},
		{"i", "INFO:    ", true},
		{"X", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run("code_"+tt.code, func(t *testing.T) {
			label, ok := Label(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestLabelsAreFixedWidth(t *testing.T) {
	for _, code := range []string{"I", "W", "C", "E", "F"} {
		label, ok := Label(code)
		assert.True(t, ok)
		assert.Len(t, label, 9, "label for %s", code)
	}
}

func TestAnnotate(t *testing.T) {
	assert.Equal(t, []string{"ERROR:   boom", "second"}, Annotate([]string{"boom", "second"}, "ERROR:   "))
	assert.Equal(t, []string{"plain"}, Annotate([]string{"plain"}, ""))
	assert.Nil(t, Annotate(nil, "INFO:    "))
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	in := []string{"boom"}
	Annotate(in, "FATAL:   ")
	assert.Equal(t, []string{"boom"}, in)
}
