// Package render turns input values into display-ready line sequences and
// draws them on the interactive screen: normalization (suppression and
// trimming per the destination's capability row), severity annotation, and
// colored Host output.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arthur-debert/outmux/pkg/destination"
)

// Text renders a value to its textual representation. Strings pass through,
// everything else goes through fmt's default formatting (so Stringer types
// render themselves).
func Text(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Lines converts one value into its rendered line sequence under the given
// capability row. Multi-line values yield multiple lines in order. Suppression
// drops zero-length lines; trimming strips trailing whitespace only, leaving
// leading indentation for callers that group output visually. The result may
// be empty when every line is suppressed.
func Lines(v any, cap destination.Capability) []string {
	raw := strings.Split(strings.ReplaceAll(Text(v), "\r\n", "\n"), "\n")
	var out []string
	for _, line := range raw {
		if cap.SuppressEmpty && line == "" {
			continue
		}
		if cap.Trim {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		out = append(out, line)
	}
	return out
}
