package render

import "strings"

// Fixed-width severity labels. The padding keeps message columns aligned
// across mixed severities.
var severityLabels = map[string]string{
	"I": "INFO:    ",
	"W": "WARNING: ",
	"C": "CAUTION: ",
	"E": "ERROR:   ",
	"F": "FATAL:   ",
}

// Label maps a one-letter severity code to its fixed-width attention label.
// The second return is false for unrecognized codes.
func Label(code string) (string, bool) {
	label, ok := severityLabels[strings.ToUpper(code)]
	return label, ok
}

// Annotate prepends label to the first line of lines. An empty label or an
// empty sequence is returned unchanged.
func Annotate(lines []string, label string) []string {
	if label == "" || len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = label + out[0]
	return out
}
