package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DefaultColor is the neutral foreground used when the caller supplies no
// color sequence. It renders unstyled on any profile.
const DefaultColor = "Default"

// Console-style color names mapped to ANSI palette indexes.
var ansiColors = map[string]string{
	"black":       "0",
	"darkred":     "1",
	"darkgreen":   "2",
	"darkyellow":  "3",
	"darkblue":    "4",
	"darkmagenta": "5",
	"darkcyan":    "6",
	"gray":        "7",
	"darkgray":    "8",
	"red":         "9",
	"green":       "10",
	"yellow":      "11",
	"blue":        "12",
	"magenta":     "13",
	"cyan":        "14",
	"white":       "15",
}

// styleFor builds the foreground style for a named color on the given
// renderer. Unknown names, including DefaultColor, render unstyled.
func styleFor(r *lipgloss.Renderer, name string) lipgloss.Style {
	code, ok := ansiColors[strings.ToLower(name)]
	if !ok {
		return r.NewStyle()
	}
	return r.NewStyle().Foreground(lipgloss.Color(code))
}

// NoColor reports whether styled output should be disabled for f: NO_COLOR is
// set, f is piped or redirected, or the terminal reports no color support.
func NoColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return true
	}
	return termenv.ColorProfile() == termenv.Ascii
}
