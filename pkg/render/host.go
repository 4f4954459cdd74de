package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Host renders value segments on the interactive screen with per-segment
// foreground colors.
type Host struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewHost builds a Host over an arbitrary writer. The lipgloss renderer
// detects the writer's color capability itself, so plain buffers get
// unstyled text.
func NewHost(w io.Writer) *Host {
	return &Host{out: w, renderer: lipgloss.NewRenderer(w)}
}

// NewHostProfile builds a Host over w with a fixed color profile instead of
// detection.
func NewHostProfile(w io.Writer, profile termenv.Profile) *Host {
	h := &Host{out: w, renderer: lipgloss.NewRenderer(w)}
	h.renderer.SetColorProfile(profile)
	return h
}

// NewHostFile builds a Host over a terminal file handle, forcing the Ascii
// profile when NoColor applies.
func NewHostFile(f *os.File) *Host {
	h := &Host{out: f, renderer: lipgloss.NewRenderer(f)}
	if NoColor(f) {
		h.renderer.SetColorProfile(termenv.Ascii)
	}
	return h
}

// Segment is one display line with its assigned color. Segments from the same
// value share a color; the dispatch engine assigns colors cycling through the
// caller's sequence by value index.
type Segment struct {
	Text  string
	Color string
}

// Print writes segments in order. In line mode every segment ends its own
// line. In continuous mode (noNewline) the segments run together and a single
// trailing newline closes the whole run, which is what lets differently
// colored fragments form one visually continuous line.
func (h *Host) Print(segments []Segment, noNewline bool) error {
	for _, seg := range segments {
		styled := styleFor(h.renderer, seg.Color).Render(seg.Text)
		if noNewline {
			if _, err := fmt.Fprint(h.out, styled); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(h.out, styled); err != nil {
				return err
			}
		}
	}
	if noNewline {
		if _, err := fmt.Fprintln(h.out); err != nil {
			return err
		}
	}
	return nil
}
