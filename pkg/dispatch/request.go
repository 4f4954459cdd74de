// Package dispatch is the engine that routes one invocation's values to
// every resolved destination: screen rendering, plain and chained file
// writes, logging channels, XML serialization, and the Output passthrough.
package dispatch

// Request is the unit of work for one invocation.
type Request struct {
	// Values is the ordered input sequence. Required; an empty sequence is
	// rejected before any destination work starts.
	Values []any

	// Destinations holds the caller's destination tokens: full names,
	// unambiguous prefixes, or compact single-letter codes. Defaults to
	// Output when empty.
	Destinations []string

	// Colors is the foreground sequence cycled across values on the Host
	// screen. Defaults to a single neutral color.
	Colors []string

	// Join, when set, collapses a multi-line value into one Host line using
	// it as the glue string.
	Join *string

	// Severity is one of I, W, C, E, F, or empty. Unrecognized codes
	// disable annotation with a diagnostic.
	Severity string

	// Separator, when non-empty, is emitted as its own line after each
	// value's line group on separator-capable destinations.
	Separator string

	// NoNewline makes Host print segments without line breaks, closing the
	// whole run with a single trailing newline.
	NoNewline bool

	// Explicit file paths. When empty, the ambient bindings fill in.
	AppendPath  string
	LogPath     string
	ReplacePath string
	XmlPath     string

	// DryRun skips filesystem writes while still exercising formatting and
	// serialization.
	DryRun bool
}
