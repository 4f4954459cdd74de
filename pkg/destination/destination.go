// Package destination defines the fixed set of output destinations, their
// capability rows, and the token resolution that maps caller-supplied names,
// prefixes, and compact single-letter codes onto that set.
package destination

// Destination identifies a named sink for rendered values.
type Destination int

const (
	Append Destination = iota
	Debug
	Error
	Host
	Info
	Log
	Output
	Replace
	Verbose
	Warning
	Xml
)

// canonical names, one per destination. Every name starts with a distinct
// letter, which is what makes compact codes like "hol" resolvable.
var names = [...]string{
	Append:  "Append",
	Debug:   "Debug",
	Error:   "Error",
	Host:    "Host",
	Info:    "Info",
	Log:     "Log",
	Output:  "Output",
	Replace: "Replace",
	Verbose: "Verbose",
	Warning: "Warning",
	Xml:     "Xml",
}

// All lists every destination in canonical order.
func All() []Destination {
	out := make([]Destination, len(names))
	for i := range names {
		out[i] = Destination(i)
	}
	return out
}

func (d Destination) String() string {
	if d < 0 || int(d) >= len(names) {
		return "unknown"
	}
	return names[d]
}

// Capability is the fixed per-destination rule row: whether the destination
// needs a filesystem path, and which normalization and decoration rules apply
// to values routed to it.
type Capability struct {
	NeedsPath     bool
	Trim          bool
	SuppressEmpty bool
	Annotate      bool
	Separator     bool
}

var capabilities = [...]Capability{
	Append:  {NeedsPath: true, Separator: true},
	Debug:   {Trim: true, SuppressEmpty: true},
	Error:   {Trim: true},
	Host:    {Trim: true, SuppressEmpty: true, Annotate: true, Separator: true},
	Info:    {SuppressEmpty: true},
	Log:     {NeedsPath: true, Trim: true, SuppressEmpty: true, Annotate: true, Separator: true},
	Output:  {},
	Replace: {NeedsPath: true, Separator: true},
	Verbose: {Trim: true, SuppressEmpty: true, Annotate: true},
	Warning: {Trim: true, SuppressEmpty: true},
	Xml:     {NeedsPath: true},
}

// Capability returns the rule row for d.
func (d Destination) Capability() Capability {
	if d < 0 || int(d) >= len(capabilities) {
		return Capability{}
	}
	return capabilities[d]
}
