package dispatch

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outmux/pkg/chainlog"
	"github.com/arthur-debert/outmux/pkg/config"
	"github.com/arthur-debert/outmux/pkg/destination"
	"github.com/arthur-debert/outmux/pkg/errors"
	"github.com/arthur-debert/outmux/pkg/logging"
	"github.com/arthur-debert/outmux/pkg/render"
	"github.com/arthur-debert/outmux/pkg/xmlout"
)

// Dispatcher routes invocations. One invocation is sequential and
// synchronous: the caller resumes only after every requested destination has
// been serviced.
type Dispatcher struct {
	host     *render.Host
	chain    *chainlog.Writer
	bindings config.Bindings
	logger   zerolog.Logger
}

// New builds a Dispatcher. host or chain may be nil, in which case the
// screen renderer targets stdout and the chain writer gets a fresh
// in-process store in weak mode.
func New(host *render.Host, chain *chainlog.Writer, bindings config.Bindings) *Dispatcher {
	if host == nil {
		host = render.NewHostFile(os.Stdout)
	}
	if chain == nil {
		chain = chainlog.NewWriter(chainlog.NewStore(), chainlog.ModeWeak)
	}
	return &Dispatcher{
		host:     host,
		chain:    chain,
		bindings: bindings,
		logger:   logging.GetLogger("dispatch"),
	}
}

// Dispatch runs one invocation. The returned slice is the untouched value
// sequence when the Output destination was requested, nil otherwise; it is
// independent of side-channel write success. Configuration problems (bad
// token, missing path, unknown severity) disable the affected feature with a
// diagnostic; write failures are destination-scoped and never abort the
// remaining destinations. Only an empty value sequence fails fast.
func (d *Dispatcher) Dispatch(req Request) ([]any, error) {
	if len(req.Values) == 0 {
		return nil, errors.New(errors.ErrNoValues, "no values supplied")
	}

	tokens := req.Destinations
	if len(tokens) == 0 {
		tokens = []string{destination.Output.String()}
	}
	set := destination.Resolve(tokens)

	label := ""
	if req.Severity != "" {
		var ok bool
		if label, ok = render.Label(req.Severity); !ok {
			d.logger.Debug().Str("severity", req.Severity).Msg("unrecognized severity code, annotation skipped")
		}
	}

	colors := req.Colors
	if len(colors) == 0 {
		colors = []string{render.DefaultColor}
	}

	var returned []any
	for _, dest := range set {
		caps := dest.Capability()

		path := ""
		if caps.NeedsPath {
			var ok bool
			if path, ok = destination.ResolvePath(dest, d.explicitPath(req, dest), d.ambientPath(dest)); !ok {
				continue
			}
			if req.DryRun && dest != destination.Xml {
				d.logger.Debug().Stringer("destination", dest).Str("path", path).Msg("dry run, write skipped")
				continue
			}
		}

		var err error
		switch dest {
		case destination.Output:
			returned = req.Values
		case destination.Host:
			err = d.renderHost(req, label, colors)
		case destination.Log:
			err = d.chain.Append(path, fileLines(req, dest, label))
		case destination.Append:
			err = writeLines(path, fileLines(req, dest, label), false)
		case destination.Replace:
			err = writeLines(path, fileLines(req, dest, label), true)
		case destination.Xml:
			err = xmlout.Write(path, req.Values, req.DryRun)
		default:
			d.channel(dest, req, label)
		}
		if err != nil {
			d.logger.Error().Err(err).Stringer("destination", dest).Msg("destination write failed")
		}
	}
	return returned, nil
}

// renderHost draws the whole invocation on the screen: color cycling by
// value index, optional join of multi-line values, separator lines, and
// continuous output under NoNewline.
func (d *Dispatcher) renderHost(req Request, label string, colors []string) error {
	caps := destination.Host.Capability()

	var segments []render.Segment
	for i, v := range req.Values {
		lines := render.Lines(v, caps)
		if req.Join != nil && len(lines) > 1 {
			lines = []string{strings.Join(lines, *req.Join)}
		}
		// On the screen the label marks objects, not lines: every atomic
		// value gets it, a multi-line value only when it leads the batch.
		if label != "" && (len(lines) == 1 || i == 0) {
			lines = render.Annotate(lines, label)
		}
		color := colors[i%len(colors)]
		for _, line := range lines {
			segments = append(segments, render.Segment{Text: line, Color: color})
		}
		if req.Separator != "" {
			segments = append(segments, render.Segment{Text: req.Separator, Color: render.DefaultColor})
		}
	}
	return d.host.Print(segments, req.NoNewline)
}

// channel hands each rendered line individually to the logging subsystem at
// the destination's level.
func (d *Dispatcher) channel(dest destination.Destination, req Request, label string) {
	caps := dest.Capability()
	logger := logging.GetLogger("channel")

	for i, v := range req.Values {
		lines := render.Lines(v, caps)
		if i == 0 && caps.Annotate {
			lines = render.Annotate(lines, label)
		}
		for _, line := range lines {
			switch dest {
			case destination.Debug:
				logger.Debug().Msg(line)
			case destination.Verbose:
				logger.Trace().Msg(line)
			case destination.Info:
				logger.Info().Msg(line)
			case destination.Warning:
				logger.Warn().Msg(line)
			case destination.Error:
				logger.Error().Msg(line)
			}
		}
	}
}

// fileLines renders the invocation for a file destination: normalized lines
// per value, the severity label on the first value's first line when the
// destination annotates, and the separator after each value's group.
func fileLines(req Request, dest destination.Destination, label string) []string {
	caps := dest.Capability()

	var out []string
	for i, v := range req.Values {
		lines := render.Lines(v, caps)
		if i == 0 && caps.Annotate {
			lines = render.Annotate(lines, label)
		}
		out = append(out, lines...)
		if caps.Separator && req.Separator != "" {
			out = append(out, req.Separator)
		}
	}
	return out
}

func (d *Dispatcher) explicitPath(req Request, dest destination.Destination) string {
	switch dest {
	case destination.Append:
		return req.AppendPath
	case destination.Log:
		return req.LogPath
	case destination.Replace:
		return req.ReplacePath
	case destination.Xml:
		return req.XmlPath
	}
	return ""
}

func (d *Dispatcher) ambientPath(dest destination.Destination) string {
	switch dest {
	case destination.Append:
		return d.bindings.Append
	case destination.Log:
		return d.bindings.Log
	case destination.Replace:
		return d.bindings.Replace
	case destination.Xml:
		return d.bindings.Xml
	}
	return ""
}
