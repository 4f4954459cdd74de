package chainlog

import (
	"bufio"
	"os"
	"regexp"

	"github.com/arthur-debert/outmux/pkg/errors"
)

var recordShape = regexp.MustCompile(`^(\d{6}) (\d{8}-\d{6}\.\d{3}) (.*)$`)

// Report summarizes a chain verification walk. Line numbers are 1-based.
type Report struct {
	Lines   int
	Reseeds []int // weak continuation boundaries (writer reopened the file)
	Breaks  []int // records whose token matches neither continuation
}

// OK reports whether the walk found no broken links.
func (r Report) OK() bool {
	return len(r.Breaks) == 0
}

// Verify walks an existing chained log and checks that every record's token
// links to its predecessor, either directly or through the reseed fallback a
// writer uses when it reopens an existing file. The first record is taken on
// trust: its seed derives from the original file name and writer identity,
// which the verifier cannot reconstruct. Malformed records count as breaks
// and restart trust at the following record.
func Verify(path string) (Report, error) {
	var report Report

	f, err := os.Open(path)
	if err != nil {
		return report, errors.Wrapf(err, errors.ErrChainRead, "open log file %s", path)
	}
	defer func() { _ = f.Close() }()

	prev := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		report.Lines++
		m := recordShape.FindStringSubmatch(scanner.Text())
		if m == nil {
			report.Breaks = append(report.Breaks, report.Lines)
			prev = ""
			continue
		}
		token, text := m[1], m[3]
		if prev != "" {
			switch token {
			case Token(prev, text):
			case Token(reseedPrefix+prev, text), Token(reseedPrefix, text):
				// In-process reopen, or a fresh process that never saw the
				// earlier tokens.
				report.Reseeds = append(report.Reseeds, report.Lines)
			default:
				report.Breaks = append(report.Breaks, report.Lines)
			}
		}
		prev = token
	}
	if err := scanner.Err(); err != nil {
		return report, errors.Wrapf(err, errors.ErrChainRead, "read log file %s", path)
	}
	return report, nil
}

// lastFileToken reads the token of the file's last well-formed record, for
// strict continuation.
func lastFileToken(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrChainRead, "open log file %s", path)
	}
	defer func() { _ = f.Close() }()

	last := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := recordShape.FindStringSubmatch(scanner.Text()); m != nil {
			last = m[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, errors.ErrChainRead, "read log file %s", path)
	}
	if last == "" {
		return "", errors.Newf(errors.ErrChainRead, "no chained records in %s", path)
	}
	return last, nil
}
