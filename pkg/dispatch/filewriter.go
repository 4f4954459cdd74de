package dispatch

import (
	"os"

	"github.com/arthur-debert/outmux/pkg/errors"
)

// writeLines writes rendered lines to path, one per line, either appending
// or truncating. The handle is scoped to the call and released on every exit
// path.
func writeLines(path string, lines []string, truncate bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileOpen, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "write %s", path)
		}
	}
	return nil
}
