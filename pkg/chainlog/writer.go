package chainlog

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/arthur-debert/outmux/pkg/errors"
)

// Mode selects how a chain continues when a writer reopens a file that
// already has lines.
type Mode int

const (
	// ModeWeak reseeds from reseedPrefix plus the last in-process token.
	// Matches the reference behavior: continuity across process restarts is
	// approximate, since the file's actual last token is never read back.
	ModeWeak Mode = iota
	// ModeStrict reads the file's last physical record and continues the
	// chain from its token exactly.
	ModeStrict
)

// ParseMode maps a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "weak":
		return ModeWeak, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeWeak, errors.Newf(errors.ErrConfigParse, "unknown chain mode %q", s)
	}
}

const timestampLayout = "20060102-150405.000"

// Writer appends chained records to log files, one file handle per Append
// call.
type Writer struct {
	store *Store
	mode  Mode
	user  string
	now   func() time.Time
}

// NewWriter builds a Writer over the given chain-state store.
func NewWriter(store *Store, mode Mode) *Writer {
	return &Writer{
		store: store,
		mode:  mode,
		user:  actingUser(),
		now:   time.Now,
	}
}

// Append writes lines to path as chained records: token, millisecond
// timestamp, trimmed text. The file is opened once for the whole batch and
// released on every exit path. In-process writers to the same path are
// serialized through the store's per-path lock.
func (w *Writer) Append(path string, lines []string) error {
	lock := w.store.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	seed, err := w.seed(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileOpen, "open log file %s", path)
	}
	defer func() { _ = f.Close() }()

	for _, line := range lines {
		text := strings.TrimRightFunc(line, unicode.IsSpace)
		token := Token(seed, text)
		record := token + " " + w.now().Format(timestampLayout) + " " + text + "\n"
		if _, err := f.WriteString(record); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "write log file %s", path)
		}
		w.store.set(path, token)
		seed = token
	}
	return nil
}

// seed decides the chain seed for the next record appended to path.
func (w *Writer) seed(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return digest3(filepath.Base(path)) + digest3(w.user), nil
	}
	last := w.store.Last(path)
	if w.mode == ModeStrict {
		if last != "" {
			return last, nil
		}
		return lastFileToken(path)
	}
	return reseedPrefix + last, nil
}

func actingUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
