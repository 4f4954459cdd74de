package destination

import (
	"regexp"

	"github.com/arthur-debert/outmux/pkg/logging"
)

// pathShape accepts a drive-letter path (C:\dir\name.ext, forward or back
// slashes) or a rooted POSIX path, ending in a filename with a 3-8 character
// extension. Folder segments are optional.
var pathShape = regexp.MustCompile(`^(?:[A-Za-z]:[\\/]|/)(?:[^\\/:*?"<>|]+[\\/])*[^\\/:*?"<>|]+\.\w{3,8}$`)

// ResolvePath picks the usable path for a path-requiring destination:
// the explicit per-invocation value when present, the ambient fallback
// otherwise. The second return is false when neither yields a plausible
// absolute file path, in which case the destination must be dropped for
// this invocation. The check is syntactic only; whether the path is
// actually writable is a later, destination-scoped failure.
func ResolvePath(d Destination, explicit, ambient string) (string, bool) {
	path := explicit
	if path == "" {
		path = ambient
	}
	if ValidPath(path) {
		return path, true
	}
	logger := logging.GetLogger("destination")
	logger.Debug().
		Stringer("destination", d).
		Str("path", path).
		Msg("no usable path, destination dropped")
	return "", false
}

// ValidPath reports whether path has the minimum length and the
// drive-or-root, folders, filename-with-extension shape.
func ValidPath(path string) bool {
	return len(path) >= 5 && pathShape.MatchString(path)
}
