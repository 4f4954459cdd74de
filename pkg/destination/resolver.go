package destination

import (
	"strings"

	"github.com/arthur-debert/outmux/pkg/logging"
)

// Resolve maps caller-supplied destination tokens to the canonical set.
//
// Each token is matched as a case-insensitive prefix of exactly one canonical
// name; a token matching zero or several names contributes nothing and is
// reported on the debug channel. If the whole pass resolves nothing and the
// input has more than one character overall, the tokens are joined and retried
// character by character, so compact codes like "hol" expand to Host, Output
// and Log. Duplicates collapse; result order follows canonical order.
func Resolve(tokens []string) []Destination {
	logger := logging.GetLogger("destination")

	seen := make(map[Destination]bool)
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if d, ok := matchPrefix(tok); ok {
			seen[d] = true
		} else {
			logger.Debug().Str("token", tok).Msg("destination token did not resolve")
		}
	}

	if len(seen) == 0 {
		joined := strings.Join(tokens, "")
		if len(joined) > 1 {
			for _, r := range joined {
				if d, ok := matchPrefix(string(r)); ok {
					seen[d] = true
				} else {
					logger.Debug().Str("code", string(r)).Msg("destination code did not resolve")
				}
			}
		}
	}

	var out []Destination
	for _, d := range All() {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// matchPrefix finds the single canonical name tok is a prefix of.
func matchPrefix(tok string) (Destination, bool) {
	lower := strings.ToLower(tok)
	found := Destination(-1)
	count := 0
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			found = Destination(i)
			count++
		}
	}
	if count != 1 {
		return 0, false
	}
	return found, true
}
