package mapper

import (
	"fmt"
	"strconv"
	"strings"
)

// pairEntry is one validated index|value pair from a mapper parameter list.
type pairEntry struct {
	Index int
	Value int
}

// entryError describes why a single comma-separated entry was rejected.
// Rejected entries are skipped; parsing continues with the next entry.
type entryError struct {
	Entry  string // the raw entry text
	Reason string // human-readable rejection reason
}

func (e *entryError) Error() string {
	return fmt.Sprintf("entry %q: %s", e.Entry, e.Reason)
}

// parsePairList parses the shared per-panel parameter grammar: a
// comma-separated list of entries, each a pipe-separated pair of unsigned
// decimal integers, e.g. "0|90,2|180".
//
// maxIndex is the highest legal pair index (chain*parallel - 1). Entries with
// a non-digit token, a missing or surplus token, or an out-of-range index are
// returned as entry errors and otherwise ignored: this is the fail-soft half
// of the parameter grammar, value-level checks (rotation angles, destination
// range) stay with the individual mappers.
func parsePairList(param string, maxIndex int) ([]pairEntry, []*entryError) {
	if param == "" {
		return nil, nil
	}

	var (
		pairs []pairEntry
		errs  []*entryError
	)
	for _, entry := range strings.Split(param, ",") {
		tokens := strings.Split(entry, "|")
		if len(tokens) != 2 {
			errs = append(errs, &entryError{Entry: entry, Reason: "expected exactly one index|value pair"})
			continue
		}

		index, err := parseUnsigned(tokens[0])
		if err != nil {
			errs = append(errs, &entryError{Entry: entry, Reason: err.Error()})
			continue
		}
		value, err := parseUnsigned(tokens[1])
		if err != nil {
			errs = append(errs, &entryError{Entry: entry, Reason: err.Error()})
			continue
		}

		if index > maxIndex {
			errs = append(errs, &entryError{
				Entry:  entry,
				Reason: fmt.Sprintf("panel index %d is too high (max: %d)", index, maxIndex),
			})
			continue
		}

		pairs = append(pairs, pairEntry{Index: index, Value: value})
	}
	return pairs, errs
}

// parseUnsigned parses a token of decimal digits. Unlike strconv.Atoi it
// rejects signs, so "-1" is a grammar error rather than a negative index.
func parseUnsigned(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("empty token")
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("found non-digit: %q", token)
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", token)
	}
	return n, nil
}
