package catalog

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownItem = errors.New("unknown catalog item")
	ErrEmptyGroup  = errors.New("empty catalog group")
)

// LookupError reports a name the catalog cannot resolve.
type LookupError struct {
	Kind       error // ErrUnknownItem or ErrEmptyGroup
	Name       string
	Suggestion string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("%v: %q", e.Kind, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Kind
}

// Suggest picks the closest candidate by edit distance. Candidates further
// than a third of the name's length (minimum 2) are ignored.
func Suggest(name string, candidates []string) string {
	limit := max(2, len(name)/3)
	best, bestDist := "", limit+1
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(name, cand)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
