package lang

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the number of similar locations reported with an
// invalid location.
const maxSuggestions = 3

// Suggest returns up to n candidates that fuzzy-match location, best first.
func Suggest(location string, candidates []string, n int) []string {
	if location == "" || len(candidates) == 0 || n <= 0 {
		return nil
	}

	sorted := slices.Sorted(slices.Values(candidates))
	matches := fuzzy.Find(location, sorted)

	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}

		out = append(out, m.Str)
	}

	return out
}

func invalidLocation(location string, candidates []string) *Error {
	err := ErrInvalidLocation.
		Wrap(errors.New(strconv.Quote(location))).
		With(slog.String("location", location))

	if s := Suggest(location, candidates, maxSuggestions); len(s) > 0 {
		err = err.With(slog.Any("suggestions", s))
	}

	return err
}
