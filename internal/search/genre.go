package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/flixhub/internal/domain"
)

// ResolveGenre maps user input to a genre id. Input may be a numeric id,
// an exact name, or a loose spelling ("scifi", "sci fi"); the closest
// fuzzy candidate wins. It returns false when nothing matches.
func ResolveGenre(input string, genres []domain.Genre) (domain.Genre, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Genre{}, false
	}

	if id, err := strconv.Atoi(input); err == nil {
		for _, g := range genres {
			if g.ID == id {
				return g, true
			}
		}
		return domain.Genre{ID: id, Name: input}, true
	}

	folded := compact(Fold(input))
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = compact(Fold(g.Name))
		if names[i] == folded {
			return g, true
		}
	}

	ranks := fuzzy.RankFind(folded, names)
	if len(ranks) == 0 {
		return domain.Genre{}, false
	}
	sort.Stable(ranks)
	return genres[ranks[0].OriginalIndex], true
}

// compact strips punctuation and spaces so "Sci-Fi & Fantasy" and "scifi"
// share a form.
func compact(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
