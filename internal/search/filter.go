package search

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/sahilm/fuzzy"
)

// Fold lowercases s and transliterates it to ASCII so "Amélie" matches
// "amelie".
func Fold(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// titleIndex adapts a title list to fuzzy.Source over folded titles
type titleIndex []string

func (t titleIndex) String(i int) string { return t[i] }
func (t titleIndex) Len() int            { return len(t) }

// Match is a filter hit
type Match struct {
	Index          int   // index in the input slice
	MatchedIndexes []int // positions in the folded title, for highlighting
}

// FilterTitles returns the titles matching query, best match first.
// An empty query matches nothing.
func FilterTitles(query string, titles []string) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(titles) == 0 {
		return nil
	}

	index := make(titleIndex, len(titles))
	for i, t := range titles {
		index[i] = Fold(t)
	}

	found := fuzzy.FindFrom(Fold(query), index)
	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{Index: f.Index, MatchedIndexes: f.MatchedIndexes}
	}
	return matches
}
