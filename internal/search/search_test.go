package search

import (
	"testing"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFilterTitles(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	titles := []string{"Amélie", "The Dark Knight", "Dark", "Heat"}

	matches := FilterTitles("dark", titles)
	require.Len(matches, 2)
	got := []int{matches[0].Index, matches[1].Index}
	require.ElementsMatch([]int{1, 2}, got)

	matches = FilterTitles("amelie", titles)
	require.Len(matches, 1)
	require.Equal(0, matches[0].Index)

	require.Nil(FilterTitles("  ", titles))
}

func TestFold(t *testing.T) {
	require.Equal(t, "cidade de deus", Fold("Cidade de Deus"))
	require.Equal(t, "o auto da compadecida", Fold("O Auto da Compadecida"))
	require.Equal(t, "pokemon", Fold("Pokémon"))
}

func TestResolveGenre(t *testing.T) {
	t.Parallel()

	genres := []domain.Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 10765, Name: "Sci-Fi & Fantasy"},
	}

	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"Comedy", 35, true},
		{"comedy", 35, true},
		{"sci-fi & fantasy", 10765, true},
		{"scifi", 10765, true},
		{"act", 28, true},
		{"878", 878, true},
		{"99", 99, true},
		{"western", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		g, ok := ResolveGenre(tc.input, genres)
		require.Equal(t, tc.ok, ok, "ResolveGenre(%q)", tc.input)
		if tc.ok {
			require.Equal(t, tc.expected, g.ID, "ResolveGenre(%q)", tc.input)
		}
	}
}
