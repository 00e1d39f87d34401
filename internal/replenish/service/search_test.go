package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	idx := BuildIndex(testCatalog())

	require.Len(t, Search(idx, "a123", 20), 3)
	require.Len(t, Search(idx, "DRESS", 20), 3)
	require.Len(t, Search(idx, "blanco", 20), 1)
	require.Len(t, Search(idx, "E2", 20), 1)   // identifier hit
	require.Len(t, Search(idx, " E2 ", 20), 1) // padded identifier query still hits
	require.Empty(t, Search(idx, "zzz", 20))
	require.Empty(t, Search(idx, "   ", 20))
}

func TestSearchLimit(t *testing.T) {
	idx := BuildIndex(testCatalog())

	require.Len(t, Search(idx, "a123", 2), 2)
	require.Len(t, Search(idx, "a123", 0), 3) // non-positive limit falls back to default
}

func TestParseRefList(t *testing.T) {
	refs := ParseRefList("A1234\nA5678, A9012; A3456\tA1234  a5678")
	require.Equal(t, []string{"A1234", "A5678", "A9012", "A3456"}, refs)

	require.Empty(t, ParseRefList(""))
	require.Empty(t, ParseRefList("  \n  "))
}

func TestSuggestReferences(t *testing.T) {
	idx := BuildIndex(testCatalog())

	sugg := SuggestReferences("A124", idx, 5)
	require.NotEmpty(t, sugg)
	require.Equal(t, "A123", sugg[0].Reference)
	require.InDelta(t, 0.75, sugg[0].Score, 0.001)

	require.Empty(t, SuggestReferences("", idx, 5))
	require.Empty(t, SuggestReferences("A124", idx, 0))
	require.Empty(t, SuggestReferences("qqqqqq", idx, 5))
}
