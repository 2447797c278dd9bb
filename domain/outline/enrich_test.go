package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosylinks-backend/domain/procedure"
)

func TestEnrich(t *testing.T) {
	records := []procedure.Record{
		{Code: "P1", Title: "Parent proc", Link: "http://p1", Tag: "A"},
		{Code: "P2", Title: "Child proc", Link: "http://p2", Tag: "B;MEM"},
		{Code: "P3", Title: "Untagged", Link: "http://p3", Tag: ""},
	}

	t.Run("each node matches only its own keyword", func(t *testing.T) {
		forest := BuildForest("A\n    B\n")
		view := Enrich(forest[0], records)

		require.Len(t, view.MatchedProcedures, 1)
		assert.Equal(t, "P1", view.MatchedProcedures[0].Code)

		require.Len(t, view.Children, 1)
		child := view.Children[0]
		require.Len(t, child.MatchedProcedures, 1)
		assert.Equal(t, "P2", child.MatchedProcedures[0].Code,
			"child matches are not pulled up and parent matches do not leak down")
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		forest := BuildForest("Z\n")
		view := Enrich(forest[0], records)

		require.NotNil(t, view.MatchedProcedures)
		assert.Empty(t, view.MatchedProcedures)
		require.NotNil(t, view.Children)
		assert.Empty(t, view.Children)
	})

	t.Run("keyword and level carried through", func(t *testing.T) {
		forest := BuildForest("A\n    B\n")
		view := Enrich(forest[0], records)

		assert.Equal(t, "A", view.Keyword)
		assert.Equal(t, 0, view.Level)
		assert.Equal(t, 1, view.Children[0].Level)
	})
}

func TestEnrichForest(t *testing.T) {
	records := []procedure.Record{
		{Code: "P1", Title: "One", Tag: "D"},
	}
	views := EnrichForest(BuildForest("A\nD\n"), records)

	require.Len(t, views, 2)
	assert.Empty(t, views[0].MatchedProcedures)
	require.Len(t, views[1].MatchedProcedures, 1)
	assert.Equal(t, "P1", views[1].MatchedProcedures[0].Code)
}
