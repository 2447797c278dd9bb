package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeIDs(nodes []GraphNode) []string {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}
	return ids
}

func TestFlattenForest(t *testing.T) {
	t.Run("path-based identities", func(t *testing.T) {
		forest := BuildForest("A\n    B\n    C\nD\n")
		nodes, edges := FlattenForest(forest)

		assert.Equal(t, []string{"A", "A/B", "A/C", "D"}, nodeIDs(nodes))
		assert.Equal(t, []GraphEdge{
			{From: "A", To: "A/B"},
			{From: "A", To: "A/C"},
		}, edges)
	})

	t.Run("repeated keywords under different parents stay distinct", func(t *testing.T) {
		forest := BuildForest("X\n    CPU\nY\n    CPU\n")
		nodes, edges := FlattenForest(forest)

		assert.Equal(t, []string{"X", "X/CPU", "Y", "Y/CPU"}, nodeIDs(nodes))
		require.Len(t, edges, 2)
		assert.Equal(t, GraphEdge{From: "X", To: "X/CPU"}, edges[0])
		assert.Equal(t, GraphEdge{From: "Y", To: "Y/CPU"}, edges[1])
	})

	t.Run("identical siblings collapse to one node and one edge", func(t *testing.T) {
		forest := BuildForest("A\n    B\n    B\n")
		nodes, edges := FlattenForest(forest)

		assert.Equal(t, []string{"A", "A/B"}, nodeIDs(nodes))
		assert.Len(t, edges, 1)
	})

	t.Run("levels and keywords carried through", func(t *testing.T) {
		forest := BuildForest("A\n    B\n        C\n")
		nodes, _ := FlattenForest(forest)

		require.Len(t, nodes, 3)
		assert.Equal(t, GraphNode{ID: "A/B/C", Level: 2, Keyword: "C"}, nodes[2])
	})

	t.Run("empty forest", func(t *testing.T) {
		nodes, edges := FlattenForest(nil)

		assert.Empty(t, nodes)
		assert.Empty(t, edges)
	})
}

func TestRenderGraph(t *testing.T) {
	forest := BuildForest("A\n    B\n")
	payload := RenderGraph(FlattenForest(forest))

	require.Len(t, payload.Nodes, 2)
	require.Len(t, payload.Edges, 1)

	node := payload.Nodes[1]
	assert.Equal(t, "A/B", node.ID)
	assert.Equal(t, "B", node.Label, "label shows the bare keyword, id carries the path")
	assert.Equal(t, 1, node.Level)
	assert.Equal(t, "box", node.Shape)
	assert.Equal(t, 2, node.BorderWidth)
	assert.Equal(t, "#ffffff", node.Color.Background)
	assert.Equal(t, "#000000", node.Color.Border)
	assert.Equal(t, "#f3f4f6", node.Color.Highlight.Background)
	assert.Equal(t, "#000000", node.Font.Color)
	assert.Equal(t, 14, node.Font.Size)

	edge := payload.Edges[0]
	assert.Equal(t, "A", edge.From)
	assert.Equal(t, "A/B", edge.To)
	assert.Equal(t, "to", edge.Arrows)
	assert.Equal(t, "#000000", edge.Color.Color)
	assert.Equal(t, "curvedCW", edge.Smooth.Type)
	assert.Equal(t, 0.2, edge.Smooth.Roundness)
}
