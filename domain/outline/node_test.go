package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countNodes(forest []*Node) int {
	total := 0
	for _, node := range forest {
		total += 1 + countNodes(node.Children())
	}
	return total
}

func TestBuildForest(t *testing.T) {
	t.Run("two roots with children", func(t *testing.T) {
		forest := BuildForest("A\n    B\n    C\nD\n")

		require.Len(t, forest, 2)
		assert.Equal(t, "A", forest[0].Keyword())
		assert.Equal(t, "D", forest[1].Keyword())
		assert.Equal(t, 0, forest[0].Level())
		assert.Equal(t, 0, forest[1].Level())

		children := forest[0].Children()
		require.Len(t, children, 2)
		assert.Equal(t, "B", children[0].Keyword())
		assert.Equal(t, "C", children[1].Keyword())
		assert.Equal(t, 1, children[0].Level())
		assert.Equal(t, 1, children[1].Level())
		assert.Empty(t, forest[1].Children())
	})

	t.Run("empty input yields empty forest", func(t *testing.T) {
		assert.Empty(t, BuildForest(""))
		assert.Empty(t, BuildForest("\n\n   \n"))
	})

	t.Run("blank lines are skipped entirely", func(t *testing.T) {
		forest := BuildForest("A\n\n    B\n   \n    C\n")

		require.Len(t, forest, 1)
		assert.Len(t, forest[0].Children(), 2)
	})

	t.Run("node count equals non-blank line count", func(t *testing.T) {
		text := "A\n    B\n        C\n\nD\n    E\n"
		nonBlank := 0
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) != "" {
				nonBlank++
			}
		}

		assert.Equal(t, nonBlank, countNodes(BuildForest(text)))
	})

	t.Run("indentation rounds down to the nearest level", func(t *testing.T) {
		// 6 spaces floor to level 1, 3 spaces floor to level 0.
		forest := BuildForest("A\n      B\n   C\n")

		require.Len(t, forest, 2)
		assert.Equal(t, "C", forest[1].Keyword())
		require.Len(t, forest[0].Children(), 1)
		assert.Equal(t, "B", forest[0].Children()[0].Keyword())
		assert.Equal(t, 1, forest[0].Children()[0].Level())
	})

	t.Run("tabs do not count as indentation", func(t *testing.T) {
		forest := BuildForest("A\n\tB\n")

		// Tab-indented line parses as a second root at level 0.
		require.Len(t, forest, 2)
		assert.Equal(t, "B", forest[1].Keyword())
		assert.Equal(t, 0, forest[1].Level())
	})

	t.Run("level jump attaches under nearest shallower ancestor", func(t *testing.T) {
		forest := BuildForest("A\n            B\n    C\n")

		require.Len(t, forest, 1)
		children := forest[0].Children()
		require.Len(t, children, 2)
		assert.Equal(t, "B", children[0].Keyword())
		assert.Equal(t, 3, children[0].Level())
		assert.Equal(t, "C", children[1].Keyword())
		assert.Equal(t, 1, children[1].Level())
	})

	t.Run("parent back-reference never exposes synthetic root", func(t *testing.T) {
		forest := BuildForest("A\n    B\n")

		assert.Nil(t, forest[0].Parent())
		require.Len(t, forest[0].Children(), 1)
		assert.Same(t, forest[0], forest[0].Children()[0].Parent())
	})
}

func TestAllKeywords(t *testing.T) {
	forest := BuildForest("A\n    B\n        C\n    B\n")

	assert.Equal(t, []string{"A", "B", "C"}, forest[0].AllKeywords())
}

func TestVocabulary(t *testing.T) {
	tree := BuildForest("CPU\n    cache\nMEM\n")
	other := BuildForest("CPU\nIO\n")

	assert.Equal(t, []string{"CPU", "IO", "MEM", "cache"}, Vocabulary(tree, other))
	assert.Empty(t, Vocabulary())
}
