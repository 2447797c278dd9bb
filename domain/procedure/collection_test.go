package procedure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAdd(t *testing.T) {
	t.Run("empty tag defaults to the sentinel", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add(Record{Code: "X", Title: "T", Link: "L", Tag: ""})

		require.Len(t, c.Records(), 1)
		assert.Equal(t, DefaultTag, c.Records()[0].Tag)
	})

	t.Run("supplied tag is normalized", func(t *testing.T) {
		c := NewCollection(nil)
		c.Add(Record{Code: "X", Title: "T", Tag: " cpu ; ;mem "})

		assert.Equal(t, "cpu;mem", c.Records()[0].Tag)
	})

	t.Run("duplicate code is a silent no-op", func(t *testing.T) {
		c := NewCollection([]Record{{Code: "X", Title: "old", Tag: "cpu"}})
		c.Add(Record{Code: "X", Title: "new", Tag: "mem"})

		require.Len(t, c.Records(), 1)
		assert.Equal(t, "old", c.Records()[0].Title)
	})

	t.Run("appends in order", func(t *testing.T) {
		c := NewCollection([]Record{{Code: "A"}})
		c.Add(Record{Code: "B", Tag: "x"})
		c.Add(Record{Code: "C", Tag: "y"})

		require.Len(t, c.Records(), 3)
		assert.Equal(t, "B", c.Records()[1].Code)
		assert.Equal(t, "C", c.Records()[2].Code)
	})
}

func TestCollectionUpdateTag(t *testing.T) {
	t.Run("normalizes the stored value", func(t *testing.T) {
		c := NewCollection([]Record{{Code: "X", Tag: DefaultTag}})

		require.True(t, c.UpdateTag("X", "  cpu ; ;mem  "))
		assert.Equal(t, "cpu;mem", c.Records()[0].Tag)
	})

	t.Run("entirely empty result stores empty string", func(t *testing.T) {
		c := NewCollection([]Record{{Code: "X", Tag: "cpu"}})

		require.True(t, c.UpdateTag("X", " ; "))
		assert.Equal(t, "", c.Records()[0].Tag)
	})

	t.Run("unknown code reports not found", func(t *testing.T) {
		c := NewCollection([]Record{{Code: "X", Tag: "cpu"}})

		assert.False(t, c.UpdateTag("Y", "mem"))
		assert.Equal(t, "cpu", c.Records()[0].Tag)
	})
}

func TestCollectionContains(t *testing.T) {
	c := NewCollection([]Record{{Code: "X"}})

	assert.True(t, c.Contains("X"))
	assert.False(t, c.Contains("Y"))
}
