package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	t.Run("same namespace reuses the instance", func(t *testing.T) {
		first := NewCollector("reuse")
		second := NewCollector("reuse")
		assert.Same(t, first, second)
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		a := NewCollector("ns_a")
		b := NewCollector("ns_b")
		require.NotSame(t, a, b)

		// Incrementing one namespace must not bleed into the other.
		a.ProceduresAdded.Inc()
		assert.NotSame(t, a.ProceduresAdded, b.ProceduresAdded)
	})

	t.Run("serves its own registry", func(t *testing.T) {
		collector := NewCollector("handler_ns")
		assert.NotNil(t, collector.Handler())
	})
}
