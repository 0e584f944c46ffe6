package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		c.AddPass()

		got := c.Complete()

		require.Equal(t, 3, got.Depth)
		require.True(t, got.Pruning)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 1, got.Passes)
		require.GreaterOrEqual(t, got.Duration.Nanoseconds(), int64(0))
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, true)
		c.AddNode()
		c.Start(2, false)

		got := c.Complete()

		require.Equal(t, 2, got.Depth)
		require.False(t, got.Pruning)
		require.Zero(t, got.Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
