package metrics

import (
	"testing"

	"github.com/siherrmann/thinkermap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDegreeStats(t *testing.T) {
	t.Run("Simple chain", func(t *testing.T) {
		nodes, edges := chainGraph()

		stats := ComputeDegreeStats(nodes, edges)

		require.Len(t, stats, 4)
		assert.Equal(t, model.DegreeStats{In: 0, Out: 1, Total: 1}, stats["A"])
		assert.Equal(t, model.DegreeStats{In: 1, Out: 1, Total: 2}, stats["B"])
		assert.Equal(t, model.DegreeStats{In: 1, Out: 1, Total: 2}, stats["C"])
		assert.Equal(t, model.DegreeStats{In: 1, Out: 0, Total: 1}, stats["D"])
	})

	t.Run("Star graph center collects all incoming", func(t *testing.T) {
		nodes, edges := starGraph()

		stats := ComputeDegreeStats(nodes, edges)

		assert.Equal(t, 5, stats["X"].In, "Expected center to have in-degree 5")
		assert.Equal(t, 0, stats["X"].Out)
		assert.Equal(t, 1, stats["L3"].Out)
	})

	t.Run("Degree sums are consistent", func(t *testing.T) {
		nodes, edges := scrambledGraph(200)

		stats := ComputeDegreeStats(nodes, edges)

		sumIn, sumOut := 0, 0
		for id, s := range stats {
			assert.Equal(t, s.In+s.Out, s.Total, "Expected total to be in plus out for %s", id)
			sumIn += s.In
			sumOut += s.Out
		}
		assert.Equal(t, len(edges), sumIn, "Expected in-degrees to sum to edge count")
		assert.Equal(t, len(edges), sumOut, "Expected out-degrees to sum to edge count")
	})

	t.Run("Isolated thinkers and dangling references", func(t *testing.T) {
		nodes := testThinkers("A", "B", "C")
		edges := []model.Connection{
			testConnection("A", "B"),
			testConnection("A", "ghost"),
		}

		stats := ComputeDegreeStats(nodes, edges)

		assert.Equal(t, model.DegreeStats{}, stats["C"], "Expected zero stats for isolated thinker")
		assert.Equal(t, 1, stats["A"].Out, "Expected dangling connection to be ignored")
		_, ok := stats["ghost"]
		assert.False(t, ok, "Expected no stats for missing thinker")
	})

	t.Run("Self-loop counts once in each direction", func(t *testing.T) {
		stats := ComputeDegreeStats(testThinkers("A"), []model.Connection{testConnection("A", "A")})

		assert.Equal(t, model.DegreeStats{In: 1, Out: 1, Total: 2}, stats["A"])
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, ComputeDegreeStats(nil, nil))
	})
}
