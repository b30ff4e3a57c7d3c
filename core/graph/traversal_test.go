package graph

import (
	"testing"

	"github.com/siherrmann/thinkermap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFS(t *testing.T) {
	// Test graph: A -> B -> C
	//             A -> D
	//             E (isolated)
	nodes := testThinkers("A", "B", "C", "D", "E")
	edges := []model.Connection{
		testConnection("ab", "A", "B", model.ConnectionTypeInfluenced),
		testConnection("ad", "A", "D", model.ConnectionTypeInfluenced),
		testConnection("bc", "B", "C", model.ConnectionTypeInfluenced),
	}
	adj := NewAdjacency(nodes, edges)

	t.Run("BFS from source with max hops 1", func(t *testing.T) {
		results := BFS(adj, "A", 1)

		require.Len(t, results, 3, "Expected A, B and D")
		assert.Equal(t, "A", results[0].NodeID, "Expected first result to be source")
		assert.Equal(t, 0, results[0].Distance, "Expected source distance to be 0")
		assert.Equal(t, "B", results[1].NodeID)
		assert.Equal(t, "D", results[2].NodeID)
	})

	t.Run("BFS from source with max hops 2", func(t *testing.T) {
		results := BFS(adj, "A", 2)

		require.Len(t, results, 4, "Expected A, B, D and C")
		assert.Equal(t, "C", results[3].NodeID)
		assert.Equal(t, 2, results[3].Distance)
		assert.Equal(t, []string{"A", "B", "C"}, results[3].Path, "Expected path through B")
	})

	t.Run("BFS follows connections backwards", func(t *testing.T) {
		results := BFS(adj, "C", -1)

		require.Len(t, results, 4, "Expected the whole component")
		assert.Equal(t, []string{"C", "B", "A", "D"}, results[3].Path)
	})

	t.Run("BFS from isolated node", func(t *testing.T) {
		results := BFS(adj, "E", 2)

		require.Len(t, results, 1, "Expected only source node for isolated thinker")
		assert.Equal(t, "E", results[0].NodeID)
	})

	t.Run("BFS with max hops 0", func(t *testing.T) {
		results := BFS(adj, "A", 0)

		require.Len(t, results, 1, "Expected only source node for max hops 0")
		assert.Equal(t, 0, results[0].Distance)
	})

	t.Run("BFS from missing source", func(t *testing.T) {
		assert.Nil(t, BFS(adj, "missing", 2), "Expected nil for missing source")
	})
}

func TestShortestPath(t *testing.T) {
	t.Run("Simple chain", func(t *testing.T) {
		nodes := testThinkers("A", "B", "C", "D")
		edges := []model.Connection{
			testConnection("ab", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("bc", "B", "C", model.ConnectionTypeInfluenced),
			testConnection("cd", "C", "D", model.ConnectionTypeInfluenced),
		}
		adj := NewAdjacency(nodes, edges)

		assert.Equal(t, []string{"A", "B", "C", "D"}, ShortestPath(adj, "A", "D"))
		assert.Equal(t, []string{"D", "C", "B", "A"}, ShortestPath(adj, "D", "A"), "Expected direction to be ignored")
	})

	t.Run("Ties are broken by edge-list order", func(t *testing.T) {
		// Diamond A-B-D and A-C-D
		nodes := testThinkers("A", "B", "C", "D")
		edges := []model.Connection{
			testConnection("ac", "A", "C", model.ConnectionTypeInfluenced),
			testConnection("ab", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("bd", "B", "D", model.ConnectionTypeInfluenced),
			testConnection("cd", "C", "D", model.ConnectionTypeInfluenced),
		}
		adj := NewAdjacency(nodes, edges)

		assert.Equal(t, []string{"A", "C", "D"}, ShortestPath(adj, "A", "D"), "Expected C first since its edge is listed first")
	})

	t.Run("Same source and target", func(t *testing.T) {
		adj := NewAdjacency(testThinkers("A"), nil)

		assert.Equal(t, []string{"A"}, ShortestPath(adj, "A", "A"))
	})

	t.Run("No path or missing thinker", func(t *testing.T) {
		adj := NewAdjacency(testThinkers("A", "B"), nil)

		assert.Nil(t, ShortestPath(adj, "A", "B"), "Expected nil for disconnected thinkers")
		assert.Nil(t, ShortestPath(adj, "A", "missing"), "Expected nil for missing target")
		assert.Nil(t, ShortestPath(adj, "missing", "A"), "Expected nil for missing source")
	})
}
