package graph

import (
	"testing"

	"github.com/siherrmann/thinkermap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testThinkers(ids ...string) []model.Thinker {
	thinkers := make([]model.Thinker, len(ids))
	for i, id := range ids {
		thinkers[i] = model.Thinker{ID: id, Name: "Thinker " + id}
	}
	return thinkers
}

func testConnection(id string, from string, to string, connectionType model.ConnectionType) model.Connection {
	return model.Connection{
		ID:             id,
		FromThinkerID:  from,
		ToThinkerID:    to,
		ConnectionType: connectionType,
	}
}

func TestNewAdjacency(t *testing.T) {
	t.Run("Builds outgoing, incoming and undirected neighbors", func(t *testing.T) {
		nodes := testThinkers("A", "B", "C")
		edges := []model.Connection{
			testConnection("e1", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("e2", "C", "A", model.ConnectionTypeCritiqued),
		}

		adj := NewAdjacency(nodes, edges)

		require.Equal(t, 3, adj.Len(), "Expected three thinkers")
		a, _ := adj.Index("A")
		b, _ := adj.Index("B")
		c, _ := adj.Index("C")
		assert.Equal(t, []int{b}, adj.Out[a], "Expected A to point to B")
		assert.Equal(t, []int{c}, adj.In[a], "Expected C to point to A")
		assert.Equal(t, []int{b, c}, adj.Neighbors[a], "Expected neighbors of A in edge-list order")
		assert.Equal(t, []int{a}, adj.Neighbors[b], "Expected B to see A as undirected neighbor")
		assert.Len(t, adj.Edges, 2, "Expected both connections to be kept")
		assert.Zero(t, adj.Ignored, "Expected no ignored connections")
	})

	t.Run("Ignores connections with missing endpoints", func(t *testing.T) {
		nodes := testThinkers("A", "B")
		edges := []model.Connection{
			testConnection("e1", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("e2", "A", "ghost", model.ConnectionTypeInfluenced),
			testConnection("e3", "ghost", "B", model.ConnectionTypeInfluenced),
		}

		adj := NewAdjacency(nodes, edges)

		assert.Len(t, adj.Edges, 1, "Expected only the valid connection")
		assert.Equal(t, 2, adj.Ignored, "Expected two ignored connections")
		assert.False(t, adj.Has("ghost"), "Expected missing thinker to stay missing")
	})

	t.Run("Deduplicates parallel neighbors and skips self-loops", func(t *testing.T) {
		nodes := testThinkers("A", "B")
		edges := []model.Connection{
			testConnection("e1", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("e2", "B", "A", model.ConnectionTypeCritiqued),
			testConnection("e3", "A", "A", model.ConnectionTypeSynthesized),
		}

		adj := NewAdjacency(nodes, edges)

		a, _ := adj.Index("A")
		b, _ := adj.Index("B")
		assert.Equal(t, []int{b}, adj.Neighbors[a], "Expected B once as neighbor of A")
		assert.Equal(t, []int{b, a}, adj.Out[a], "Expected directed lists to keep multiplicity and the self-loop")
		assert.Len(t, adj.Edges, 3, "Expected the self-loop to be a valid edge")
	})

	t.Run("Keeps the first of duplicate thinker ids", func(t *testing.T) {
		nodes := []model.Thinker{{ID: "A", Name: "first"}, {ID: "A", Name: "second"}}

		adj := NewAdjacency(nodes, nil)

		require.Equal(t, 1, adj.Len())
		assert.Equal(t, "first", adj.Names[0])
	})

	t.Run("Handles empty input", func(t *testing.T) {
		adj := NewAdjacency(nil, nil)

		assert.Zero(t, adj.Len(), "Expected no thinkers")
		assert.Empty(t, adj.Edges, "Expected no edges")
	})
}

func TestTypeFilter(t *testing.T) {
	t.Run("Empty list accepts everything", func(t *testing.T) {
		assert.Nil(t, TypeFilter(nil), "Expected nil filter for no types")
		assert.Nil(t, TypeFilter([]model.ConnectionType{}), "Expected nil filter for empty types")
	})

	t.Run("Filters by connection type", func(t *testing.T) {
		nodes := testThinkers("A", "B", "C")
		edges := []model.Connection{
			testConnection("e1", "A", "B", model.ConnectionTypeInfluenced),
			testConnection("e2", "B", "C", model.ConnectionTypeCritiqued),
		}

		adj := NewFilteredAdjacency(nodes, edges, TypeFilter([]model.ConnectionType{model.ConnectionTypeCritiqued}))

		require.Len(t, adj.Edges, 1, "Expected only the critique")
		assert.Equal(t, "e2", adj.Edges[0].ID)
		assert.Zero(t, adj.Ignored, "Expected filtered connections not to count as ignored")
	})
}
