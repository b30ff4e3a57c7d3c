package metrics

import (
	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// FindShortestPath finds a shortest path between two thinkers, ignoring connection direction.
// Returns nil if either thinker is missing or they are not connected.
func FindShortestPath(fromID string, toID string, nodes []model.Thinker, edges []model.Connection) *model.PathResult {
	adj := graph.NewAdjacency(nodes, edges)
	return shortestPath(adj, fromID, toID)
}

func shortestPath(adj *graph.Adjacency, fromID string, toID string) *model.PathResult {
	path := graph.ShortestPath(adj, fromID, toID)
	if path == nil {
		return nil
	}

	names := make([]string, len(path))
	for i, id := range path {
		idx, _ := adj.Index(id)
		names[i] = adj.Names[idx]
	}

	return &model.PathResult{
		Path:      path,
		PathNames: names,
		Length:    len(path) - 1,
	}
}
