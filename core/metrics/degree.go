package metrics

import (
	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// ComputeDegreeStats counts incoming and outgoing connections per thinker.
// Thinkers without connections get zero stats, connections with a missing endpoint are ignored.
func ComputeDegreeStats(nodes []model.Thinker, edges []model.Connection) map[string]model.DegreeStats {
	adj := graph.NewAdjacency(nodes, edges)
	return degreeMap(adj, degrees(adj))
}

func degrees(adj *graph.Adjacency) []model.DegreeStats {
	stats := make([]model.DegreeStats, adj.Len())
	for i := range stats {
		in := len(adj.In[i])
		out := len(adj.Out[i])
		stats[i] = model.DegreeStats{
			In:    in,
			Out:   out,
			Total: in + out,
		}
	}
	return stats
}

func degreeMap(adj *graph.Adjacency, stats []model.DegreeStats) map[string]model.DegreeStats {
	result := make(map[string]model.DegreeStats, len(stats))
	for i, s := range stats {
		result[adj.Nodes[i]] = s
	}
	return result
}
