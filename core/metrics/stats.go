package metrics

import (
	"sort"

	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// DefaultTopK is the length of the ranking tables.
const DefaultTopK = 5

// CalculateNetworkStats computes aggregate statistics of the network.
//
// Connections count as directed: density is |E| / (|V|(|V|-1)) and the average
// degree is 2|E| / |V|, the mean of in plus out degree. Both are 0 for graphs too
// small to define them. Rankings are sorted descending, ties by thinker id.
func CalculateNetworkStats(nodes []model.Thinker, edges []model.Connection, topK int) *model.NetworkStats {
	adj := graph.NewAdjacency(nodes, edges)
	stats := degrees(adj)
	scores, _ := pageRank(adj, nil)
	return networkStats(adj, stats, scores, topK)
}

func networkStats(adj *graph.Adjacency, stats []model.DegreeStats, scores []float64, topK int) *model.NetworkStats {
	if topK <= 0 {
		topK = DefaultTopK
	}

	n := adj.Len()
	e := len(adj.Edges)

	result := &model.NetworkStats{
		TotalThinkers:    n,
		TotalConnections: e,
		MostInfluential:  []model.RankedThinker{},
		MostConnected:    []model.RankedThinker{},
	}
	if n > 0 {
		result.AverageDegree = 2 * float64(e) / float64(n)
	}
	if n > 1 {
		result.NetworkDensity = float64(e) / (float64(n) * float64(n-1))
	}

	totals := make([]float64, n)
	for i, s := range stats {
		totals[i] = float64(s.Total)
	}

	result.MostInfluential = rank(adj, scores, stats, topK)
	result.MostConnected = rank(adj, totals, stats, topK)

	return result
}

// rank returns the topK thinkers by score, ties broken by id
func rank(adj *graph.Adjacency, scores []float64, stats []model.DegreeStats, topK int) []model.RankedThinker {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(a, b int) bool {
		ia, ib := indices[a], indices[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return adj.Nodes[ia] < adj.Nodes[ib]
	})

	if len(indices) > topK {
		indices = indices[:topK]
	}

	ranked := make([]model.RankedThinker, len(indices))
	for r, i := range indices {
		ranked[r] = model.RankedThinker{
			Rank:   r + 1,
			ID:     adj.Nodes[i],
			Name:   adj.Names[i],
			Score:  scores[i],
			Degree: stats[i].Total,
		}
	}
	return ranked
}
