package metrics

import (
	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// ComputeBetweenness computes betweenness centrality with Brandes' algorithm.
//
// Connections are treated as undirected, parallel connections count once and
// self-loops are ignored. Scores are raw sums over ordered pairs (s, t), so every
// unordered pair contributes twice, and are not normalized.
func ComputeBetweenness(nodes []model.Thinker, edges []model.Connection) map[string]float64 {
	adj := graph.NewAdjacency(nodes, edges)
	scores := betweenness(adj)

	result := make(map[string]float64, len(scores))
	for i, s := range scores {
		result[adj.Nodes[i]] = s
	}
	return result
}

func betweenness(adj *graph.Adjacency) []float64 {
	n := adj.Len()
	cb := make([]float64, n)
	if n < 3 {
		return cb
	}

	// Buffers reused for every source
	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	pred := make([][]int, n)
	stack := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		stack = stack[:0]
		queue = append(queue[:0], s)
		sigma[s] = 1
		dist[s] = 0

		// BFS phase counting shortest paths
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range adj.Neighbors[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		// Back-propagation of pair dependencies
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	return cb
}
