package metrics

import (
	"log/slog"
	"sort"

	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// DefaultClusterIterations caps the label propagation rounds.
const DefaultClusterIterations = 100

// ClusterOptions configures the label propagation
type ClusterOptions struct {
	MaxIterations int
}

// GetClusterSummary detects communities with label propagation.
//
// Every thinker starts with its own id as label. Each round visits the thinkers
// in input order and assigns the label held by most distinct neighbors, ties go
// to the lowest label. Rounds stop when nothing changes or at MaxIterations.
// Thinkers without connections form clusters of size 1.
// Clusters are sorted by size descending, then by label, and numbered from 0.
func GetClusterSummary(nodes []model.Thinker, edges []model.Connection, opts *ClusterOptions) []model.Cluster {
	adj := graph.NewAdjacency(nodes, edges)
	clusters, _ := clusterSummary(adj, opts)
	return clusters
}

// ClusterAssignments maps every thinker id to the id of its cluster
func ClusterAssignments(clusters []model.Cluster) map[string]int {
	assignments := make(map[string]int)
	for _, c := range clusters {
		for _, m := range c.Members {
			assignments[m] = c.ID
		}
	}
	return assignments
}

func clusterSummary(adj *graph.Adjacency, opts *ClusterOptions) ([]model.Cluster, []int) {
	maxIterations := DefaultClusterIterations
	if opts != nil && opts.MaxIterations > 0 {
		maxIterations = opts.MaxIterations
	}

	labels := labelPropagation(adj, maxIterations)

	byLabel := make(map[string]*model.Cluster)
	var order []string
	for i, label := range labels {
		c, ok := byLabel[label]
		if !ok {
			c = &model.Cluster{Label: label}
			byLabel[label] = c
			order = append(order, label)
		}
		c.Members = append(c.Members, adj.Nodes[i])
		c.MemberNames = append(c.MemberNames, adj.Names[i])
		c.Size++
	}

	clusters := make([]model.Cluster, 0, len(order))
	for _, label := range order {
		clusters = append(clusters, *byLabel[label])
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].Size != clusters[j].Size {
			return clusters[i].Size > clusters[j].Size
		}
		return clusters[i].Label < clusters[j].Label
	})

	clusterOf := make(map[string]int, len(clusters))
	for i := range clusters {
		clusters[i].ID = i
		clusterOf[clusters[i].Label] = i
	}

	ids := make([]int, len(labels))
	for i, label := range labels {
		ids[i] = clusterOf[label]
	}

	return clusters, ids
}

func labelPropagation(adj *graph.Adjacency, maxIterations int) []string {
	labels := make([]string, adj.Len())
	copy(labels, adj.Nodes)

	rounds := 0
	for rounds < maxIterations {
		rounds++
		changed := false

		for i := range labels {
			neighbors := adj.Neighbors[i]
			if len(neighbors) == 0 {
				continue
			}

			counts := make(map[string]int, len(neighbors))
			for _, j := range neighbors {
				counts[labels[j]]++
			}

			best := ""
			bestCount := 0
			for label, count := range counts {
				if count > bestCount || (count == bestCount && label < best) {
					best = label
					bestCount = count
				}
			}

			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	slog.Debug("Label propagation completed", slog.Int("rounds", rounds), slog.Int("node_count", adj.Len()))

	return labels
}
