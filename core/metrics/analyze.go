package metrics

import (
	"math"

	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// Analyze computes everything the network analysis panel shows in one pass
// over a single adjacency view of the snapshot.
func Analyze(snapshot *model.Snapshot, config model.AnalysisConfig) *model.NetworkAnalysis {
	if snapshot == nil {
		snapshot = &model.Snapshot{}
	}

	config = analysisDefaults(config)
	adj := graph.NewAdjacency(snapshot.Thinkers, snapshot.Connections)

	stats := degrees(adj)
	scores, pr := pageRank(adj, &PageRankOptions{
		DampingFactor: config.Damping,
		MaxIterations: config.MaxIterations,
		Tolerance:     config.Tolerance,
	})
	between := betweenness(adj)
	clusters, clusterIDs := clusterSummary(adj, &ClusterOptions{MaxIterations: config.MaxClusterIterations})

	records := make(map[string]model.MetricsRecord, adj.Len())
	for i, id := range adj.Nodes {
		records[id] = model.MetricsRecord{
			InDegree:    stats[i].In,
			OutDegree:   stats[i].Out,
			TotalDegree: stats[i].Total,
			PageRank:    scores[i],
			Betweenness: between[i],
			ClusterID:   clusterIDs[i],
		}
	}

	return &model.NetworkAnalysis{
		Stats:              networkStats(adj, stats, scores, config.TopK),
		Metrics:            records,
		Clusters:           clusters,
		Bridges:            rank(adj, between, stats, config.TopK),
		PageRankIterations: pr.Iterations,
		PageRankConverged:  pr.Converged,
		IgnoredConnections: adj.Ignored,
	}
}

// analysisDefaults treats zero and invalid values as unset
func analysisDefaults(config model.AnalysisConfig) model.AnalysisConfig {
	def := model.DefaultAnalysisConfig()
	if config.TopK <= 0 {
		config.TopK = def.TopK
	}
	if config.Damping <= 0 || config.Damping > 1 || math.IsNaN(config.Damping) {
		config.Damping = def.Damping
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = def.MaxIterations
	}
	if config.Tolerance <= 0 || math.IsNaN(config.Tolerance) {
		config.Tolerance = def.Tolerance
	}
	if config.MaxClusterIterations <= 0 {
		config.MaxClusterIterations = def.MaxClusterIterations
	}
	return config
}
