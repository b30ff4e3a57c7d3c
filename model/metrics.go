package model

// DegreeStats holds the directed degree counts of a thinker
type DegreeStats struct {
	In    int `json:"in"`
	Out   int `json:"out"`
	Total int `json:"total"`
}

// MetricsRecord holds all computed metrics of a single thinker
type MetricsRecord struct {
	InDegree    int     `json:"in_degree"`
	OutDegree   int     `json:"out_degree"`
	TotalDegree int     `json:"total_degree"`
	PageRank    float64 `json:"pagerank"`
	Betweenness float64 `json:"betweenness"` // Raw, not normalized
	ClusterID   int     `json:"cluster_id"`
}

// PathResult represents a shortest path between two thinkers
type PathResult struct {
	Path      []string `json:"path"`
	PathNames []string `json:"path_names"`
	Length    int      `json:"length"` // Number of hops
}

// Cluster represents a community found by label propagation
type Cluster struct {
	ID          int      `json:"id"`
	Label       string   `json:"label"` // Final propagated label (a thinker id)
	Members     []string `json:"members"`
	MemberNames []string `json:"member_names"`
	Size        int      `json:"size"`
}

// RankedThinker is a row of a ranking table
type RankedThinker struct {
	Rank   int     `json:"rank"` // 1-indexed
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Degree int     `json:"degree"`
}

// NetworkStats holds aggregate statistics of the whole network
type NetworkStats struct {
	TotalThinkers    int             `json:"total_thinkers"`
	TotalConnections int             `json:"total_connections"`
	AverageDegree    float64         `json:"average_degree"`
	NetworkDensity   float64         `json:"network_density"`
	MostInfluential  []RankedThinker `json:"most_influential"` // By PageRank
	MostConnected    []RankedThinker `json:"most_connected"`   // By total degree
}

// NetworkAnalysis bundles everything shown in the network analysis panel
type NetworkAnalysis struct {
	Stats              *NetworkStats            `json:"stats"`
	Metrics            map[string]MetricsRecord `json:"metrics"`
	Clusters           []Cluster                `json:"clusters"`
	Bridges            []RankedThinker          `json:"bridges"` // By betweenness
	PageRankIterations int                      `json:"pagerank_iterations"`
	PageRankConverged  bool                     `json:"pagerank_converged"`
	IgnoredConnections int                      `json:"ignored_connections"` // Dangling references
}
