package model

// AnalysisConfig configures the network analysis
type AnalysisConfig struct {
	// Ranking tables
	TopK int `json:"top_k" yaml:"top_k"`

	// PageRank parameters
	Damping       float64 `json:"damping" yaml:"damping"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`

	// Label propagation
	MaxClusterIterations int `json:"max_cluster_iterations" yaml:"max_cluster_iterations"`
}

// DefaultAnalysisConfig returns the configuration used by the analysis panel
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TopK:                 5,
		Damping:              0.85,
		MaxIterations:        100,
		Tolerance:            1e-6,
		MaxClusterIterations: 100,
	}
}

// MapConfig configures the connection map layout
type MapConfig struct {
	// Canvas
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Margin float64 `json:"margin" yaml:"margin"`

	// Ego network
	MaxDepth     int              `json:"max_depth" yaml:"max_depth"`
	VisibleTypes []ConnectionType `json:"visible_types,omitempty" yaml:"visible_types,omitempty"` // Empty means all types

	// Ring placement, radii as fraction of the available radius
	MinRadiusFraction float64 `json:"min_radius_fraction" yaml:"min_radius_fraction"`
	MaxRadiusFraction float64 `json:"max_radius_fraction" yaml:"max_radius_fraction"`
	JitterFraction    float64 `json:"jitter_fraction" yaml:"jitter_fraction"`

	// Relaxation
	RelaxIterations    int     `json:"relax_iterations" yaml:"relax_iterations"`
	RepulsionThreshold float64 `json:"repulsion_threshold" yaml:"repulsion_threshold"`
	RepulsionStrength  float64 `json:"repulsion_strength" yaml:"repulsion_strength"`
	BoundaryStrength   float64 `json:"boundary_strength" yaml:"boundary_strength"`
	Damping            float64 `json:"damping" yaml:"damping"`
	MaxStep            float64 `json:"max_step" yaml:"max_step"`

	// Edges and interaction
	EdgeSpacing  float64 `json:"edge_spacing" yaml:"edge_spacing"`
	HitTolerance float64 `json:"hit_tolerance" yaml:"hit_tolerance"`
}

// DefaultMapConfig returns the configuration used by the connection map
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Width:              1200,
		Height:             800,
		Margin:             60,
		MaxDepth:           2,
		VisibleTypes:       nil, // All types
		MinRadiusFraction:  0.3,
		MaxRadiusFraction:  1.0,
		JitterFraction:     0.04,
		RelaxIterations:    120,
		RepulsionThreshold: 140,
		RepulsionStrength:  4000,
		BoundaryStrength:   0.2,
		Damping:            0.85,
		MaxStep:            20,
		EdgeSpacing:        18,
		HitTolerance:       4,
	}
}
