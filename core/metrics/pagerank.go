package metrics

import (
	"log/slog"
	"math"

	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// PageRank configuration constants.
const (
	// DefaultDampingFactor is the probability of following a connection instead of jumping.
	DefaultDampingFactor = 0.85

	// DefaultMaxIterations caps the power iteration.
	DefaultMaxIterations = 100

	// DefaultTolerance stops the iteration once the largest score change is below it.
	DefaultTolerance = 1e-6
)

// PageRankOptions configures the PageRank computation
type PageRankOptions struct {
	DampingFactor float64 // In (0, 1], zero means unset
	MaxIterations int     // > 0
	Tolerance     float64 // > 0
}

// Validate replaces invalid and unset values with their defaults.
func (o *PageRankOptions) Validate() {
	if o.DampingFactor <= 0 || o.DampingFactor > 1 || math.IsNaN(o.DampingFactor) {
		o.DampingFactor = DefaultDampingFactor
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		o.Tolerance = DefaultTolerance
	}
}

// DefaultPageRankOptions returns the standard options
func DefaultPageRankOptions() *PageRankOptions {
	return &PageRankOptions{
		DampingFactor: DefaultDampingFactor,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// PageRankResult contains the output of the PageRank computation
type PageRankResult struct {
	// Scores maps thinker id to score, scores sum to 1
	Scores     map[string]float64
	Iterations int
	Converged  bool
	MaxDiff    float64
}

// ComputePageRank computes PageRank scores over the directed connections.
//
// Thinkers without outgoing connections spread their score evenly over all
// thinkers, so no rank is lost and the scores keep summing to 1.
// The iteration stops at the tolerance or after MaxIterations, whichever comes first.
func ComputePageRank(nodes []model.Thinker, edges []model.Connection, opts *PageRankOptions) *PageRankResult {
	adj := graph.NewAdjacency(nodes, edges)
	scores, result := pageRank(adj, opts)

	result.Scores = make(map[string]float64, len(scores))
	for i, s := range scores {
		result.Scores[adj.Nodes[i]] = s
	}

	return result
}

func pageRank(adj *graph.Adjacency, opts *PageRankOptions) ([]float64, *PageRankResult) {
	if opts == nil {
		opts = DefaultPageRankOptions()
	} else {
		copied := *opts
		opts = &copied
		opts.Validate()
	}

	n := adj.Len()
	if n == 0 {
		return nil, &PageRankResult{Converged: true}
	}

	N := float64(n)
	d := opts.DampingFactor

	scores := make([]float64, n)
	newScores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / N
	}

	var sinks []int
	for i := 0; i < n; i++ {
		if len(adj.Out[i]) == 0 {
			sinks = append(sinks, i)
		}
	}

	result := &PageRankResult{}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		// Sink mass is redistributed evenly
		sinkMass := 0.0
		for _, s := range sinks {
			sinkMass += scores[s]
		}
		base := (1-d)/N + d*sinkMass/N

		for i := range newScores {
			newScores[i] = base
		}
		for i := 0; i < n; i++ {
			out := adj.Out[i]
			if len(out) == 0 {
				continue
			}
			share := d * scores[i] / float64(len(out))
			for _, j := range out {
				newScores[j] += share
			}
		}

		maxDiff := 0.0
		for i := range scores {
			diff := math.Abs(newScores[i] - scores[i])
			if diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, newScores = newScores, scores
		result.Iterations = iter + 1
		result.MaxDiff = maxDiff

		if maxDiff < opts.Tolerance {
			result.Converged = true
			break
		}
	}

	slog.Debug("PageRank completed",
		slog.Int("iterations", result.Iterations),
		slog.Bool("converged", result.Converged),
		slog.Float64("max_diff", result.MaxDiff),
		slog.Int("node_count", n),
	)

	return scores, result
}
