package layout

import (
	"github.com/siherrmann/thinkermap/core/graph"
	"github.com/siherrmann/thinkermap/model"
)

// BuildEgoNetwork collects every thinker within maxDepth hops of the center.
//
// Only connections of a visible type are followed, in both directions. A thinker
// at maxDepth is included but not expanded. An empty visibleTypes list shows all
// types. If the center is not in the snapshot the result is empty.
// IncludedEdges are the visible connections between included thinkers, in input order.
func BuildEgoNetwork(centerID string, nodes []model.Thinker, edges []model.Connection, maxDepth int, visibleTypes []model.ConnectionType) *model.EgoNetwork {
	ego := &model.EgoNetwork{
		CenterID:           centerID,
		IncludedNodeIDs:    make(map[string]struct{}),
		Order:              []string{},
		IncludedEdges:      []model.Connection{},
		DistanceFromCenter: make(map[string]int),
	}

	if maxDepth < 0 {
		maxDepth = 0
	}

	adj := graph.NewFilteredAdjacency(nodes, edges, graph.TypeFilter(visibleTypes))
	if !adj.Has(centerID) {
		return ego
	}

	results := graph.BFS(adj, centerID, maxDepth)

	for _, r := range results {
		ego.IncludedNodeIDs[r.NodeID] = struct{}{}
		ego.Order = append(ego.Order, r.NodeID)
		ego.DistanceFromCenter[r.NodeID] = r.Distance
	}

	for _, e := range adj.Edges {
		if ego.Contains(e.FromThinkerID) && ego.Contains(e.ToThinkerID) {
			ego.IncludedEdges = append(ego.IncludedEdges, e)
		}
	}

	return ego
}
