package layout

import (
	"github.com/siherrmann/thinkermap/model"
)

// BuildMap lays out the connection map around a center thinker:
// ego network, ring placement, relaxation, label boxes and parallel edge offsets.
// An absent center gives an empty map, not an error.
func BuildMap(centerID string, snapshot *model.Snapshot, config *model.MapConfig) *model.ConnectionMap {
	c := withDefaults(config)
	if snapshot == nil {
		snapshot = &model.Snapshot{}
	}

	ego := BuildEgoNetwork(centerID, snapshot.Thinkers, snapshot.Connections, c.MaxDepth, c.VisibleTypes)

	result := &model.ConnectionMap{
		CenterID:    centerID,
		Width:       c.Width,
		Height:      c.Height,
		Ego:         ego,
		Positions:   map[string]model.Position{},
		NodeSizes:   map[string]model.NodeSize{},
		EdgeOffsets: map[string]float64{},
		DrawOrder:   []string{},
	}
	if ego.Size() == 0 {
		return result
	}

	positions := AssignRingPositions(centerID, ego.Order, ego.DistanceFromCenter, c.Width, c.Height, &c)
	result.Positions = RelaxPositions(positions, c.RelaxIterations, c.Width, c.Height, &c)

	names := snapshot.ThinkerNames()
	for id, p := range result.Positions {
		result.NodeSizes[id] = NodeSizeFor(names[id], p.IsCenter)
	}

	result.EdgeOffsets = ComputeParallelEdgeOffsets(ego.IncludedEdges, c.EdgeSpacing)
	result.DrawOrder = DrawOrder(result.Positions)

	return result
}
