package layout

import (
	"sort"

	"github.com/siherrmann/thinkermap/model"
)

// ComputeParallelEdgeOffsets spreads connections between the same two thinkers apart.
//
// Connections are grouped by their unordered thinker pair and sorted by id, then
// get perpendicular offsets spaced evenly around zero, e.g. -spacing/2 and +spacing/2
// for two connections. Offsets are relative to the direction from the lower to the
// higher thinker id. A single connection gets offset 0.
func ComputeParallelEdgeOffsets(edges []model.Connection, spacing float64) map[string]float64 {
	if spacing <= 0 {
		spacing = model.DefaultMapConfig().EdgeSpacing
	}

	groups := make(map[string][]model.Connection)
	for _, e := range edges {
		key := pairKey(e.FromThinkerID, e.ToThinkerID)
		groups[key] = append(groups[key], e)
	}

	offsets := make(map[string]float64, len(edges))
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].ID < group[j].ID
		})

		middle := float64(len(group)-1) / 2
		for i, e := range group {
			offsets[e.ID] = (float64(i) - middle) * spacing
		}
	}

	return offsets
}

// pairKey identifies an unordered thinker pair
func pairKey(a string, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
