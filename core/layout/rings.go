package layout

import (
	"math"
	"sort"
	"strconv"

	"github.com/siherrmann/thinkermap/model"
)

// AssignRingPositions places the center in the middle of the canvas and every other
// thinker on a concentric ring by its distance from the center.
//
// Ring radii grow linearly from the minimum to the maximum radius with
// distance / maxDistance. Thinkers on a ring are spread at equal angles in id order,
// starting at an angle derived from a hash of the distance, and moved radially by a
// small hash-derived jitter. No randomness is involved, so identical input always
// gives identical coordinates. Thinkers without a known distance go on the outermost ring.
// All coordinates are clamped to the canvas margins.
func AssignRingPositions(centerID string, includedNodes []string, distances map[string]int, width float64, height float64, config *model.MapConfig) map[string]model.Position {
	c := withDefaults(config)
	if width <= 0 {
		width = c.Width
	}
	if height <= 0 {
		height = c.Height
	}

	positions := make(map[string]model.Position, len(includedNodes))
	cx, cy := width/2, height/2

	available := math.Min(width, height)/2 - c.Margin
	if available < 0 {
		available = 0
	}
	minRadius := available * c.MinRadiusFraction
	maxRadius := available * c.MaxRadiusFraction

	maxDistance := 0
	for _, id := range includedNodes {
		if d, ok := distances[id]; ok && id != centerID && d > maxDistance {
			maxDistance = d
		}
	}
	if maxDistance == 0 {
		maxDistance = 1
	}

	rings := make(map[int][]string)
	seen := make(map[string]struct{}, len(includedNodes))
	for _, id := range includedNodes {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if id == centerID {
			positions[id] = model.Position{X: cx, Y: cy, IsCenter: true, Distance: 0}
			continue
		}

		d, ok := distances[id]
		if !ok || d <= 0 {
			d = maxDistance
		}
		rings[d] = append(rings[d], id)
	}

	ringDistances := make([]int, 0, len(rings))
	for d := range rings {
		ringDistances = append(ringDistances, d)
	}
	sort.Ints(ringDistances)

	for _, d := range ringDistances {
		ids := rings[d]
		sort.Strings(ids)

		ratio := math.Min(float64(d)/float64(maxDistance), 1)
		radius := minRadius + (maxRadius-minRadius)*ratio
		step := 2 * math.Pi / float64(len(ids))
		start := hashAngle("ring:" + strconv.Itoa(d))

		for i, id := range ids {
			angle := start + float64(i)*step
			jitter := (hashUnit("jitter:"+id)*2 - 1) * c.JitterFraction * radius
			r := radius + jitter

			positions[id] = model.Position{
				X:        clamp(cx+r*math.Cos(angle), c.Margin, width-c.Margin),
				Y:        clamp(cy+r*math.Sin(angle), c.Margin, height-c.Margin),
				Distance: d,
			}
		}
	}

	return positions
}

// clamp limits v to [low, high], collapsing to the middle if the range is empty
func clamp(v float64, low float64, high float64) float64 {
	if low > high {
		return (low + high) / 2
	}
	return math.Max(low, math.Min(high, v))
}
