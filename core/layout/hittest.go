package layout

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/siherrmann/thinkermap/model"
)

// Node box metrics matching the labels drawn on the map.
const (
	charWidth    = 7.0
	labelPadding = 16.0
	minNodeWidth = 60.0
	nodeHeight   = 28.0
	centerScale  = 1.2
)

// NodeSizeFor estimates the box of a thinker label. The center is drawn larger.
func NodeSizeFor(name string, isCenter bool) model.NodeSize {
	width := math.Max(float64(utf8.RuneCountInString(name))*charWidth+labelPadding, minNodeWidth)
	height := nodeHeight
	if isCenter {
		width *= centerScale
		height *= centerScale
	}
	return model.NodeSize{Width: width, Height: height}
}

// DrawOrder returns the order thinkers are painted in: outer rings first,
// ids ascending within a ring, the center last so it is on top.
func DrawOrder(positions map[string]model.Position) []string {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, b := positions[ids[i]], positions[ids[j]]
		if a.IsCenter != b.IsCenter {
			return b.IsCenter
		}
		if a.Distance != b.Distance {
			return a.Distance > b.Distance
		}
		return ids[i] < ids[j]
	})

	return ids
}

// HitTest returns the topmost thinker whose box, grown by tolerance, contains the point.
// Candidates are checked in reverse draw order. Thinkers without a size use the NodeSizeFor box of an empty label.
func HitTest(point model.Point, positions map[string]model.Position, sizes map[string]model.NodeSize, tolerance float64) (string, bool) {
	if tolerance < 0 {
		tolerance = 0
	}

	order := DrawOrder(positions)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		p := positions[id]

		size, ok := sizes[id]
		if !ok {
			size = NodeSizeFor("", p.IsCenter)
		}

		if math.Abs(point.X-p.X) <= size.Width/2+tolerance && math.Abs(point.Y-p.Y) <= size.Height/2+tolerance {
			return id, true
		}
	}

	return "", false
}
