package model

// Point is a canvas coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position is the layout position of a thinker on the connection map
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	IsCenter bool    `json:"is_center"`
	Distance int     `json:"distance"` // BFS hops from the center
}

// Point returns the coordinate of the position
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// NodeSize is the size of the box a thinker is drawn in
type NodeSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EgoNetwork is the subgraph reachable from a center thinker within a bounded number of hops
type EgoNetwork struct {
	CenterID           string              `json:"center_id"`
	IncludedNodeIDs    map[string]struct{} `json:"-"`
	Order              []string            `json:"order"` // BFS discovery order, center first
	IncludedEdges      []Connection        `json:"included_edges"`
	DistanceFromCenter map[string]int      `json:"distance_from_center"`
}

// Contains reports whether the thinker is part of the ego network
func (e *EgoNetwork) Contains(id string) bool {
	_, ok := e.IncludedNodeIDs[id]
	return ok
}

// Size returns the number of included thinkers
func (e *EgoNetwork) Size() int {
	return len(e.IncludedNodeIDs)
}

// ConnectionMap is everything the presentation layer needs to draw the map
type ConnectionMap struct {
	CenterID    string              `json:"center_id"`
	Width       float64             `json:"width"`
	Height      float64             `json:"height"`
	Ego         *EgoNetwork         `json:"ego"`
	Positions   map[string]Position `json:"positions"`
	NodeSizes   map[string]NodeSize `json:"node_sizes"`
	EdgeOffsets map[string]float64  `json:"edge_offsets"`
	DrawOrder   []string            `json:"draw_order"`
}
