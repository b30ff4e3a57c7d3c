package graph

import "github.com/siherrmann/thinkermap/model"

// Adjacency is the transient graph view the engines work on.
// Thinkers are addressed by their index in Nodes, which keeps the input order.
type Adjacency struct {
	Nodes []string
	Names []string

	// Edges are the connections both of whose endpoints exist, in input order
	Edges []model.Connection

	// Out and In hold neighbor indices per edge, so parallel edges appear more than once
	Out [][]int
	In  [][]int

	// Neighbors holds the undirected, deduplicated neighbors in edge-list order.
	// Self-loops are not neighbors.
	Neighbors [][]int

	// Ignored counts connections referencing a thinker that is not in the snapshot
	Ignored int

	index map[string]int
}

// NewAdjacency builds the adjacency view of all connections
func NewAdjacency(nodes []model.Thinker, edges []model.Connection) *Adjacency {
	return NewFilteredAdjacency(nodes, edges, nil)
}

// NewFilteredAdjacency builds the adjacency view of all connections accepted by keep.
// A nil keep accepts every connection. Connections with a missing endpoint are
// counted in Ignored and otherwise skipped, duplicate thinker ids keep their first occurrence.
func NewFilteredAdjacency(nodes []model.Thinker, edges []model.Connection, keep func(model.Connection) bool) *Adjacency {
	a := &Adjacency{
		Nodes: make([]string, 0, len(nodes)),
		Names: make([]string, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		if _, ok := a.index[n.ID]; ok {
			continue
		}
		a.index[n.ID] = len(a.Nodes)
		a.Nodes = append(a.Nodes, n.ID)
		a.Names = append(a.Names, n.Name)
	}

	count := len(a.Nodes)
	a.Out = make([][]int, count)
	a.In = make([][]int, count)
	a.Neighbors = make([][]int, count)
	seen := make([]map[int]struct{}, count)

	for _, e := range edges {
		if keep != nil && !keep(e) {
			continue
		}

		from, okFrom := a.index[e.FromThinkerID]
		to, okTo := a.index[e.ToThinkerID]
		if !okFrom || !okTo {
			a.Ignored++
			continue
		}

		a.Edges = append(a.Edges, e)
		a.Out[from] = append(a.Out[from], to)
		a.In[to] = append(a.In[to], from)

		if e.IsSelfLoop() {
			continue
		}
		a.addNeighbor(seen, from, to)
		a.addNeighbor(seen, to, from)
	}

	return a
}

func (a *Adjacency) addNeighbor(seen []map[int]struct{}, from int, to int) {
	if seen[from] == nil {
		seen[from] = make(map[int]struct{})
	}
	if _, ok := seen[from][to]; ok {
		return
	}
	seen[from][to] = struct{}{}
	a.Neighbors[from] = append(a.Neighbors[from], to)
}

// Len returns the number of thinkers
func (a *Adjacency) Len() int {
	return len(a.Nodes)
}

// Index returns the index of a thinker id
func (a *Adjacency) Index(id string) (int, bool) {
	i, ok := a.index[id]
	return i, ok
}

// Has reports whether the thinker exists in the snapshot
func (a *Adjacency) Has(id string) bool {
	_, ok := a.index[id]
	return ok
}

// TypeFilter returns a keep function accepting only the given connection types.
// An empty list accepts every type.
func TypeFilter(types []model.ConnectionType) func(model.Connection) bool {
	if len(types) == 0 {
		return nil
	}
	allowed := make(map[model.ConnectionType]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return func(c model.Connection) bool {
		_, ok := allowed[c.ConnectionType]
		return ok
	}
}
