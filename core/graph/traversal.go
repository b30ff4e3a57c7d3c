package graph

// TraversalResult contains a thinker and its distance from the source
type TraversalResult struct {
	NodeID   string
	Distance int
	Path     []string // Path from source to this thinker
}

// BFS performs an undirected breadth-first search from a source thinker.
// Thinkers at maxHops are returned but not expanded, a negative maxHops means no limit.
// Neighbors are visited in edge-list order. Returns nil if the source does not exist.
func BFS(adj *Adjacency, sourceID string, maxHops int) []*TraversalResult {
	source, ok := adj.Index(sourceID)
	if !ok {
		return nil
	}

	visited := make([]bool, adj.Len())
	queue := []queueItem{{
		node:     source,
		distance: 0,
		path:     []int{source},
	}}
	visited[source] = true

	var results []*TraversalResult
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		results = append(results, &TraversalResult{
			NodeID:   adj.Nodes[current.node],
			Distance: current.distance,
			Path:     adj.ids(current.path),
		})

		// Stop if we've reached max hops
		if maxHops >= 0 && current.distance >= maxHops {
			continue
		}

		for _, next := range adj.Neighbors[current.node] {
			if visited[next] {
				continue
			}
			visited[next] = true

			newPath := make([]int, len(current.path), len(current.path)+1)
			copy(newPath, current.path)
			newPath = append(newPath, next)

			queue = append(queue, queueItem{
				node:     next,
				distance: current.distance + 1,
				path:     newPath,
			})
		}
	}

	return results
}

type queueItem struct {
	node     int
	distance int
	path     []int
}

// ShortestPath returns the thinker ids on an undirected shortest path from fromID to toID.
// Among several shortest paths the first one discovered in edge-list order wins.
// Returns nil if either thinker is missing or there is no path.
func ShortestPath(adj *Adjacency, fromID string, toID string) []string {
	from, okFrom := adj.Index(fromID)
	to, okTo := adj.Index(toID)
	if !okFrom || !okTo {
		return nil
	}
	if from == to {
		return []string{fromID}
	}

	parent := make([]int, adj.Len())
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from

	queue := []int{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj.Neighbors[v] {
			if parent[w] >= 0 {
				continue
			}
			parent[w] = v
			if w == to {
				return adj.ids(walkBack(parent, from, to))
			}
			queue = append(queue, w)
		}
	}

	return nil
}

func walkBack(parent []int, from int, to int) []int {
	var reversed []int
	for v := to; v != from; v = parent[v] {
		reversed = append(reversed, v)
	}
	reversed = append(reversed, from)

	path := make([]int, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}

func (a *Adjacency) ids(indices []int) []string {
	ids := make([]string, len(indices))
	for i, idx := range indices {
		ids[i] = a.Nodes[idx]
	}
	return ids
}
