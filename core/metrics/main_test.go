package metrics

import (
	"fmt"

	"github.com/siherrmann/thinkermap/model"
)

func testThinkers(ids ...string) []model.Thinker {
	thinkers := make([]model.Thinker, len(ids))
	for i, id := range ids {
		thinkers[i] = model.Thinker{ID: id, Name: "Thinker " + id}
	}
	return thinkers
}

func testConnection(from string, to string) model.Connection {
	return model.Connection{
		ID:             from + "->" + to,
		FromThinkerID:  from,
		ToThinkerID:    to,
		ConnectionType: model.ConnectionTypeInfluenced,
	}
}

// chainGraph is A -> B -> C -> D
func chainGraph() ([]model.Thinker, []model.Connection) {
	return testThinkers("A", "B", "C", "D"), []model.Connection{
		testConnection("A", "B"),
		testConnection("B", "C"),
		testConnection("C", "D"),
	}
}

// starGraph has five leaves all pointing at X
func starGraph() ([]model.Thinker, []model.Connection) {
	nodes := testThinkers("X", "L1", "L2", "L3", "L4", "L5")
	var edges []model.Connection
	for _, leaf := range []string{"L1", "L2", "L3", "L4", "L5"} {
		edges = append(edges, testConnection(leaf, "X"))
	}
	return nodes, edges
}

// scrambledGraph is a deterministic pseudo random graph with sinks, parallel edges and self-loops
func scrambledGraph(n int) ([]model.Thinker, []model.Connection) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("t%04d", i)
	}
	var edges []model.Connection
	for i := 0; i < n; i++ {
		if i%5 == 0 {
			continue // sink
		}
		edges = append(edges, testConnection(ids[i], ids[(i*7+3)%n]))
		edges = append(edges, testConnection(ids[i], ids[(i*13+1)%n]))
	}
	return testThinkers(ids...), edges
}
