package layout

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

func testConnection(id string, from string, to string, connectionType model.ConnectionType) model.Connection {
	return model.Connection{
		ID:             id,
		FromThinkerID:  from,
		ToThinkerID:    to,
		ConnectionType: connectionType,
	}
}

// depthGraph is C - N1 - N2 - N3 plus a critique C -> K
func depthGraph() ([]model.Thinker, []model.Connection) {
	return testThinkers("C", "N1", "N2", "N3", "K"), []model.Connection{
		testConnection("e1", "C", "N1", model.ConnectionTypeInfluenced),
		testConnection("e2", "N2", "N1", model.ConnectionTypeBuiltUpon),
		testConnection("e3", "N2", "N3", model.ConnectionTypeInfluenced),
		testConnection("e4", "C", "K", model.ConnectionTypeCritiqued),
	}
}

// crowdedSnapshot has a center with many neighbors and second-degree thinkers
func crowdedSnapshot(neighbors int) *model.Snapshot {
	ids := []string{"center"}
	var edges []model.Connection
	for i := 0; i < neighbors; i++ {
		n := fmt.Sprintf("n%02d", i)
		m := fmt.Sprintf("m%02d", i)
		ids = append(ids, n, m)
		edges = append(edges, testConnection("c-"+n, "center", n, model.ConnectionTypeInfluenced))
		edges = append(edges, testConnection(n+"-"+m, n, m, model.ConnectionTypeSynthesized))
	}
	return &model.Snapshot{Thinkers: testThinkers(ids...), Connections: edges}
}
