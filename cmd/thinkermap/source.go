package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/siherrmann/thinkermap"
	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
)

// loadSnapshot reads the snapshot from a JSON file, or from the database
// configured by the THINKERMAP_DB_* environment if path is empty.
func loadSnapshot(ctx context.Context, path string) (*model.Snapshot, error) {
	if path != "" {
		return readSnapshotFile(path)
	}

	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		return nil, helper.NewError("database configuration", err)
	}

	m, err := thinkermap.NewThinkerMap(dbConfig)
	if err != nil {
		return nil, helper.NewError("connect", err)
	}
	defer m.Close()

	return m.LoadSnapshot(ctx)
}

func readSnapshotFile(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read snapshot", err)
	}

	snapshot := &model.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, helper.NewError("parse snapshot", err)
	}

	for i, c := range snapshot.Connections {
		connectionType, err := model.ParseConnectionType(string(c.ConnectionType))
		if err != nil {
			return nil, helper.NewError("parse snapshot", err)
		}
		snapshot.Connections[i].ConnectionType = connectionType
	}

	return snapshot, nil
}
