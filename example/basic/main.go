package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/thinkermap"
	"github.com/siherrmann/thinkermap/core/layout"
	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
)

type seedThinker struct {
	name  string
	birth int
	death int
}

var seedThinkers = []seedThinker{
	{"Immanuel Kant", 1724, 1804},
	{"Georg Wilhelm Friedrich Hegel", 1770, 1831},
	{"Arthur Schopenhauer", 1788, 1860},
	{"Karl Marx", 1818, 1883},
	{"Friedrich Nietzsche", 1844, 1900},
	{"Martin Heidegger", 1889, 1976},
	{"Hannah Arendt", 1906, 1975},
}

var seedConnections = []struct {
	from, to       string
	connectionType model.ConnectionType
	strength       int
	bidirectional  bool
}{
	{"Immanuel Kant", "Georg Wilhelm Friedrich Hegel", model.ConnectionTypeInfluenced, 5, false},
	{"Immanuel Kant", "Arthur Schopenhauer", model.ConnectionTypeInfluenced, 4, false},
	{"Arthur Schopenhauer", "Georg Wilhelm Friedrich Hegel", model.ConnectionTypeCritiqued, 4, false},
	{"Georg Wilhelm Friedrich Hegel", "Karl Marx", model.ConnectionTypeBuiltUpon, 5, false},
	{"Arthur Schopenhauer", "Friedrich Nietzsche", model.ConnectionTypeInfluenced, 5, false},
	{"Friedrich Nietzsche", "Martin Heidegger", model.ConnectionTypeInfluenced, 3, false},
	{"Martin Heidegger", "Hannah Arendt", model.ConnectionTypeInfluenced, 4, true},
	{"Hannah Arendt", "Karl Marx", model.ConnectionTypeCritiqued, 3, false},
	{"Hannah Arendt", "Martin Heidegger", model.ConnectionTypeCritiqued, 2, false},
}

func main() {
	ctx := context.Background()

	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	m, err := thinkermap.NewThinkerMap(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create thinker map: %v", err)
	}
	defer m.Close()

	// Seed the catalogue
	fmt.Println("Inserting thinkers...")
	ids := map[string]string{}
	for _, s := range seedThinkers {
		birth, death := s.birth, s.death
		thinker := &model.Thinker{Name: s.name, BirthYear: &birth, DeathYear: &death}
		if err := m.Thinkers.InsertThinker(ctx, thinker); err != nil {
			log.Fatalf("Failed to insert thinker: %v", err)
		}
		ids[s.name] = thinker.ID
		fmt.Printf("  %s (%s)\n", thinker.Name, thinker.Lifespan())
	}

	for _, s := range seedConnections {
		strength, bidirectional := s.strength, s.bidirectional
		connection := &model.Connection{
			FromThinkerID:  ids[s.from],
			ToThinkerID:    ids[s.to],
			ConnectionType: s.connectionType,
			Strength:       &strength,
			Bidirectional:  &bidirectional,
		}
		if err := m.Connections.InsertConnection(ctx, connection); err != nil {
			log.Fatalf("Failed to insert connection: %v", err)
		}
	}
	fmt.Printf("Inserted %d thinkers and %d connections\n", len(seedThinkers), len(seedConnections))

	// Network analysis
	analysis, err := m.NetworkAnalysis(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to analyze network: %v", err)
	}

	fmt.Printf("\nNetwork: %d thinkers, %d connections, average degree %.2f, density %.3f\n",
		analysis.Stats.TotalThinkers,
		analysis.Stats.TotalConnections,
		analysis.Stats.AverageDegree,
		analysis.Stats.NetworkDensity,
	)

	fmt.Println("\nMost influential (PageRank):")
	for _, r := range analysis.Stats.MostInfluential {
		fmt.Printf("  %d. %s (%.4f)\n", r.Rank, r.Name, r.Score)
	}

	fmt.Println("\nBridges (betweenness):")
	for _, r := range analysis.Bridges {
		fmt.Printf("  %d. %s (%.1f)\n", r.Rank, r.Name, r.Score)
	}

	fmt.Println("\nClusters:")
	for _, c := range analysis.Clusters {
		fmt.Printf("  Cluster %d (%d): %v\n", c.ID, c.Size, c.MemberNames)
	}

	// Shortest path
	path, err := m.ShortestPath(ctx, ids["Immanuel Kant"], ids["Hannah Arendt"])
	if err != nil {
		log.Fatalf("Failed to find path: %v", err)
	}
	if path != nil {
		fmt.Printf("\nPath from Kant to Arendt (%d hops): %v\n", path.Length, path.PathNames)
	}

	// Connection map around Hegel
	config := model.DefaultMapConfig()
	config.VisibleTypes = []model.ConnectionType{model.ConnectionTypeInfluenced, model.ConnectionTypeBuiltUpon}

	connectionMap, err := m.ConnectionMap(ctx, ids["Georg Wilhelm Friedrich Hegel"], &config)
	if err != nil {
		log.Fatalf("Failed to build connection map: %v", err)
	}

	names := map[string]string{}
	for name, id := range ids {
		names[id] = name
	}

	fmt.Printf("\nConnection map around Hegel (%d thinkers):\n", connectionMap.Ego.Size())
	for _, id := range connectionMap.DrawOrder {
		p := connectionMap.Positions[id]
		fmt.Printf("  %-30s ring %d at (%.0f, %.0f)\n", names[id], p.Distance, p.X, p.Y)
	}

	fmt.Println("\nConnections on the map:")
	for _, e := range connectionMap.Ego.IncludedEdges {
		arrow := "->"
		if e.IsBidirectional() {
			arrow = "<->"
		}
		fmt.Printf("  %s %s %s (%s, offset %.0f)\n", names[e.FromThinkerID], arrow, names[e.ToThinkerID], e.ConnectionType, connectionMap.EdgeOffsets[e.ID])
	}

	// Hit test at the center of the canvas
	center := model.Point{X: connectionMap.Width / 2, Y: connectionMap.Height / 2}
	if id, ok := layout.HitTest(center, connectionMap.Positions, connectionMap.NodeSizes, config.HitTolerance); ok {
		fmt.Printf("\nClicking the canvas center selects %s\n", names[id])
	}
}
