package thinkermap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/siherrmann/thinkermap/core/layout"
	"github.com/siherrmann/thinkermap/core/metrics"
	"github.com/siherrmann/thinkermap/database"
	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
	loadSql "github.com/siherrmann/thinkermap/sql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	mapCacheExpiration = 10 * time.Minute
	mapCacheCleanup    = 20 * time.Minute
)

// ThinkerMap provides a unified interface to the database handlers
// and the analysis and layout engines
type ThinkerMap struct {
	DB          *helper.Database
	Thinkers    *database.ThinkersDBHandler
	Connections *database.ConnectionsDBHandler
	// Connection maps by snapshot fingerprint, center and map config
	maps *cache.Cache
	// Logging and tracing
	log    *slog.Logger
	tracer trace.Tracer
}

// NewThinkerMap creates a new ThinkerMap instance with all handlers initialized
func NewThinkerMap(config *helper.DatabaseConfiguration) (*ThinkerMap, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("thinkermap", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// Thinkers first, connections reference them
	// force=false to not reload if functions already exist
	thinkers, err := database.NewThinkersDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create thinkers handler", err)
	}

	connections, err := database.NewConnectionsDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create connections handler", err)
	}

	return &ThinkerMap{
		DB:          db,
		Thinkers:    thinkers,
		Connections: connections,
		maps:        cache.New(mapCacheExpiration, mapCacheCleanup),
		log:         logger,
		tracer:      otel.Tracer("github.com/siherrmann/thinkermap"),
	}, nil
}

// Close closes the database connection
func (m *ThinkerMap) Close() error {
	return m.DB.Close()
}

// LoadSnapshot reads all thinkers and connections into a snapshot the engines can work on
func (m *ThinkerMap) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	ctx, span := m.tracer.Start(ctx, "ThinkerMap.LoadSnapshot")
	defer span.End()

	thinkers, err := m.Thinkers.SelectAllThinkers(ctx)
	if err != nil {
		return nil, failSpan(span, helper.NewError("select thinkers", err))
	}

	connections, err := m.Connections.SelectAllConnections(ctx)
	if err != nil {
		return nil, failSpan(span, helper.NewError("select connections", err))
	}

	span.SetAttributes(
		attribute.Int("thinkers.count", len(thinkers)),
		attribute.Int("connections.count", len(connections)),
	)

	return &model.Snapshot{Thinkers: thinkers, Connections: connections}, nil
}

// NetworkAnalysis computes the statistics, rankings and clusters of the whole network.
// A nil config uses model.DefaultAnalysisConfig, zero fields fall back to their defaults.
func (m *ThinkerMap) NetworkAnalysis(ctx context.Context, config *model.AnalysisConfig) (*model.NetworkAnalysis, error) {
	ctx, span := m.tracer.Start(ctx, "ThinkerMap.NetworkAnalysis")
	defer span.End()

	snapshot, err := m.LoadSnapshot(ctx)
	if err != nil {
		return nil, failSpan(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, failSpan(span, helper.NewError("network analysis", err))
	}

	c := model.DefaultAnalysisConfig()
	if config != nil {
		c = *config
	}

	analysis := metrics.Analyze(snapshot, c)

	span.SetAttributes(
		attribute.Int("pagerank.iterations", analysis.PageRankIterations),
		attribute.Bool("pagerank.converged", analysis.PageRankConverged),
		attribute.Int("clusters.count", len(analysis.Clusters)),
		attribute.Int("connections.ignored", analysis.IgnoredConnections),
	)
	m.log.Debug("Computed network analysis", slog.Int("thinkers", analysis.Stats.TotalThinkers), slog.Int("clusters", len(analysis.Clusters)))

	return analysis, nil
}

// ConnectionMap lays out the ego network around a thinker.
// Layouts are memoized until the snapshot or the map config changes,
// the returned map is shared between callers and must not be modified.
// A nil config uses model.DefaultMapConfig.
func (m *ThinkerMap) ConnectionMap(ctx context.Context, centerID string, config *model.MapConfig) (*model.ConnectionMap, error) {
	ctx, span := m.tracer.Start(ctx, "ThinkerMap.ConnectionMap", trace.WithAttributes(attribute.String("center.id", centerID)))
	defer span.End()

	snapshot, err := m.LoadSnapshot(ctx)
	if err != nil {
		return nil, failSpan(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, failSpan(span, helper.NewError("connection map", err))
	}

	c := model.DefaultMapConfig()
	if config != nil {
		c = *config
	}

	key := mapCacheKey(snapshot, centerID, c)
	if cached, ok := m.maps.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*model.ConnectionMap), nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	connectionMap := layout.BuildMap(centerID, snapshot, &c)
	m.maps.SetDefault(key, connectionMap)

	span.SetAttributes(attribute.Int("ego.size", connectionMap.Ego.Size()))
	m.log.Debug("Computed connection map", slog.String("center", centerID), slog.Int("thinkers", connectionMap.Ego.Size()))

	return connectionMap, nil
}

// ShortestPath finds a shortest chain of connections between two thinkers, ignoring direction.
// It returns nil without error if there is no path.
func (m *ThinkerMap) ShortestPath(ctx context.Context, fromID string, toID string) (*model.PathResult, error) {
	ctx, span := m.tracer.Start(ctx, "ThinkerMap.ShortestPath", trace.WithAttributes(
		attribute.String("from.id", fromID),
		attribute.String("to.id", toID),
	))
	defer span.End()

	snapshot, err := m.LoadSnapshot(ctx)
	if err != nil {
		return nil, failSpan(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, failSpan(span, helper.NewError("shortest path", err))
	}

	path := metrics.FindShortestPath(fromID, toID, snapshot.Thinkers, snapshot.Connections)
	if path != nil {
		span.SetAttributes(attribute.Int("path.length", path.Length))
	}

	return path, nil
}

// mapCacheKey covers every input of the layout
func mapCacheKey(snapshot *model.Snapshot, centerID string, config model.MapConfig) string {
	return fmt.Sprintf("%s|%s|%+v", snapshot.Fingerprint(), centerID, config)
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
