package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
	loadSql "github.com/siherrmann/thinkermap/sql"
)

// ConnectionsDBHandlerFunctions defines the interface for Connections database operations.
type ConnectionsDBHandlerFunctions interface {
	InsertConnection(ctx context.Context, connection *model.Connection) error
	SelectConnection(ctx context.Context, id string) (*model.Connection, error)
	SelectAllConnections(ctx context.Context) ([]model.Connection, error)
	SelectConnectionsByTypes(ctx context.Context, types []model.ConnectionType) ([]model.Connection, error)
	SelectConnectionsOfThinker(ctx context.Context, thinkerID string) ([]model.Connection, error)
	UpdateConnectionStrength(ctx context.Context, id string, strength *int) (*model.Connection, error)
	DeleteConnection(ctx context.Context, id string) error
}

// ConnectionsDBHandler handles connection-related database operations
type ConnectionsDBHandler struct {
	db *helper.Database
}

// NewConnectionsDBHandler creates a new connections database handler.
// The thinkers table has to exist, connections reference it.
// If force is true, it will reload the SQL functions even if they already exist.
func NewConnectionsDBHandler(db *helper.Database, force bool) (*ConnectionsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	connectionsDbHandler := &ConnectionsDBHandler{
		db: db,
	}

	err := loadSql.LoadConnectionsSql(connectionsDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load connections sql", err)
	}

	err = connectionsDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized ConnectionsDBHandler")

	return connectionsDbHandler, nil
}

// CreateTable creates the 'connections' table in the database.
// If the table already exists, it does not create it again.
// It also creates the connection_type enum and all necessary indexes.
func (h *ConnectionsDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_connections();`)
	if err != nil {
		log.Panicf("error initializing connections table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table connections")

	return nil
}

// InsertConnection inserts a new connection. An empty ID is replaced by a new UUID.
func (h *ConnectionsDBHandler) InsertConnection(ctx context.Context, connection *model.Connection) error {
	if !connection.ConnectionType.Valid() {
		return helper.NewError("connection type validation", fmt.Errorf("invalid connection type %q", connection.ConnectionType))
	}
	if connection.Strength != nil && (*connection.Strength < 1 || *connection.Strength > 5) {
		return helper.NewError("strength validation", fmt.Errorf("strength %d out of range 1..5", *connection.Strength))
	}
	if connection.ID == "" {
		connection.ID = uuid.New().String()
	}
	if connection.Metadata == nil {
		connection.Metadata = model.Metadata{}
	}

	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM insert_connection($1, $2, $3, $4, $5, $6, $7, $8)`,
		connection.ID,
		connection.FromThinkerID,
		connection.ToThinkerID,
		connection.ConnectionType,
		connection.Strength,
		connection.Bidirectional,
		connection.Name,
		connection.Metadata,
	)

	err := scanConnection(row, connection)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectConnection retrieves a connection by ID
func (h *ConnectionsDBHandler) SelectConnection(ctx context.Context, id string) (*model.Connection, error) {
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM select_connection($1)`,
		id,
	)

	connection := &model.Connection{}
	err := scanConnection(row, connection)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return connection, nil
}

// SelectAllConnections retrieves all connections ordered by creation time
func (h *ConnectionsDBHandler) SelectAllConnections(ctx context.Context) ([]model.Connection, error) {
	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_all_connections()`,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}

	return collectConnections(rows)
}

// SelectConnectionsByTypes retrieves all connections of the given types.
// An empty list selects all connections.
func (h *ConnectionsDBHandler) SelectConnectionsByTypes(ctx context.Context, types []model.ConnectionType) ([]model.Connection, error) {
	if len(types) == 0 {
		return h.SelectAllConnections(ctx)
	}

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_connections_by_types($1)`,
		pq.Array(names),
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}

	return collectConnections(rows)
}

// SelectConnectionsOfThinker retrieves all connections from or to a thinker
func (h *ConnectionsDBHandler) SelectConnectionsOfThinker(ctx context.Context, thinkerID string) ([]model.Connection, error) {
	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_connections_of_thinker($1)`,
		thinkerID,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}

	return collectConnections(rows)
}

// UpdateConnectionStrength sets the strength of a connection, nil clears it
func (h *ConnectionsDBHandler) UpdateConnectionStrength(ctx context.Context, id string, strength *int) (*model.Connection, error) {
	if strength != nil && (*strength < 1 || *strength > 5) {
		return nil, helper.NewError("strength validation", fmt.Errorf("strength %d out of range 1..5", *strength))
	}

	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM update_connection_strength($1, $2)`,
		id,
		strength,
	)

	connection := &model.Connection{}
	err := scanConnection(row, connection)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return connection, nil
}

// DeleteConnection deletes a connection by ID
func (h *ConnectionsDBHandler) DeleteConnection(ctx context.Context, id string) error {
	_, err := h.db.Instance.ExecContext(
		ctx,
		`SELECT delete_connection($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

func collectConnections(rows *sql.Rows) ([]model.Connection, error) {
	defer rows.Close()

	connections := []model.Connection{}
	for rows.Next() {
		connection := model.Connection{}
		err := scanConnection(rows, &connection)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		connections = append(connections, connection)
	}

	err := rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return connections, nil
}

func scanConnection(row scanner, connection *model.Connection) error {
	return row.Scan(
		&connection.ID,
		&connection.FromThinkerID,
		&connection.ToThinkerID,
		&connection.ConnectionType,
		&connection.Strength,
		&connection.Bidirectional,
		&connection.Name,
		&connection.Metadata,
		&connection.CreatedAt,
	)
}
