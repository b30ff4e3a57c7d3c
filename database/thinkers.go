package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/thinkermap/helper"
	"github.com/siherrmann/thinkermap/model"
	loadSql "github.com/siherrmann/thinkermap/sql"
)

// ThinkersDBHandlerFunctions defines the interface for Thinkers database operations.
type ThinkersDBHandlerFunctions interface {
	InsertThinker(ctx context.Context, thinker *model.Thinker) error
	SelectThinker(ctx context.Context, id string) (*model.Thinker, error)
	SelectAllThinkers(ctx context.Context) ([]model.Thinker, error)
	UpdateThinker(ctx context.Context, thinker *model.Thinker) error
	DeleteThinker(ctx context.Context, id string) error
}

// ThinkersDBHandler handles thinker-related database operations
type ThinkersDBHandler struct {
	db *helper.Database
}

// NewThinkersDBHandler creates a new thinkers database handler.
// It loads the thinker-related SQL functions and creates the table.
// If force is true, it will reload the SQL functions even if they already exist.
func NewThinkersDBHandler(db *helper.Database, force bool) (*ThinkersDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	thinkersDbHandler := &ThinkersDBHandler{
		db: db,
	}

	err := loadSql.LoadThinkersSql(thinkersDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load thinkers sql", err)
	}

	err = thinkersDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized ThinkersDBHandler")

	return thinkersDbHandler, nil
}

// CreateTable creates the 'thinkers' table in the database.
// If the table already exists, it does not create it again.
func (h *ThinkersDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_thinkers();`)
	if err != nil {
		log.Panicf("error initializing thinkers table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table thinkers")

	return nil
}

// InsertThinker inserts a new thinker. An empty ID is replaced by a new UUID.
func (h *ThinkersDBHandler) InsertThinker(ctx context.Context, thinker *model.Thinker) error {
	if thinker.ID == "" {
		thinker.ID = uuid.New().String()
	}
	if thinker.Metadata == nil {
		thinker.Metadata = model.Metadata{}
	}

	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM insert_thinker($1, $2, $3, $4, $5)`,
		thinker.ID,
		thinker.Name,
		thinker.BirthYear,
		thinker.DeathYear,
		thinker.Metadata,
	)

	err := scanThinker(row, thinker)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectThinker retrieves a thinker by ID
func (h *ThinkersDBHandler) SelectThinker(ctx context.Context, id string) (*model.Thinker, error) {
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM select_thinker($1)`,
		id,
	)

	thinker := &model.Thinker{}
	err := scanThinker(row, thinker)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return thinker, nil
}

// SelectAllThinkers retrieves all thinkers ordered by creation time
func (h *ThinkersDBHandler) SelectAllThinkers(ctx context.Context) ([]model.Thinker, error) {
	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_all_thinkers()`,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	thinkers := []model.Thinker{}
	for rows.Next() {
		thinker := model.Thinker{}
		err := scanThinker(rows, &thinker)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		thinkers = append(thinkers, thinker)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return thinkers, nil
}

// UpdateThinker updates name, lifespan and metadata of a thinker
func (h *ThinkersDBHandler) UpdateThinker(ctx context.Context, thinker *model.Thinker) error {
	if thinker.Metadata == nil {
		thinker.Metadata = model.Metadata{}
	}

	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM update_thinker($1, $2, $3, $4, $5)`,
		thinker.ID,
		thinker.Name,
		thinker.BirthYear,
		thinker.DeathYear,
		thinker.Metadata,
	)

	err := scanThinker(row, thinker)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// DeleteThinker deletes a thinker by ID. Its connections are deleted with it.
func (h *ThinkersDBHandler) DeleteThinker(ctx context.Context, id string) error {
	_, err := h.db.Instance.ExecContext(
		ctx,
		`SELECT delete_thinker($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanThinker(row scanner, thinker *model.Thinker) error {
	return row.Scan(
		&thinker.ID,
		&thinker.Name,
		&thinker.BirthYear,
		&thinker.DeathYear,
		&thinker.Metadata,
		&thinker.CreatedAt,
	)
}
