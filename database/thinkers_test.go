package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/thinkermap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThinkersNewThinkersDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewThinkersDBHandler", func(t *testing.T) {
		thinkersDbHandler, err := NewThinkersDBHandler(database, true)
		assert.NoError(t, err, "Expected NewThinkersDBHandler to not return an error")
		require.NotNil(t, thinkersDbHandler, "Expected NewThinkersDBHandler to return a non-nil instance")
		require.NotNil(t, thinkersDbHandler.db, "Expected NewThinkersDBHandler to have a non-nil database instance")
		require.NotNil(t, thinkersDbHandler.db.Instance, "Expected NewThinkersDBHandler to have a non-nil database connection instance")
	})

	t.Run("Invalid call NewThinkersDBHandler with nil database", func(t *testing.T) {
		_, err := NewThinkersDBHandler(nil, false)
		assert.Error(t, err, "Expected error when creating ThinkersDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil", "Expected specific error message for nil database connection")
	})
}

func TestThinkersInsert(t *testing.T) {
	database := initDB(t)

	thinkersDbHandler, err := NewThinkersDBHandler(database, true)
	require.NoError(t, err, "Expected NewThinkersDBHandler to not return an error")

	ctx := context.Background()

	t.Run("Insert thinker", func(t *testing.T) {
		thinker := &model.Thinker{
			Name:      "Immanuel Kant",
			BirthYear: intPtr(1724),
			DeathYear: intPtr(1804),
			Metadata:  model.Metadata{"field": "philosophy"},
		}

		err := thinkersDbHandler.InsertThinker(ctx, thinker)
		assert.NoError(t, err, "Expected Insert to not return an error")
		assert.NotEmpty(t, thinker.ID, "Expected inserted thinker to have an ID")
		assert.WithinDuration(t, time.Now(), thinker.CreatedAt, 2*time.Second, "Expected CreatedAt to be set")
		assert.Equal(t, "Immanuel Kant", thinker.Name, "Expected name to match")
		assert.Equal(t, "1724-1804", thinker.Lifespan(), "Expected lifespan to round trip")
		assert.Equal(t, "philosophy", thinker.Metadata["field"], "Expected metadata to round trip")

		thinkersDbHandler.DeleteThinker(ctx, thinker.ID)
	})

	t.Run("Insert thinker with given ID", func(t *testing.T) {
		id := uuid.New().String()
		thinker := &model.Thinker{ID: id, Name: "Hannah Arendt"}

		err := thinkersDbHandler.InsertThinker(ctx, thinker)
		assert.NoError(t, err, "Expected Insert to not return an error")
		assert.Equal(t, id, thinker.ID, "Expected given ID to be kept")
		assert.Nil(t, thinker.DeathYear, "Expected unknown death year to stay nil")

		thinkersDbHandler.DeleteThinker(ctx, thinker.ID)
	})

	t.Run("Insert thinker with duplicate ID", func(t *testing.T) {
		thinker := insertTestThinker(t, thinkersDbHandler, "Original")

		err := thinkersDbHandler.InsertThinker(ctx, &model.Thinker{ID: thinker.ID, Name: "Duplicate"})
		assert.Error(t, err, "Expected error for duplicate ID")
	})
}

func TestThinkersGet(t *testing.T) {
	database := initDB(t)

	thinkersDbHandler, err := NewThinkersDBHandler(database, true)
	require.NoError(t, err)

	ctx := context.Background()
	thinker := insertTestThinker(t, thinkersDbHandler, "Simone de Beauvoir")

	t.Run("Select existing thinker", func(t *testing.T) {
		retrieved, err := thinkersDbHandler.SelectThinker(ctx, thinker.ID)
		assert.NoError(t, err, "Expected Get to not return an error")
		require.NotNil(t, retrieved, "Expected Get to return a non-nil thinker")
		assert.Equal(t, thinker.ID, retrieved.ID, "Expected IDs to match")
		assert.Equal(t, thinker.Name, retrieved.Name, "Expected names to match")
	})

	t.Run("Select unknown thinker", func(t *testing.T) {
		_, err := thinkersDbHandler.SelectThinker(ctx, uuid.New().String())
		assert.Error(t, err, "Expected error for unknown thinker")
	})
}

func TestThinkersGetAll(t *testing.T) {
	database := initDB(t)

	thinkersDbHandler, err := NewThinkersDBHandler(database, true)
	require.NoError(t, err)

	ctx := context.Background()
	inserted := []*model.Thinker{
		insertTestThinker(t, thinkersDbHandler, "Thinker A"),
		insertTestThinker(t, thinkersDbHandler, "Thinker B"),
		insertTestThinker(t, thinkersDbHandler, "Thinker C"),
	}

	thinkers, err := thinkersDbHandler.SelectAllThinkers(ctx)
	assert.NoError(t, err, "Expected SelectAllThinkers to not return an error")
	assert.GreaterOrEqual(t, len(thinkers), len(inserted), "Expected to retrieve at least the inserted thinkers")

	positions := map[string]int{}
	for i, thinker := range thinkers {
		positions[thinker.ID] = i
	}
	for i := 1; i < len(inserted); i++ {
		assert.Less(t, positions[inserted[i-1].ID], positions[inserted[i].ID], "Expected thinkers in insertion order")
	}
}

func TestThinkersUpdate(t *testing.T) {
	database := initDB(t)

	thinkersDbHandler, err := NewThinkersDBHandler(database, true)
	require.NoError(t, err)

	ctx := context.Background()
	thinker := insertTestThinker(t, thinkersDbHandler, "G. W. F. Hegel")

	thinker.Name = "Georg Wilhelm Friedrich Hegel"
	thinker.BirthYear = intPtr(1770)
	thinker.DeathYear = intPtr(1831)
	err = thinkersDbHandler.UpdateThinker(ctx, thinker)
	assert.NoError(t, err, "Expected Update to not return an error")

	retrieved, err := thinkersDbHandler.SelectThinker(ctx, thinker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Georg Wilhelm Friedrich Hegel", retrieved.Name, "Expected name to be updated")
	assert.Equal(t, "1770-1831", retrieved.Lifespan(), "Expected lifespan to be updated")
}

func TestThinkersDelete(t *testing.T) {
	database := initDB(t)

	thinkersDbHandler, err := NewThinkersDBHandler(database, true)
	require.NoError(t, err)

	ctx := context.Background()
	thinker := &model.Thinker{Name: "To be deleted"}
	err = thinkersDbHandler.InsertThinker(ctx, thinker)
	require.NoError(t, err)

	err = thinkersDbHandler.DeleteThinker(ctx, thinker.ID)
	assert.NoError(t, err, "Expected Delete to not return an error")

	_, err = thinkersDbHandler.SelectThinker(ctx, thinker.ID)
	assert.Error(t, err, "Expected error when selecting deleted thinker")
}
