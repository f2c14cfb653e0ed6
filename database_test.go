package procfind

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warelogix/procfind/core"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedTestCatalog(t *testing.T, db *Database) {
	t.Helper()
	_, err := db.CatalogRepository().UpsertProcesses(context.Background(),
		&core.ProcessRecord{ProcessID: "B1.3", ProcessName: "Приемка товара", Description: "Процесс приемки", Keywords: "приемка"},
		&core.ProcessRecord{ProcessID: "B2", ProcessName: "Хранение", Description: core.PlaceholderDescription},
	)
	require.NoError(t, err)
}

func TestNewDatabase_FileSystem(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, db)
	require.NoError(t, db.Close())
}

func TestDatabase_Reopen(t *testing.T) {
	path := t.TempDir()

	db, err := NewDatabase(path)
	require.NoError(t, err)
	seedTestCatalog(t, db)
	require.NoError(t, db.Close())

	db, err = NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	record, ok := db.GetProcessByID(context.Background(), "B1.3")
	require.True(t, ok)
	assert.Equal(t, "Приемка товара", record.ProcessName)
}

func TestGetAllProcesses(t *testing.T) {
	db := newTestDatabase(t)
	seedTestCatalog(t, db)

	summaries := db.GetAllProcesses(context.Background())
	require.Len(t, summaries, 2)
	assert.Equal(t, "B1.3", summaries[0].ProcessID)
	assert.Equal(t, "B2", summaries[1].ProcessID)
}

func TestGetProcessByID(t *testing.T) {
	db := newTestDatabase(t)
	seedTestCatalog(t, db)

	ctx := context.Background()

	t.Run("existing record", func(t *testing.T) {
		record, ok := db.GetProcessByID(ctx, "B1.3")
		require.True(t, ok)
		assert.Equal(t, "B1.3", record.ProcessID)
	})

	t.Run("missing record", func(t *testing.T) {
		record, ok := db.GetProcessByID(ctx, "B9.9")
		assert.False(t, ok)
		assert.Nil(t, record)
	})
}

func TestSaveSuggestion(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	t.Run("valid suggestion is stored", func(t *testing.T) {
		ok := db.SaveSuggestion(ctx, 42, "Ivan", "ivanp", "Добавьте процесс возврата")
		assert.True(t, ok)

		suggestions := db.GetAllSuggestions(ctx)
		require.Len(t, suggestions, 1)
		assert.Equal(t, int64(42), suggestions[0].UserID)
		assert.Equal(t, "Добавьте процесс возврата", suggestions[0].Text)
		assert.NotZero(t, suggestions[0].Id)
		assert.False(t, suggestions[0].CreatedAt.IsZero())
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		ok := db.SaveSuggestion(ctx, 42, "Ivan", "ivanp", "")
		assert.False(t, ok)
	})

	t.Run("empty display name is rejected", func(t *testing.T) {
		ok := db.SaveSuggestion(ctx, 42, "", "ivanp", "Текст")
		assert.False(t, ok)
	})
}

func TestGetAllSuggestions_NewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	require.True(t, db.SaveSuggestion(ctx, 1, "User", "", "первое"))
	time.Sleep(2 * time.Millisecond)
	require.True(t, db.SaveSuggestion(ctx, 2, "User", "", "второе"))

	suggestions := db.GetAllSuggestions(ctx)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "второе", suggestions[0].Text)
	assert.Equal(t, "первое", suggestions[1].Text)
}

func TestDatabase_SearchIntegration(t *testing.T) {
	db := newTestDatabase(t)
	seedTestCatalog(t, db)

	searcher, err := db.NewSearcher()
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), "приемка")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "B1.3", results[0].ProcessID)
}
