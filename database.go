// Copyright 2025 Warelogix
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package procfind

import (
	"context"
	"errors"
	"log/slog"

	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/ingestion"
	"github.com/warelogix/procfind/search"
	"github.com/warelogix/procfind/storage"
	"github.com/warelogix/procfind/storage/badger"
)

// Database wires the storage backend, the catalog and suggestion
// repositories, and the relevance engine. It is also the boundary where
// storage faults stop propagating: the convenience methods below convert
// errors into empty collections or false booleans with a logged diagnostic,
// so the conversation layer never sees an unhandled fault.
type Database struct {
	backend        *badger.Backend
	catalogRepo    storage.CatalogRepository
	suggestionRepo storage.SuggestionRepository
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*Database)

// WithDatabaseLogger sets a custom logger.
// Default is slog.Default().
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(db *Database) {
		if logger == nil {
			logger = slog.Default()
		}
		db.logger = logger
	}
}

// NewDatabase opens (or creates) the store at filePath. Opening an existing
// store keeps its data; initialization is idempotent.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return newDatabase(backend, opts...)
}

// NewMemoryDatabase creates an ephemeral in-memory store, mainly for tests.
func NewMemoryDatabase(opts ...DatabaseOption) (*Database, error) {
	backend, err := badger.OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return newDatabase(backend, opts...)
}

func newDatabase(backend *badger.Backend, opts ...DatabaseOption) (*Database, error) {
	catalogRepo := badger.NewCatalogRepository(backend)

	suggestionRepo, err := badger.NewSuggestionRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	db := &Database{
		backend:        backend,
		catalogRepo:    catalogRepo,
		suggestionRepo: suggestionRepo,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(db)
	}

	return db, nil
}

// Close closes the repositories and the backend.
func (db *Database) Close() error {
	if err := db.suggestionRepo.Close(); err != nil {
		db.logger.Error("error closing suggestion repository", "err", err)
		return err
	}
	if err := db.catalogRepo.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CatalogRepository exposes the underlying catalog store.
func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalogRepo
}

// SuggestionRepository exposes the underlying suggestion store.
func (db *Database) SuggestionRepository() storage.SuggestionRepository {
	return db.suggestionRepo
}

// NewSearcher creates a relevance searcher over this catalog.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.catalogRepo, opts...)
}

// NewIngestionPipeline creates a catalog seeding pipeline.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.catalogRepo, opts...)
}

// GetAllProcesses lists (id, name) summaries in catalog order.
// Never fails: storage faults are logged and an empty list is returned.
func (db *Database) GetAllProcesses(ctx context.Context) []core.ProcessSummary {
	summaries, err := db.catalogRepo.GetAllProcesses(ctx)
	if err != nil {
		db.logger.Error("error listing processes", "err", err)
		return nil
	}
	return summaries
}

// GetProcessByID looks up one record by its exact process code. The code is
// matched as stored; callers upper-case and strip whitespace beforehand.
// An absent record is a normal outcome, reported via ok.
func (db *Database) GetProcessByID(ctx context.Context, processID string) (record *core.ProcessRecord, ok bool) {
	record, err := db.catalogRepo.GetProcess(ctx, processID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			db.logger.Error("error looking up process", "processID", processID, "err", err)
		}
		return nil, false
	}
	return record, true
}

// SaveSuggestion appends one user suggestion and reports success.
// Storage faults are logged and reported as false; they never propagate.
func (db *Database) SaveSuggestion(ctx context.Context, userID int64, displayName, handle, text string) bool {
	suggestion := &core.Suggestion{
		UserID:      userID,
		DisplayName: displayName,
		Handle:      handle,
		Text:        text,
	}
	if err := core.ValidateSuggestion(suggestion); err != nil {
		db.logger.Warn("rejecting invalid suggestion", "userID", userID, "err", err)
		return false
	}

	if _, err := db.suggestionRepo.AddSuggestion(ctx, suggestion); err != nil {
		db.logger.Error("error saving suggestion", "userID", userID, "err", err)
		return false
	}
	return true
}

// GetAllSuggestions lists every suggestion, newest first.
// Never fails: storage faults are logged and an empty list is returned.
func (db *Database) GetAllSuggestions(ctx context.Context) []*core.Suggestion {
	suggestions, err := db.suggestionRepo.GetAllSuggestions(ctx)
	if err != nil {
		db.logger.Error("error listing suggestions", "err", err)
		return nil
	}
	return suggestions
}
