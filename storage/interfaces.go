package storage

import (
	"context"

	"github.com/warelogix/procfind/core"
)

// IngestOutcome describes what an upsert did with a single catalog record.
type IngestOutcome int

const (
	// IngestAdded means the record did not exist before.
	IngestAdded IngestOutcome = iota + 1
	// IngestUpdated means an existing record was replaced with new content.
	IngestUpdated
	// IngestUnchanged means the stored record already carried identical content.
	IngestUnchanged
)

// CatalogRepository provides operations for the read-mostly process catalog.
// Implementations must be thread-safe; the catalog is read-only during normal
// operation and mutated only by the seeding path.
type CatalogRepository interface {
	// UpsertProcesses inserts or replaces records keyed by ProcessID.
	// Re-running with identical content is a no-op per record. Returns one
	// outcome per input record, in input order.
	UpsertProcesses(ctx context.Context, records ...*core.ProcessRecord) ([]IngestOutcome, error)

	// GetProcess retrieves a record by its exact process code.
	// The lookup is case-sensitive; callers normalize (upper-case, strip
	// whitespace) before calling. Returns ErrNotFound when absent, which is
	// a normal outcome rather than a failure.
	GetProcess(ctx context.Context, processID string) (*core.ProcessRecord, error)

	// GetAllProcesses returns (id, name) summaries for every record, ordered
	// by process code ascending (lexicographic). Empty when uninitialized.
	GetAllProcesses(ctx context.Context) ([]core.ProcessSummary, error)

	// GetAllProcessesFull returns every record with all fields, in the same
	// order as GetAllProcesses. This is the search engine's scan path.
	GetAllProcessesFull(ctx context.Context) ([]*core.ProcessRecord, error)

	// Count returns the number of catalog records.
	Count(ctx context.Context) (int, error)

	// Close releases repository resources.
	Close() error
}

// SuggestionRepository provides operations for the append-only suggestion box.
// Suggestions are never updated or deleted.
type SuggestionRepository interface {
	// AddSuggestion appends one suggestion as a single atomic insert.
	// The Id and CreatedAt fields are assigned by the repository and
	// populated on the returned value.
	AddSuggestion(ctx context.Context, suggestion *core.Suggestion) (*core.Suggestion, error)

	// GetAllSuggestions returns every suggestion, newest first.
	GetAllSuggestions(ctx context.Context) ([]*core.Suggestion, error)

	// GetRecentSuggestions returns up to limit suggestions, newest first.
	GetRecentSuggestions(ctx context.Context, limit int) ([]*core.Suggestion, error)

	// CountSuggestions returns the number of stored suggestions.
	CountSuggestions(ctx context.Context) (int, error)

	// Close releases repository resources.
	Close() error
}
