package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/storage"
)

// SuggestionRepository implements storage.SuggestionRepository for BadgerDB.
type SuggestionRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.SuggestionRepository = (*SuggestionRepository)(nil)

// NewSuggestionRepository creates a new SuggestionRepository.
func NewSuggestionRepository(backend *Backend) (*SuggestionRepository, error) {
	idSeq, err := backend.GetSequence(suggestionIDSeq)
	if err != nil {
		return nil, err
	}

	return &SuggestionRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *SuggestionRepository) Close() error {
	return r.idSeq.Release()
}

// AddSuggestion appends one suggestion as a single atomic insert.
// The Id comes from the repository sequence and CreatedAt is assigned here;
// both are populated on the returned value.
func (r *SuggestionRepository) AddSuggestion(ctx context.Context, suggestion *core.Suggestion) (*core.Suggestion, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		suggestion.Id = core.ID(nextID)
		suggestion.CreatedAt = time.Now().UTC()

		// Store primary record
		key := makeSuggestionKey(suggestion.Id)
		value := storage.MarshalSuggestion(suggestion)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update creation-time index
		dateKey := makeSuggestionDateKey(suggestion.CreatedAt, suggestion.Id)
		if err := tx.Set(dateKey, storage.MarshalID(suggestion.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return suggestion, err
}

// GetAllSuggestions returns every suggestion, newest first.
func (r *SuggestionRepository) GetAllSuggestions(ctx context.Context) ([]*core.Suggestion, error) {
	return r.scanNewestFirst(0)
}

// GetRecentSuggestions returns up to limit suggestions, newest first.
func (r *SuggestionRepository) GetRecentSuggestions(ctx context.Context, limit int) ([]*core.Suggestion, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	return r.scanNewestFirst(limit)
}

// CountSuggestions returns the number of stored suggestions.
func (r *SuggestionRepository) CountSuggestions(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(suggestionPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// scanNewestFirst walks the creation-time index in reverse.
// A limit of 0 means no limit.
func (r *SuggestionRepository) scanNewestFirst(limit int) ([]*core.Suggestion, error) {
	var results []*core.Suggestion
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent suggestions first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key within the date index
		startKey := makePartialSuggestionDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(suggestionDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var suggestionID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				suggestionID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full suggestion
			suggestion, err := r.readSuggestion(tx, makeSuggestionKey(suggestionID))
			if err != nil {
				return err
			}
			if suggestion != nil {
				results = append(results, suggestion)
				if limit > 0 && len(results) >= limit {
					break
				}
			}
		}
		return nil
	}, false)

	return results, err
}

// readSuggestion reads a single suggestion, returning nil when absent.
func (r *SuggestionRepository) readSuggestion(tx *badger.Txn, key []byte) (*core.Suggestion, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var suggestion *core.Suggestion
	err = item.Value(func(val []byte) error {
		var err error
		suggestion, err = storage.UnmarshalSuggestion(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return suggestion, nil
}
