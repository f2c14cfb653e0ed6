package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) *CatalogRepository {
	return &CatalogRepository{backend: backend}
}

// Close releases repository resources.
func (r *CatalogRepository) Close() error {
	return nil
}

// UpsertProcesses inserts or replaces catalog records keyed by process code.
// Records whose stored content is already identical are left untouched, so
// re-seeding from the same source is a no-op.
func (r *CatalogRepository) UpsertProcesses(ctx context.Context, records ...*core.ProcessRecord) ([]storage.IngestOutcome, error) {
	outcomes := make([]storage.IngestOutcome, len(records))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for i, record := range records {
			key := makeProcessRecordKey(record.ProcessID)

			old, err := r.readProcessRecord(tx, key)
			if err != nil {
				return err
			}

			switch {
			case old == nil:
				outcomes[i] = storage.IngestAdded
			case old.Fingerprint() == record.Fingerprint():
				outcomes[i] = storage.IngestUnchanged
				continue
			default:
				outcomes[i] = storage.IngestUpdated
			}

			value := storage.MarshalProcessRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// GetProcess retrieves a catalog record by its exact process code.
// Returns storage.ErrNotFound when absent.
func (r *CatalogRepository) GetProcess(ctx context.Context, processID string) (*core.ProcessRecord, error) {
	var result *core.ProcessRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProcessRecordKey(processID)
		var err error
		result, err = r.readProcessRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllProcesses returns (id, name) summaries ordered by process code.
func (r *CatalogRepository) GetAllProcesses(ctx context.Context) ([]core.ProcessSummary, error) {
	var summaries []core.ProcessSummary
	err := r.forEachRecord(func(record *core.ProcessRecord) {
		summaries = append(summaries, core.ProcessSummary{
			ProcessID:   record.ProcessID,
			ProcessName: record.ProcessName,
		})
	})
	return summaries, err
}

// GetAllProcessesFull returns every catalog record, ordered by process code.
// A single read transaction covers the whole scan, so search always sees an
// internally consistent catalog snapshot.
func (r *CatalogRepository) GetAllProcessesFull(ctx context.Context) ([]*core.ProcessRecord, error) {
	var records []*core.ProcessRecord
	err := r.forEachRecord(func(record *core.ProcessRecord) {
		records = append(records, record)
	})
	return records, err
}

// Count returns the number of catalog records.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.forEachRecord(func(*core.ProcessRecord) {
		count++
	})
	return count, err
}

// forEachRecord iterates the catalog in key order within one read transaction.
func (r *CatalogRepository) forEachRecord(fn func(record *core.ProcessRecord)) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(processRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ProcessRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalProcessRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				fn(record)
			}
		}
		return nil
	}, false)
}

// readProcessRecord reads a single record, returning nil when the key is absent.
func (r *CatalogRepository) readProcessRecord(tx *badger.Txn, key []byte) (*core.ProcessRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ProcessRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalProcessRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
