package ingestion

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/warelogix/procfind/storage"
)

// defaultBatchSize is the number of records upserted per transaction.
const defaultBatchSize = 32

// Report summarizes one seeding run.
type Report struct {
	Added     int // records that did not exist before
	Updated   int // records replaced with new content
	Unchanged int // records already stored with identical content
	Skipped   int // malformed source entries that were not stored
}

// Total returns the number of source entries considered.
func (r Report) Total() int {
	return r.Added + r.Updated + r.Unchanged + r.Skipped
}

// Pipeline seeds the process catalog from an external JSON source list.
// Batches are upserted concurrently through a worker pool; re-running the
// pipeline against an unchanged source is a no-op.
type Pipeline struct {
	catalogRepository storage.CatalogRepository
	pool              *ants.Pool
	batchSize         int
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch upserts.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are upserted per transaction.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.batchSize = size
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(catalogRepository storage.CatalogRepository, opts ...Option) (*Pipeline, error) {
	if catalogRepository == nil {
		return nil, ErrCatalogRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalogRepository: catalogRepository,
		pool:              pool,
		batchSize:         defaultBatchSize,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Release shuts down the worker pool. The pipeline cannot be reused after.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Seed reads the JSON source list and upserts it into the catalog.
// All batches run to completion; the first batch error is returned after the
// run finishes, alongside the report of what was applied.
func (p *Pipeline) Seed(ctx context.Context, source io.Reader) (Report, error) {
	records, skipped, err := LoadProcessRecords(source, p.logger)
	if err != nil {
		return Report{}, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		report   = Report{Skipped: skipped}
		firstErr error
	)

	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			outcomes, err := p.catalogRepository.UpsertProcesses(ctx, batch...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("batch upsert failed", "batchSize", len(batch), "err", err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, outcome := range outcomes {
				switch outcome {
				case storage.IngestAdded:
					report.Added++
				case storage.IngestUpdated:
					report.Updated++
				case storage.IngestUnchanged:
					report.Unchanged++
				}
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()

	p.logger.Info("catalog seeding finished",
		"added", report.Added,
		"updated", report.Updated,
		"unchanged", report.Unchanged,
		"skipped", report.Skipped,
	)
	return report, firstErr
}
