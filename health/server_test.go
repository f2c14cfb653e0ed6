package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/storage"
	"github.com/warelogix/procfind/storage/badger"
)

func newTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	catalogRepo, suggestionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	cleanup := func() {
		suggestionRepo.Close()
		catalogRepo.Close()
		backend.Close()
	}

	_, err = catalogRepo.UpsertProcesses(context.Background(),
		&core.ProcessRecord{ProcessID: "B1.3", ProcessName: "Приемка товара", Description: core.PlaceholderDescription},
		&core.ProcessRecord{ProcessID: "B2", ProcessName: "Хранение", Description: core.PlaceholderDescription},
	)
	require.NoError(t, err)

	return NewServer(catalogRepo, nil), cleanup
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleHome(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "procfind", body["service"])
	assert.NotEmpty(t, body["uptime"])
}

func TestHandleHealth(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestHandleDeepPing(t *testing.T) {
	server, cleanup := newTestServer(t)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deep-ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(2), body["processes"])
}

func TestHandleDeepPing_Degraded(t *testing.T) {
	server := NewServer(&brokenCatalog{}, nil)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deep-ping", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "degraded", body["status"])
}

// brokenCatalog fails every operation, simulating a lost storage backend.
type brokenCatalog struct{}

var _ storage.CatalogRepository = (*brokenCatalog)(nil)

var errBroken = errors.New("storage unavailable")

func (c *brokenCatalog) UpsertProcesses(context.Context, ...*core.ProcessRecord) ([]storage.IngestOutcome, error) {
	return nil, errBroken
}

func (c *brokenCatalog) GetProcess(context.Context, string) (*core.ProcessRecord, error) {
	return nil, errBroken
}

func (c *brokenCatalog) GetAllProcesses(context.Context) ([]core.ProcessSummary, error) {
	return nil, errBroken
}

func (c *brokenCatalog) GetAllProcessesFull(context.Context) ([]*core.ProcessRecord, error) {
	return nil, errBroken
}

func (c *brokenCatalog) Count(context.Context) (int, error) { return 0, errBroken }

func (c *brokenCatalog) Close() error { return nil }
