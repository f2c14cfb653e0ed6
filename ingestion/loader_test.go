package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warelogix/procfind/core"
)

func TestLoadProcessRecords(t *testing.T) {
	const source = `[
		{"process_id": "B1.3", "process_name": "Приемка товара", "description": "Процесс приемки", "keywords": "приемка"},
		{"process_id": "B2", "process_name": "Хранение"}
	]`

	records, skipped, err := LoadProcessRecords(strings.NewReader(source), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 2)

	assert.Equal(t, "B1.3", records[0].ProcessID)
	assert.Equal(t, "Приемка товара", records[0].ProcessName)
	assert.Equal(t, "Процесс приемки", records[0].Description)
	assert.Equal(t, "приемка", records[0].Keywords)
}

func TestLoadProcessRecords_PlaceholderDescription(t *testing.T) {
	const source = `[
		{"process_id": "B2", "process_name": "Хранение", "description": ""}
	]`

	records, skipped, err := LoadProcessRecords(strings.NewReader(source), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, core.PlaceholderDescription, records[0].Description)
}

func TestLoadProcessRecords_SkipsMalformed(t *testing.T) {
	const source = `[
		{"process_id": "B1.3", "process_name": "Приемка товара"},
		{"process_id": "", "process_name": "Без кода"},
		{"process_id": "X99", "process_name": "Чужой код"},
		{"process_id": "B2.1", "process_name": ""}
	]`

	records, skipped, err := LoadProcessRecords(strings.NewReader(source), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "B1.3", records[0].ProcessID)
}

func TestLoadProcessRecords_InvalidJSON(t *testing.T) {
	_, _, err := LoadProcessRecords(strings.NewReader("{not json"), nil)
	assert.Error(t, err)
}

func TestLoadProcessRecords_EmptyList(t *testing.T) {
	records, skipped, err := LoadProcessRecords(strings.NewReader("[]"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Empty(t, records)
}
