package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/warelogix/procfind/core"
)

// sourceRecord mirrors one entry of the external JSON source-of-truth.
type sourceRecord struct {
	ProcessID   string `json:"process_id"`
	ProcessName string `json:"process_name"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// LoadProcessRecords parses the JSON source list into catalog records.
// Ingestion is partial-failure tolerant: records missing required fields are
// logged and skipped, absent descriptions are replaced with the placeholder,
// and loading continues. The number of skipped records is returned alongside
// the usable ones.
func LoadProcessRecords(r io.Reader, logger *slog.Logger) ([]*core.ProcessRecord, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var source []sourceRecord
	if err := json.NewDecoder(r).Decode(&source); err != nil {
		return nil, 0, fmt.Errorf("decoding process source: %w", err)
	}

	records := make([]*core.ProcessRecord, 0, len(source))
	skipped := 0
	for _, entry := range source {
		record := &core.ProcessRecord{
			ProcessID:   entry.ProcessID,
			ProcessName: entry.ProcessName,
			Description: entry.Description,
			Keywords:    entry.Keywords,
		}

		if record.Description == "" {
			logger.Warn("process has no description, storing placeholder", "processID", record.ProcessID)
			record.Description = core.PlaceholderDescription
		}

		if err := core.ValidateProcessRecord(record); err != nil {
			logger.Warn("skipping malformed process record", "processID", record.ProcessID, "err", err)
			skipped++
			continue
		}

		records = append(records, record)
	}

	return records, skipped, nil
}
