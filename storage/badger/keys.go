package badger

import (
	"encoding/binary"
	"time"

	"github.com/warelogix/procfind/core"
)

// Key prefixes for different data types
const (
	processRecordPrefix  = "procrec"
	suggestionPrefix     = "sugrec"
	suggestionDatePrefix = "sugrecd"
	suggestionIDSeq      = "sugrecseq"
)

// makeProcessRecordKey generates a key for a catalog record by process code.
// The code itself is the key suffix, so a prefix iteration yields records in
// lexicographic process-code order.
func makeProcessRecordKey(processID string) []byte {
	return []byte(processRecordPrefix + ":" + processID)
}

// makeSuggestionKey generates a key for a suggestion by ID.
// IDs are big-endian so keys sort in insertion order.
func makeSuggestionKey(id core.ID) []byte {
	prefix := suggestionPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSuggestionDateKey generates a composite key for the creation-time index.
// Format: prefix:timestamp:id
func makeSuggestionDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := suggestionDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSuggestionDateKey generates a partial key for time-bounded scans.
// Format: prefix:timestamp
func makePartialSuggestionDateKey(timestamp time.Time) []byte {
	prefix := suggestionDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
