package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored entities.
// Suggestion IDs come from database sequences; fingerprints from content hashing.
type ID uint64

// Fingerprint generates a deterministic 64-bit digest of text content using
// BLAKE2b. Identical content always produces an identical fingerprint; the
// seeder uses it to detect unchanged records on re-seed.
func Fingerprint(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// PlaceholderDescription is stored in place of an absent description.
// The catalog never carries a null description field.
const PlaceholderDescription = "Описание отсутствует"

// ProcessRecord is an immutable business-process catalog entry.
// Records are loaded once at seed time and are read-only afterwards.
type ProcessRecord struct {
	ProcessID   string // hierarchical code, e.g. "B1.5.2"; unique
	ProcessName string // short human-readable title, required
	Description string // free text; PlaceholderDescription when absent
	Keywords    string // space/comma separated tag terms
}

// Fingerprint returns a content digest over all four fields.
func (r *ProcessRecord) Fingerprint() ID {
	return Fingerprint(strings.Join([]string{r.ProcessID, r.ProcessName, r.Description, r.Keywords}, "\x1f"))
}

// Category returns the leading "B<digit>" segment of the process code,
// which groups records into a process family.
func (r *ProcessRecord) Category() string {
	if i := strings.IndexByte(r.ProcessID, '.'); i >= 0 {
		return r.ProcessID[:i]
	}
	return r.ProcessID
}

// ProcessSummary is the (id, name) projection returned by catalog listings.
type ProcessSummary struct {
	ProcessID   string
	ProcessName string
}

// Suggestion is an append-only free-text feedback entry submitted by a user.
// Suggestions are never updated or deleted.
type Suggestion struct {
	Id          ID
	UserID      int64
	DisplayName string
	Handle      string // optional; empty when the user has no handle
	Text        string
	CreatedAt   time.Time // server-assigned at insert time
}

// ScoredMatch pairs a catalog record with its relevance score and the number
// of distinct query words it matched. Produced and consumed within a single
// search call; never persisted.
type ScoredMatch struct {
	Record     *ProcessRecord
	Score      int
	FoundWords int
}
