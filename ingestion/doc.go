// Package ingestion seeds the process catalog from its external
// source-of-truth, a JSON list of records.
//
// The Pipeline type loads and validates the source list, defaults absent
// descriptions to the catalog placeholder, skips malformed entries with a
// logged warning, and upserts the rest in concurrent batches through a
// worker pool. Upserts are keyed by process code and compare content
// fingerprints, so re-seeding from the same source leaves the catalog
// untouched.
package ingestion
