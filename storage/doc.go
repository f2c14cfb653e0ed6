// Copyright 2025 Warelogix
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package storage provides the storage abstraction layer for procfind.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic. It allows for different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - CatalogRepository: operations for the process catalog (read-mostly,
//     mutated only by the idempotent seeding path)
//   - SuggestionRepository: operations for the append-only suggestion box
//
// # Failure semantics
//
// Repositories return errors from the taxonomy in errors.go. A missing
// record surfaces as ErrNotFound, which callers treat as a normal outcome.
// The procfind.Database facade is the boundary where storage faults are
// logged and converted to empty collections / false booleans; they never
// propagate to the conversation layer as unhandled faults.
//
// # Thread safety
//
// All repository implementations must be thread-safe. The catalog read path
// requires no locking because the catalog is read-only during normal
// operation; the suggestion write path needs only per-insert atomicity.
//
// # Context support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
