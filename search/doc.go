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


// Package search provides the relevance engine that maps free-form keyword
// queries to the most relevant process catalog records.
//
// The Searcher type implements a multi-stage ranking pipeline:
//   - Exact-code shortcut for queries shaped like a process code
//   - Whitespace tokenization and case/letter-variant normalization
//   - Stem-candidate generation per query word (suffix heuristics plus a
//     curated irregular-form table)
//   - Substring matching against concatenated record fields
//   - A coverage filter keeping only records that match the most query words
//   - Additive multi-factor scoring with field weights, an exact-phrase
//     bonus, and curated co-occurrence rules
//
// Search is a pure function of the query and the catalog snapshot: no state
// is retained between calls, and a fixed catalog always yields identical
// ordered results for the same query.
package search
