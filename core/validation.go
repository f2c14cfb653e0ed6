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


package core

import (
	"fmt"
	"regexp"
)

// processCodePattern matches hierarchical process codes: a leading "B",
// a major number, and any depth of dot-separated minor numbers.
var processCodePattern = regexp.MustCompile(`^B\d+(\.\d+)*$`)

// ValidateProcessRecord validates a ProcessRecord according to domain rules.
//
// Validation rules:
//   - ProcessID must be a well-formed process code (B<major>[.<minor>]*)
//   - ProcessName must not be empty
//
// NOT validated (defaulted by the seeder):
//   - Description (absent descriptions are replaced with PlaceholderDescription)
//   - Keywords (optional)
func ValidateProcessRecord(record *ProcessRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidProcessRecord)
	}

	if record.ProcessID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProcessRecord, ErrEmptyProcessID)
	}

	if !IsValidProcessCode(record.ProcessID) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidProcessRecord, ErrMalformedProcessID, record.ProcessID)
	}

	if record.ProcessName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProcessRecord, ErrEmptyProcessName)
	}

	return nil
}

// ValidateSuggestion validates a Suggestion according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - DisplayName must not be empty
//
// NOT validated:
//   - Handle (optional; many users have none)
//   - Id and CreatedAt (assigned by the repository on insert)
func ValidateSuggestion(suggestion *Suggestion) error {
	if suggestion == nil {
		return fmt.Errorf("%w: suggestion is nil", ErrInvalidSuggestion)
	}

	if suggestion.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSuggestion, ErrEmptySuggestionText)
	}

	if suggestion.DisplayName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSuggestion, ErrEmptyDisplayName)
	}

	return nil
}

// IsValidProcessCode reports whether s is a well-formed process code.
func IsValidProcessCode(s string) bool {
	return processCodePattern.MatchString(s)
}
