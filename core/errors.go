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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProcessRecord indicates a ProcessRecord failed validation.
	ErrInvalidProcessRecord = errors.New("invalid process record")

	// ErrInvalidSuggestion indicates a Suggestion failed validation.
	ErrInvalidSuggestion = errors.New("invalid suggestion")

	// ErrEmptyProcessID indicates the ProcessID field is empty.
	ErrEmptyProcessID = errors.New("process id cannot be empty")

	// ErrMalformedProcessID indicates the ProcessID does not match the
	// B<major>[.<minor>]* code format.
	ErrMalformedProcessID = errors.New("process id is not a valid process code")

	// ErrEmptyProcessName indicates the ProcessName field is empty.
	ErrEmptyProcessName = errors.New("process name cannot be empty")

	// ErrEmptySuggestionText indicates the suggestion Text field is empty.
	ErrEmptySuggestionText = errors.New("suggestion text cannot be empty")

	// ErrEmptyDisplayName indicates the suggestion DisplayName field is empty.
	ErrEmptyDisplayName = errors.New("display name cannot be empty")
)
