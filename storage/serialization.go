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


package storage

import (
	"github.com/warelogix/procfind/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalProcessRecord serializes a ProcessRecord to bytes.
func MarshalProcessRecord(record *core.ProcessRecord) []byte {
	buf := make([]byte, core.ProcessRecordMUS.Size(*record))
	core.ProcessRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalProcessRecord deserializes a ProcessRecord from bytes.
func UnmarshalProcessRecord(data []byte) (*core.ProcessRecord, error) {
	record, _, err := core.ProcessRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalSuggestion serializes a Suggestion to bytes.
func MarshalSuggestion(suggestion *core.Suggestion) []byte {
	buf := make([]byte, core.SuggestionMUS.Size(*suggestion))
	core.SuggestionMUS.Marshal(*suggestion, buf)
	return buf
}

// UnmarshalSuggestion deserializes a Suggestion from bytes.
func UnmarshalSuggestion(data []byte) (*core.Suggestion, error) {
	suggestion, _, err := core.SuggestionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}
