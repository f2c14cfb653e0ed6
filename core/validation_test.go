package core

import (
	"errors"
	"testing"
)

func TestValidateProcessRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *ProcessRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ProcessRecord{
				ProcessID:   "B1.5.2",
				ProcessName: "Оформление излишков",
				Description: "Фиксация товара сверх накладной",
				Keywords:    "излишки",
			},
			wantErr: nil,
		},
		{
			name: "valid record without description",
			record: &ProcessRecord{
				ProcessID:   "B2",
				ProcessName: "Хранение",
			},
			wantErr: nil,
		},
		{
			name: "valid deep code",
			record: &ProcessRecord{
				ProcessID:   "B1.5.2.7.1",
				ProcessName: "Подпроцесс",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidProcessRecord,
		},
		{
			name: "empty process id",
			record: &ProcessRecord{
				ProcessName: "Приемка",
			},
			wantErr: ErrEmptyProcessID,
		},
		{
			name: "lowercase prefix",
			record: &ProcessRecord{
				ProcessID:   "b1.3",
				ProcessName: "Приемка",
			},
			wantErr: ErrMalformedProcessID,
		},
		{
			name: "missing major number",
			record: &ProcessRecord{
				ProcessID:   "B",
				ProcessName: "Приемка",
			},
			wantErr: ErrMalformedProcessID,
		},
		{
			name: "trailing dot",
			record: &ProcessRecord{
				ProcessID:   "B1.",
				ProcessName: "Приемка",
			},
			wantErr: ErrMalformedProcessID,
		},
		{
			name: "non-numeric segment",
			record: &ProcessRecord{
				ProcessID:   "B1.x",
				ProcessName: "Приемка",
			},
			wantErr: ErrMalformedProcessID,
		},
		{
			name: "empty process name",
			record: &ProcessRecord{
				ProcessID: "B1.3",
			},
			wantErr: ErrEmptyProcessName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProcessRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProcessRecord() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProcessRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		suggestion *Suggestion
		wantErr    error
	}{
		{
			name: "valid suggestion",
			suggestion: &Suggestion{
				UserID:      42,
				DisplayName: "Ivan",
				Handle:      "ivan",
				Text:        "Добавьте процесс возврата",
			},
			wantErr: nil,
		},
		{
			name: "valid suggestion without handle",
			suggestion: &Suggestion{
				UserID:      42,
				DisplayName: "Ivan",
				Text:        "Добавьте процесс возврата",
			},
			wantErr: nil,
		},
		{
			name:       "nil suggestion",
			suggestion: nil,
			wantErr:    ErrInvalidSuggestion,
		},
		{
			name: "empty text",
			suggestion: &Suggestion{
				UserID:      42,
				DisplayName: "Ivan",
			},
			wantErr: ErrEmptySuggestionText,
		},
		{
			name: "empty display name",
			suggestion: &Suggestion{
				UserID: 42,
				Text:   "Добавьте процесс возврата",
			},
			wantErr: ErrEmptyDisplayName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuggestion(tt.suggestion)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSuggestion() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSuggestion() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidProcessCode(t *testing.T) {
	valid := []string{"B1", "B12", "B1.3", "B1.5.2", "B3.10.4"}
	invalid := []string{"", "B", "b1", "1.3", "B1.", "B.1", "B1..2", "B1.3a", "X1.3", " B1.3"}

	for _, code := range valid {
		if !IsValidProcessCode(code) {
			t.Errorf("IsValidProcessCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidProcessCode(code) {
			t.Errorf("IsValidProcessCode(%q) = true, want false", code)
		}
	}
}
