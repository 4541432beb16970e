package api

import (
	"encoding/json"
	"testing"
)

func TestValidateQuestionPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid mcq",
			payload: `{"success":true,"questions":[{"id":1,"type":"mcq","title":"Q","options":["a","b"]}]}`,
		},
		{
			name:    "valid empty list",
			payload: `{"success":true,"questions":[]}`,
		},
		{
			name:    "missing title",
			payload: `{"success":true,"questions":[{"id":1,"type":"mcq"}]}`,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			payload: `{"success":true,"questions":[{"id":1,"type":"puzzle","title":"Q"}]}`,
			wantErr: true,
		},
		{
			name:    "zero id",
			payload: `{"success":true,"questions":[{"id":0,"type":"text","title":"Q"}]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `success`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestionPayload(json.RawMessage(tt.payload))
			if tt.wantErr && err == nil {
				t.Error("expected validation failure")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
