package validator_test

import (
	"healthtick/shared/validator"
	"strings"
	"testing"
)

type bookingPayload struct {
	ClientID string `json:"client_id" validate:"required"`
	CallType string `json:"call_type" validate:"required,oneof=onboarding follow-up"`
	Date     string `json:"date"      validate:"required,dateformat"`
	Time     string `json:"time"      validate:"required,clocktime"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"client_id":"c1","call_type":"onboarding","date":"2024-01-08","time":"14:00"}`,
			wantErr: false,
		},
		{
			name:    "invalid json",
			body:    `{"client_id":`,
			wantErr: true,
		},
		{
			name:    "missing client",
			body:    `{"call_type":"onboarding","date":"2024-01-08","time":"14:00"}`,
			wantErr: true,
		},
		{
			name:    "unknown call type",
			body:    `{"client_id":"c1","call_type":"consultation","date":"2024-01-08","time":"14:00"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"client_id":"c1","call_type":"follow-up","date":"08-01-2024","time":"14:00"}`,
			wantErr: true,
		},
		{
			name:    "malformed time",
			body:    `{"client_id":"c1","call_type":"follow-up","date":"2024-01-08","time":"2pm"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-01-08", "dateformat"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("2024-13-40", "dateformat"); err == nil {
		t.Error("expected error for impossible date")
	}

	if err := validator.ValidateVar("19:30", "clocktime"); err != nil {
		t.Errorf("expected valid clock time, got %v", err)
	}

	if err := validator.ValidateVar("25:61", "clocktime"); err == nil {
		t.Error("expected error for impossible clock time")
	}
}
