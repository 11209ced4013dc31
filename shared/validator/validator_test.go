package validator_test

import (
	"strings"
	"testing"

	"salas/shared/validator"
)

type reservationForm struct {
	RoomID          string `validate:"required,uuid4" json:"room_id"`
	ReservationDate string `validate:"required,dateonly" json:"reservation_date"`
	StartTime       string `validate:"required,hhmm" json:"start_time"`
	Email           string `validate:"required,email" json:"email"`
	Headcount       int    `validate:"omitempty,gte=1" json:"headcount"`
}

func validForm() reservationForm {
	return reservationForm{
		RoomID:          "0f1d5ed7-3c4a-4b83-b2fb-0e1cbd7c2ad9",
		ReservationDate: "2026-03-05",
		StartTime:       "14:30",
		Email:           "ana@example.com",
		Headcount:       4,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(f *reservationForm)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(f *reservationForm) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(f *reservationForm) { f.RoomID = "" },
			expectError: true,
		},
		{
			name:        "malformed uuid",
			mutate:      func(f *reservationForm) { f.RoomID = "not-a-uuid" },
			expectError: true,
		},
		{
			name:        "date not in ISO format",
			mutate:      func(f *reservationForm) { f.ReservationDate = "05/03/2026" },
			expectError: true,
		},
		{
			name:        "time not in HH:MM format",
			mutate:      func(f *reservationForm) { f.StartTime = "2:30pm" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(f *reservationForm) { f.Email = "invalid-email" },
			expectError: true,
		},
		{
			name:        "headcount below minimum",
			mutate:      func(f *reservationForm) { f.Headcount = -1 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "valid date",
			field:       "2026-03-05",
			tag:         "dateonly",
			expectError: false,
		},
		{
			name:        "invalid date",
			field:       "March 5th",
			tag:         "dateonly",
			expectError: true,
		},
		{
			name:        "valid time",
			field:       "08:00",
			tag:         "hhmm",
			expectError: false,
		},
		{
			name:        "invalid time",
			field:       "8am",
			tag:         "hhmm",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"room_id":"0f1d5ed7-3c4a-4b83-b2fb-0e1cbd7c2ad9","reservation_date":"2026-03-05","start_time":"14:30","email":"ana@example.com","headcount":4}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"room_id":"0f1d5ed7-3c4a-4b83-b2fb-0e1cbd7c2ad9","reservation_date":"2026-03-05","start_time":"14:30","email":"invalid-email"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"room_id":"0f1d5ed7-3c4a-4b83-b2fb-0e1cbd7c2ad9","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data reservationForm
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	form := reservationForm{}
	err := validator.ValidateStruct(&form)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
