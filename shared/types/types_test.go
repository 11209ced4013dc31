package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"salas/shared/types"
)

func TestParseDateOnly(t *testing.T) {
	d, err := types.ParseDateOnly("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 5 {
		t.Errorf("expected 2026-03-05, got %s", d.String())
	}

	if _, err := types.ParseDateOnly("05/03/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDateOnly_Value(t *testing.T) {
	d := types.NewDateOnly(time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC))

	value, err := d.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "2026-03-05" {
		t.Errorf("expected 2026-03-05, got %v", value)
	}
}

func TestDateOnly_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected string
		wantErr  bool
	}{
		{
			name:     "from time.Time",
			src:      time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC),
			expected: "2026-03-05",
		},
		{
			name:     "from string",
			src:      "2026-03-05",
			expected: "2026-03-05",
		},
		{
			name:     "from bytes",
			src:      []byte("2026-03-05"),
			expected: "2026-03-05",
		},
		{
			name:    "from unsupported type",
			src:     42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d types.DateOnly

			err := d.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if d.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, d.String())
			}
		})
	}
}

func TestDateOnly_JSON(t *testing.T) {
	d, err := types.ParseDateOnly("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `"2026-03-05"` {
		t.Errorf(`expected "2026-03-05", got %s`, data)
	}

	var decoded types.DateOnly
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.String() != d.String() {
		t.Errorf("expected %s, got %s", d.String(), decoded.String())
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &decoded); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestParseClockTime(t *testing.T) {
	c, err := types.ParseClockTime("14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.String() != "14:30" {
		t.Errorf("expected 14:30, got %s", c.String())
	}

	c, err = types.ParseClockTime("14:30:00")
	if err != nil {
		t.Fatalf("unexpected error for column format: %v", err)
	}

	if c.String() != "14:30" {
		t.Errorf("expected 14:30, got %s", c.String())
	}

	if _, err := types.ParseClockTime("2pm"); err == nil {
		t.Error("expected error for non HH:MM time")
	}
}

func TestClockTime_MinuteOfDay(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{value: "00:00", expected: 0},
		{value: "08:00", expected: 480},
		{value: "14:30", expected: 870},
		{value: "18:00", expected: 1080},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, err := types.ParseClockTime(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if c.MinuteOfDay() != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, c.MinuteOfDay())
			}
		})
	}
}

func TestClockTime_Value(t *testing.T) {
	c, err := types.ParseClockTime("09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err := c.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value != "09:00:00" {
		t.Errorf("expected 09:00:00, got %v", value)
	}
}

func TestClockTime_Scan(t *testing.T) {
	var c types.ClockTime

	if err := c.Scan("10:30:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.String() != "10:30" {
		t.Errorf("expected 10:30, got %s", c.String())
	}

	if err := c.Scan(3.14); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestClockTime_JSON(t *testing.T) {
	c, err := types.ParseClockTime("16:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `"16:30"` {
		t.Errorf(`expected "16:30", got %s`, data)
	}

	var decoded types.ClockTime
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.String() != "16:30" {
		t.Errorf("expected 16:30, got %s", decoded.String())
	}
}

func TestAt(t *testing.T) {
	date, err := types.ParseDateOnly("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock, err := types.ParseClockTime("14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	instant := types.At(date, clock, time.UTC)

	expected := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	if !instant.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, instant)
	}
}
