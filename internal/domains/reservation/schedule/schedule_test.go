package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salas/internal/domains/reservation/schedule"
	"salas/shared/types"
)

func mustDate(t *testing.T, value string) types.DateOnly {
	t.Helper()

	d, err := types.ParseDateOnly(value)
	require.NoError(t, err)

	return d
}

func mustClock(t *testing.T, value string) types.ClockTime {
	t.Helper()

	c, err := types.ParseClockTime(value)
	require.NoError(t, err)

	return c
}

func TestValidateSlot(t *testing.T) {
	// Wednesday, mid-morning.
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr string
	}{
		{
			name:  "valid slot next business day",
			date:  "2026-03-05",
			start: "09:00",
			end:   "10:00",
		},
		{
			name:  "valid slot later the same day",
			date:  "2026-03-04",
			start: "14:00",
			end:   "15:30",
		},
		{
			name:  "slot already started but not ended",
			date:  "2026-03-04",
			start: "09:30",
			end:   "10:30",
		},
		{
			name:  "slot ending exactly now",
			date:  "2026-03-04",
			start: "09:00",
			end:   "10:00",
		},
		{
			name:    "slot on a past day",
			date:    "2026-03-03",
			start:   "09:00",
			end:     "10:00",
			wantErr: "reservations cannot be made in the past",
		},
		{
			name:    "slot ended earlier today",
			date:    "2026-03-04",
			start:   "08:30",
			end:     "09:30",
			wantErr: "reservations cannot be made in the past",
		},
		{
			name:    "end equal to start",
			date:    "2026-03-05",
			start:   "09:00",
			end:     "09:00",
			wantErr: "end time must be after start time",
		},
		{
			name:    "end before start",
			date:    "2026-03-05",
			start:   "10:00",
			end:     "09:00",
			wantErr: "end time must be after start time",
		},
		{
			name:  "last day inside the 90 day horizon",
			date:  "2026-06-02",
			start: "10:00",
			end:   "10:30",
		},
		{
			name:  "afternoon of the last day inside the horizon",
			date:  "2026-06-02",
			start: "14:00",
			end:   "15:00",
		},
		{
			name:    "one day beyond the 90 day horizon",
			date:    "2026-06-03",
			start:   "09:00",
			end:     "09:30",
			wantErr: "reservations cannot be made more than 90 days in advance",
		},
		{
			name:    "saturday",
			date:    "2026-03-07",
			start:   "09:00",
			end:     "10:00",
			wantErr: "reservations are only allowed Monday through Friday",
		},
		{
			name:    "sunday",
			date:    "2026-03-08",
			start:   "09:00",
			end:     "10:00",
			wantErr: "reservations are only allowed Monday through Friday",
		},
		{
			name:    "start before opening",
			date:    "2026-03-05",
			start:   "07:30",
			end:     "08:30",
			wantErr: "reservations are only allowed between 08:00 and 18:00",
		},
		{
			name:    "end after closing",
			date:    "2026-03-05",
			start:   "17:30",
			end:     "18:30",
			wantErr: "reservations are only allowed between 08:00 and 18:00",
		},
		{
			name:  "first slot of the day",
			date:  "2026-03-05",
			start: "08:00",
			end:   "08:30",
		},
		{
			name:  "last slot of the day",
			date:  "2026-03-05",
			start: "17:30",
			end:   "18:00",
		},
		{
			name:    "shorter than the minimum duration",
			date:    "2026-03-05",
			start:   "09:00",
			end:     "09:15",
			wantErr: "minimum reservation duration is 30 minutes",
		},
		{
			name:    "longer than the maximum duration",
			date:    "2026-03-05",
			start:   "09:00",
			end:     "13:30",
			wantErr: "maximum reservation duration is 4 hours",
		},
		{
			name:  "exactly the maximum duration",
			date:  "2026-03-05",
			start: "09:00",
			end:   "13:00",
		},
		{
			name:    "times not aligned to the slot grid",
			date:    "2026-03-05",
			start:   "09:10",
			end:     "09:50",
			wantErr: "reservation times must be aligned to 30-minute slots",
		},
		{
			name:    "aligned start, misaligned end",
			date:    "2026-03-05",
			start:   "09:00",
			end:     "09:45",
			wantErr: "reservation times must be aligned to 30-minute slots",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schedule.ValidateSlot(mustDate(t, tt.date), mustClock(t, tt.start), mustClock(t, tt.end), now)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlot_RuleOrder(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	// A Saturday slot outside business hours in the past violates several
	// rules at once; the past rule must win.
	err := schedule.ValidateSlot(mustDate(t, "2026-02-28"), mustClock(t, "06:00"), mustClock(t, "07:00"), now)
	assert.EqualError(t, err, "reservations cannot be made in the past")

	// A future Saturday with inverted times reports the inversion first.
	err = schedule.ValidateSlot(mustDate(t, "2026-03-07"), mustClock(t, "10:00"), mustClock(t, "09:00"), now)
	assert.EqualError(t, err, "end time must be after start time")
}

func TestValidateCancellable(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		start   string
		wantErr bool
	}{
		{
			name:  "future reservation",
			date:  "2026-03-05",
			start: "09:00",
		},
		{
			name:  "later the same day",
			date:  "2026-03-04",
			start: "10:30",
		},
		{
			name:    "already started",
			date:    "2026-03-04",
			start:   "10:00",
			wantErr: true,
		},
		{
			name:    "already ended",
			date:    "2026-03-03",
			start:   "09:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schedule.ValidateCancellable(mustDate(t, tt.date), mustClock(t, tt.start), now)

			if tt.wantErr {
				assert.EqualError(t, err, "reservations that already started or ended cannot be cancelled")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
