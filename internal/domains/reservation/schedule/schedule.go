// Package schedule holds the business-hour rules a reservation slot must
// satisfy. Every check is a pure function of the candidate slot and the
// caller-supplied reference instant, so rules can be tested without clocks
// or database state.
package schedule

import (
	"fmt"
	"time"

	"salas/shared/failure"
	"salas/shared/types"
)

const (
	OpeningHour        = 8
	ClosingHour        = 18
	SlotMinutes        = 30
	MinDurationMinutes = 30
	MaxDurationMinutes = 240
	MaxAdvanceDays     = 90
)

// ValidateSlot runs every scheduling rule against the candidate slot, in a
// fixed order so the caller always gets the first violated rule. The date and
// clock times are interpreted in now's location.
func ValidateSlot(date types.DateOnly, start, end types.ClockTime, now time.Time) error {
	endAt := types.At(date, end, now.Location())

	if endAt.Before(now) {
		return failure.BusinessRule(failure.KindScheduleRule, "reservations cannot be made in the past")
	}

	startMin := start.MinuteOfDay()
	endMin := end.MinuteOfDay()

	if endMin <= startMin {
		return failure.BusinessRule(failure.KindScheduleRule, "end time must be after start time")
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if day.After(today.AddDate(0, 0, MaxAdvanceDays)) {
		return failure.BusinessRule(failure.KindScheduleRule,
			fmt.Sprintf("reservations cannot be made more than %d days in advance", MaxAdvanceDays))
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return failure.BusinessRule(failure.KindScheduleRule, "reservations are only allowed Monday through Friday")
	}

	if startMin < OpeningHour*60 || endMin > ClosingHour*60 {
		return failure.BusinessRule(failure.KindScheduleRule,
			fmt.Sprintf("reservations are only allowed between %02d:00 and %02d:00", OpeningHour, ClosingHour))
	}

	duration := endMin - startMin
	if duration < MinDurationMinutes {
		return failure.BusinessRule(failure.KindScheduleRule,
			fmt.Sprintf("minimum reservation duration is %d minutes", MinDurationMinutes))
	}

	if duration > MaxDurationMinutes {
		return failure.BusinessRule(failure.KindScheduleRule,
			fmt.Sprintf("maximum reservation duration is %d hours", MaxDurationMinutes/60))
	}

	if startMin%SlotMinutes != 0 || endMin%SlotMinutes != 0 {
		return failure.BusinessRule(failure.KindScheduleRule,
			fmt.Sprintf("reservation times must be aligned to %d-minute slots", SlotMinutes))
	}

	return nil
}

// ValidateCancellable rejects cancelling a reservation whose start is not
// strictly in the future relative to now.
func ValidateCancellable(date types.DateOnly, start types.ClockTime, now time.Time) error {
	startAt := types.At(date, start, now.Location())

	if !startAt.After(now) {
		return failure.BusinessRule(failure.KindScheduleRule,
			"reservations that already started or ended cannot be cancelled")
	}

	return nil
}
