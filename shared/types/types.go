package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"salas/shared/constant"
	"salas/shared/timezone"
)

const clockTimeColumnFormat = "15:04:05"

// DateOnly is a calendar date persisted as a Postgres DATE, free of any
// time-of-day or offset component.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func ParseDateOnly(value string) (DateOnly, error) {
	t, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return DateOnly{Time: t}, nil
}

func (d DateOnly) String() string {
	return d.Format(constant.DateFormat)
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(constant.DateFormat), nil
}

func (d *DateOnly) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, timezone.GetLocation())

		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
}

func (d *DateOnly) parse(value string) error {
	parsed, err := ParseDateOnly(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	return d.parse(value)
}

// ClockTime is a wall-clock time of day persisted as a Postgres TIME,
// interpreted in the organizational timezone.
type ClockTime struct {
	time.Time
}

func ParseClockTime(value string) (ClockTime, error) {
	t, err := time.Parse(constant.TimeFormat, value)
	if err != nil {
		if t, err = time.Parse(clockTimeColumnFormat, value); err != nil {
			return ClockTime{}, fmt.Errorf("invalid time %q: %w", value, err)
		}
	}

	return ClockTime{Time: t}, nil
}

func (c ClockTime) String() string {
	return c.Format(constant.TimeFormat)
}

// MinuteOfDay returns the number of minutes elapsed since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour()*60 + c.Minute()
}

func (c ClockTime) Value() (driver.Value, error) {
	return c.Format(clockTimeColumnFormat), nil
}

func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.Time = v

		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}

func (c *ClockTime) parse(value string) error {
	parsed, err := ParseClockTime(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid time: %w", err)
	}

	return c.parse(value)
}

// At combines a calendar date and a clock time into a single instant in the
// given location.
func At(date DateOnly, clock ClockTime, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
}
