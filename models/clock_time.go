package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClockTime is returned when a time-of-day value cannot be parsed.
var ErrInvalidClockTime = errors.New("invalid time of day, expected HH:MM[:SS]")

// ClockTime is a wall-clock time of day without a date, stored as seconds
// since midnight. The value 24:00:00 is allowed and only used as an exclusive
// upper bound of a lookup window.
type ClockTime struct {
	seconds int
}

const secondsPerDay = 24 * 60 * 60

// NewClockTime builds a ClockTime from its components.
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime{seconds: hour*3600 + minute*60 + second}
}

// ClockTimeOf returns the hour and minute of t with seconds truncated.
func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute(), 0)
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS", optionally followed by a
// fractional second part which is dropped. Each component is one or two
// digits, anything else is rejected.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	s, fraction, hasFraction := strings.Cut(s, ".")

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, ErrInvalidClockTime
	}
	if hasFraction && (len(parts) != 3 || !isDigits(fraction)) {
		return ClockTime{}, ErrInvalidClockTime
	}

	var fields [3]int
	for i, part := range parts {
		if len(part) > 2 || !isDigits(part) {
			return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, part)
		}
		fields[i], _ = strconv.Atoi(part)
	}

	h, m, sec := fields[0], fields[1], fields[2]
	if h > 23 || m > 59 || sec > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}

	return NewClockTime(h, m, sec), nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (c ClockTime) Hour() int   { return c.seconds / 3600 }
func (c ClockTime) Minute() int { return c.seconds % 3600 / 60 }
func (c ClockTime) Second() int { return c.seconds % 60 }

// Add shifts c by d. The result is capped at 24:00:00 and never wraps.
func (c ClockTime) Add(d time.Duration) ClockTime {
	s := c.seconds + int(d/time.Second)
	if s > secondsPerDay {
		s = secondsPerDay
	}
	if s < 0 {
		s = 0
	}
	return ClockTime{seconds: s}
}

// Before reports whether c is earlier than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.seconds < other.seconds
}

// IsZero reports whether c is midnight (also the zero value).
func (c ClockTime) IsZero() bool {
	return c.seconds == 0
}

// String formats c as HH:MM:SS.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidClockTime
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer.
func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner. PostgreSQL TIME columns arrive as strings
// or time.Time depending on the driver, SQLite columns as text.
func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseClockTime(v)
		if err != nil {
			return err
		}
		*c = parsed
	case []byte:
		parsed, err := ParseClockTime(string(v))
		if err != nil {
			return err
		}
		*c = parsed
	case time.Time:
		*c = NewClockTime(v.Hour(), v.Minute(), v.Second())
	case nil:
		*c = ClockTime{}
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
	return nil
}
