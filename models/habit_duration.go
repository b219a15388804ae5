package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned when a duration value cannot be parsed.
var ErrInvalidDuration = errors.New("invalid duration, expected [DD ][HH:[MM:]]ss")

// HabitDuration is the expected completion time of a habit.
// On the wire it is rendered as HH:MM:SS, in storage as whole seconds.
type HabitDuration time.Duration

// maxDurationSeconds is the largest whole second count a time.Duration holds.
const maxDurationSeconds = int64(math.MaxInt64 / int64(time.Second))

// MaxHabitDuration is the value out-of-range input saturates to, so an upper
// bound check rejects it instead of seeing a wrapped negative duration.
const MaxHabitDuration = HabitDuration(maxDurationSeconds * int64(time.Second))

// ParseHabitDuration accepts "[DD ][HH:[MM:]]ss[.000000]". Durations are kept
// in whole seconds, a non-zero fraction is rejected.
func ParseHabitDuration(s string) (HabitDuration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDuration
	}

	var total int64
	if i := strings.IndexByte(s, ' '); i >= 0 {
		days, err := parseDurationUnit(s[:i])
		if err != nil {
			return 0, err
		}
		total = addScaled(total, days, 24*60*60)
		s = strings.TrimSpace(s[i+1:])
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, ErrInvalidDuration
	}

	seconds, err := parseDurationSeconds(parts[len(parts)-1])
	if err != nil {
		return 0, err
	}
	total = addScaled(total, seconds, 1)

	units := []int64{60, 60 * 60}
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := parseDurationUnit(parts[i])
		if err != nil {
			return 0, err
		}
		total = addScaled(total, n, units[len(parts)-2-i])
	}

	return durationFromSeconds(total), nil
}

// parseDurationUnit parses a non-negative decimal. Values beyond the
// representable range saturate at maxDurationSeconds.
func parseDurationUnit(s string) (int64, error) {
	if !isDigits(s) {
		return 0, ErrInvalidDuration
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) || n > maxDurationSeconds {
		return maxDurationSeconds, nil
	}
	if err != nil {
		return 0, ErrInvalidDuration
	}
	return n, nil
}

func parseDurationSeconds(s string) (int64, error) {
	whole, fraction, hasFraction := strings.Cut(s, ".")
	if hasFraction && (!isDigits(fraction) || strings.Trim(fraction, "0") != "") {
		return 0, fmt.Errorf("%w: sub-second precision is not supported", ErrInvalidDuration)
	}
	return parseDurationUnit(whole)
}

// addScaled returns total + n*unit, saturating at maxDurationSeconds.
// total and n must be non-negative.
func addScaled(total, n, unit int64) int64 {
	if n > (maxDurationSeconds-total)/unit {
		return maxDurationSeconds
	}
	return total + n*unit
}

func durationFromSeconds(n int64) HabitDuration {
	if n > maxDurationSeconds {
		return MaxHabitDuration
	}
	return HabitDuration(time.Duration(n) * time.Second)
}

// Seconds returns the duration in whole seconds.
func (d HabitDuration) Seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// String renders d as HH:MM:SS, prefixed with the day count when it spans
// more than a day.
func (d HabitDuration) String() string {
	total := d.Seconds()
	days := total / 86400
	total %= 86400
	clock := fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
	if days > 0 {
		return fmt.Sprintf("%d %s", days, clock)
	}
	return clock
}

func (d HabitDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the string forms of ParseHabitDuration or a bare
// whole number of seconds.
func (d *HabitDuration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return ErrInvalidDuration
	}

	switch value := v.(type) {
	case float64:
		if value < 0 || value != math.Trunc(value) {
			return ErrInvalidDuration
		}
		if value > float64(maxDurationSeconds) {
			*d = MaxHabitDuration
			return nil
		}
		*d = durationFromSeconds(int64(value))
		return nil
	case string:
		parsed, err := ParseHabitDuration(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return ErrInvalidDuration
	}
}

// Value implements driver.Valuer.
func (d HabitDuration) Value() (driver.Value, error) {
	return d.Seconds(), nil
}

// Scan implements sql.Scanner.
func (d *HabitDuration) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*d = durationFromSeconds(v)
	case int32:
		*d = durationFromSeconds(int64(v))
	case int:
		*d = durationFromSeconds(int64(v))
	case float64:
		*d = durationFromSeconds(int64(v))
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot scan %q into HabitDuration: %w", v, err)
		}
		*d = durationFromSeconds(n)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("cannot scan %T into HabitDuration", src)
	}
	return nil
}
