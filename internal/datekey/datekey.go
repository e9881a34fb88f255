// Package datekey derives the canonical per-day keys that address
// events and todos, and carries the small clock/date helpers shared by
// the store and the projections.
package datekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies one calendar day as "year-month-day", month 1-based,
// no zero padding. Two dates name the same day iff their keys are equal.
type Key string

// ErrBadKey reports a key that is not three dash-separated integers.
var ErrBadKey = errors.New("malformed date key")

// Of returns the key for the day containing t.
func Of(t time.Time) Key {
	return Key(fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day()))
}

// FromParts builds a key from a (year, month, day) triple. Out-of-range
// parts normalize the way time.Date does: day 0 of month M is the last
// day of M-1, month 13 rolls into the next year, and so on.
func FromParts(year, month, day int, loc *time.Location) Key {
	if loc == nil {
		loc = time.Local
	}
	return Of(time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc))
}

// Parse is the inverse of Of. The returned time is midnight of that day
// in loc. Keys that do not match the int-int-int shape fail with
// ErrBadKey.
func Parse(k Key, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(string(k), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadKey, k)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadKey, k)
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, loc), nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the most recent Sunday on or before t, at midnight.
// The week grid starts on Sunday everywhere in haru.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// ClockMinutes converts an "HH:MM" string to minutes since midnight.
func ClockMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	return h*60 + m, nil
}

// Clock formats an hour/minute pair as zero-padded "HH:MM".
func Clock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
