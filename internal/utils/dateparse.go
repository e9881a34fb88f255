package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/jiyoungv/haru/internal/datekey"
)

// ParseTarget resolves a navigation-target date from CLI input. The
// canonical "YYYY-M-D" key form is tried first, then a few natural
// words and common date layouts. Empty input means today.
func ParseTarget(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	now := time.Now().In(loc)
	today := datekey.StartOfDay(now)

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if t, err := datekey.Parse(datekey.Key(input), loc); err == nil {
		return t, nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return datekey.StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// ParseTargetOrToday is ParseTarget with the error swallowed: a
// malformed navigation target falls back to today, matching how the
// views treat a bad date parameter.
func ParseTargetOrToday(input string, loc *time.Location) time.Time {
	t, err := ParseTarget(input, loc)
	if err != nil {
		return datekey.StartOfDay(time.Now().In(loc))
	}
	return t
}
