package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// PublicSummaryLen is the body budget on the public list.
	PublicSummaryLen = 140
	// AdminSummaryLen is the body budget on the admin list.
	AdminSummaryLen = 120

	displayLayout    = "02/01/2006, 15:04:05"
	localInputLayout = "2006-01-02T15:04"
	isoLayout        = "2006-01-02T15:04:05.000Z"
	invalidDate      = "Invalid Date"
	ellipsis         = "…"
)

// ErrInvalidDate is returned when a datetime-local value cannot be parsed.
var ErrInvalidDate = errors.New("Data de criação inválida.")

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the date-like values the API has been seen to return:
// RFC3339 strings, zone-less local strings (read in loc) and epoch milliseconds.
func ParseTimestamp(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case json.Number:
		if ms, err := t.Float64(); err == nil {
			return fromMillis(ms), true
		}
		return time.Time{}, false
	case float64:
		return fromMillis(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
				return parsed, true
			}
		}
		if ms, err := strconv.ParseFloat(s, 64); err == nil {
			return fromMillis(ms), true
		}
	}
	return time.Time{}, false
}

func fromMillis(ms float64) time.Time {
	sec, frac := math.Modf(ms / 1000)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// FormatDate renders a timestamp as pt-BR local date and time. Empty values render "-".
func FormatDate(v any, loc *time.Location) string {
	if v == nil {
		return "-"
	}
	if s, ok := v.(string); ok && s == "" {
		return "-"
	}
	t, ok := ParseTimestamp(v, loc)
	if !ok {
		return invalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(displayLayout)
}

// Truncate cuts s to n runes, appending an ellipsis when anything was dropped.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + ellipsis
}

// ToLocalInput converts a stored timestamp to the datetime-local input format.
func ToLocalInput(v any, loc *time.Location) string {
	t, ok := ParseTimestamp(v, loc)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(localInputLayout)
}

// NowLocalInput is now, truncated to the minute, in datetime-local format.
func NowLocalInput(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Truncate(time.Minute).Format(localInputLayout)
}

// LocalInputToISO converts a datetime-local value read in loc into a UTC ISO-8601 string
// with millisecond precision.
func LocalInputToISO(s string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{localInputLayout, "2006-01-02T15:04:05", "2006-01-02T15:04:05.000"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC().Format(isoLayout), nil
		}
	}
	return "", ErrInvalidDate
}
