package types

import (
	"fmt"
	"time"
)

// localTimeLayout is the canonical on-disk representation: ISO-8601 local
// date-time without a timezone offset.
const localTimeLayout = "2006-01-02T15:04:05"

// localTimeParseLayouts lists the accepted input forms. Files written by
// earlier versions may carry fractional seconds.
var localTimeParseLayouts = []string{
	localTimeLayout,
	"2006-01-02T15:04:05.999999999",
}

// LocalTime is a time.Time that marshals to JSON as an ISO-8601 local
// date-time string (e.g. "2025-11-10T12:34:56") with no timezone offset.
type LocalTime struct {
	time.Time
}

// NewLocalTime wraps t, truncated to whole seconds to match the stored
// resolution.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t.Truncate(time.Second)}
}

// Now returns the current wall-clock time as a LocalTime.
func Now() LocalTime {
	return NewLocalTime(time.Now())
}

// String renders the time in the same ISO-8601 local form used on disk.
func (t LocalTime) String() string {
	return t.Format(localTimeLayout)
}

// MarshalJSON encodes the time as a quoted ISO-8601 local date-time string.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localTimeLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO-8601 local date-time string. A JSON
// null leaves the zero value in place.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("local time: not a JSON string: %s", s)
	}
	s = s[1 : len(s)-1]
	var lastErr error
	for _, layout := range localTimeParseLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("local time: parsing %q: %w", s, lastErr)
}
