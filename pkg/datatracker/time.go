package datatracker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// wireTimeLayout is how the Datatracker renders timestamps: no zone suffix,
// UTC implied, optionally with fractional seconds.
const wireTimeLayout = "2006-01-02T15:04:05"

// Time is a Datatracker timestamp. It decodes the wire layout leniently,
// accepting fractional seconds and a handful of variant spellings, always
// pinned to UTC, and re-encodes the canonical layout. The zero Time encodes
// as null and decodes from null or an empty string.
type Time struct {
	time.Time
}

// NewTime pins t to UTC.
func NewTime(t time.Time) Time {
	return Time{t.UTC()}
}

// MarshalJSON renders the canonical wire layout, or null for the zero value.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	tt := t.UTC()
	layout := wireTimeLayout
	if tt.Nanosecond() != 0 {
		layout = wireTimeLayout + ".999999"
	}
	return []byte(strconv.Quote(tt.Format(layout))), nil
}

// UnmarshalJSON parses a wire timestamp. null and "" decode to the zero Time.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Time{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string, got %s", data)
	}
	if s == "" {
		*t = Time{}
		return nil
	}
	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	*t = Time{parsed.UTC()}
	return nil
}

// formatQueryTime renders a timestamp for time-window query parameters.
func formatQueryTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}
