package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Clock is the single time source of the service. All "now" reads and all
// zone-less timestamp parsing go through it.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the given IANA timezone string.
// e.g. "Europe/Moscow"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// NewFixedClock returns a clock frozen at t. Used by tests.
func NewFixedClock(t time.Time) *Clock {
	return &Clock{location: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time truncated to seconds in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location).Truncate(time.Second)
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Parse reads a timestamp in DateTimeLayout in the clock's location.
// RFC3339 input with an explicit offset is accepted as well.
func (c *Clock) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.ParseInLocation(DateTimeLayout, value, c.location); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected %s", value, DateTimeLayout)
	}
	return t.In(c.location), nil
}

// Format renders t in DateTimeLayout in the clock's location.
func (c *Clock) Format(t time.Time) string {
	return t.In(c.location).Format(DateTimeLayout)
}
