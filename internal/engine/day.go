package engine

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for calendar days: YYYY-MM-DD, no time component.
const DayFormat = "2006-01-02"

// Day is a calendar day with no time-of-day component. All arithmetic and
// comparison happens at day granularity — never compare serialized strings.
type Day struct {
	t time.Time // midnight UTC
}

// ParseDay parses a YYYY-MM-DD string. Malformed input is an error, not a
// best-effort coercion.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

// DayOf truncates a timestamp to its calendar day in the timestamp's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the day n days after d (negative n goes backward).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Sub returns the number of whole days between d and other (d - other).
func (d Day) Sub(other Day) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// Equal reports whether two days are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether d is the zero day.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) String() string {
	return d.t.Format(DayFormat)
}
