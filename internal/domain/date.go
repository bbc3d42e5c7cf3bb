package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component, anchored to UTC.
// Loan and due dates are stored and compared at day granularity only;
// Date serializes as ISO 8601 (YYYY-MM-DD) in the data file.
type Date struct {
	t time.Time
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &OpError{
			Op:   "domain.parse_date",
			Kind: KindInvalidInput,
			Err:  err,
		}
	}
	return DateOf(t), nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysSince returns the number of whole days from other up to d.
// Negative when d is before other.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &OpError{
			Op:   "domain.unmarshal_date",
			Kind: KindCorruptData,
			Err:  fmt.Errorf("expected quoted date, got %s", s),
		}
	}

	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return &OpError{
			Op:   "domain.unmarshal_date",
			Kind: KindCorruptData,
			Err:  err,
		}
	}
	*d = parsed
	return nil
}
