package models

import (
	"encoding/json"
	"time"

	dErrors "covera/pkg/domain-errors"
)

// DateLayout is the wire format for claim dates.
const DateLayout = "2006-01-02"

// MonthLayout is the key format used by monthly aggregates.
const MonthLayout = "2006-01"

// Date is a calendar date with no time of day or zone. The zero value is
// 0001-01-01.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its parts. Out-of-range parts are normalized the
// way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, dErrors.New(dErrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD")
	}
	return Date{t: t}, nil
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// MonthKey returns the YYYY-MM month the date falls in.
func (d Date) MonthKey() string {
	return d.t.Format(MonthLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "date must be a string")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
