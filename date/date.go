// Package date provides calendar dates with day granularity and
// date-indexed series, the building blocks for price histories that
// come from exchanges with different trading calendars.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the wire and display format for dates, ISO-8601.
const Format = "2006-01-02"

// readFormat is more permissive and accepts single digit month and day.
const readFormat = "2006-1-2"

// Date represents a calendar date, with no intra-day resolution.
// The zero value is the zero date, which sorts before any real date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
// Out-of-range values are carried over like in time.Date.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse reads a Date from its string form. It is lenient and accepts
// "2023-1-5" as well as "2023-01-05".
func Parse(s string) (Date, error) {
	t, err := time.Parse(readFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// time returns the canonical time.Time for that day, midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d sorts before, with
// or after x. It is the comparison function for binary searches.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns the date i days after d (or before, for negative i).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the number of days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()).Hours() / 24) }

// String formats the date in its standard form.
func (d Date) String() string { return d.time().Format(Format) }

// MarshalJSON encodes the date as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes the date from a JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	x, err := Parse(s)
	if err != nil {
		return err
	}
	*d = x
	return nil
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)

// Range is an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether on falls within the range, boundaries included.
func (r Range) Contains(on Date) bool { return !on.Before(r.From) && !on.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
