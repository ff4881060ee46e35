package domain

import (
	"fmt"
	"iter"
	"time"
)

// DateFormat is the wire format used for print dates.
const DateFormat = "2006-01-02"

// Date is a calendar day with no time-of-day and no location. It is
// comparable, so it can key the session's puzzle map directly.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format(DateFormat)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MonthRange returns the first and last day of the given month. The year is
// not range-checked; a month outside 1-12 fails with ErrInvalidMonth.
func MonthRange(year, month int) (Date, Date, error) {
	if month < 1 || month > 12 {
		return Date{}, Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	start := NewDate(year, time.Month(month), 1)
	// Day zero of the following month normalizes to the last day of this one.
	end := DateOf(time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC))

	return start, end, nil
}

// DatesBetween yields every day from start to end inclusive, ascending. The
// sequence is pure: it can be ranged over any number of times and carries no
// dependency on fetch results. An inverted range yields nothing.
func DatesBetween(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for current := start; !current.After(end); current = current.AddDays(1) {
			if !yield(current) {
				return
			}
		}
	}
}
