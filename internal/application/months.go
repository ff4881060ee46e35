package application

import (
	"fmt"
	"time"

	"xwstats/internal/domain"
)

// YearMonth names one calendar month.
type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(value string) (YearMonth, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w", value, err)
	}

	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// MonthsBetween lists every month from `from` through `to` inclusive, in
// order. An inverted range is empty, not an error; an out-of-range month
// fails with ErrInvalidMonth.
func MonthsBetween(fromYear, fromMonth, toYear, toMonth int) ([]YearMonth, error) {
	for _, month := range []int{fromMonth, toMonth} {
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %d", domain.ErrInvalidMonth, month)
		}
	}

	var months []YearMonth
	year, month := fromYear, fromMonth
	for year < toYear || (year == toYear && month <= toMonth) {
		months = append(months, YearMonth{Year: year, Month: month})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return months, nil
}
