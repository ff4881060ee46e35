package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRangeLengths(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
	}{
		{name: "january", year: 2023, month: 1, days: 31},
		{name: "april", year: 2023, month: 4, days: 30},
		{name: "february common year", year: 2023, month: 2, days: 28},
		{name: "february leap year", year: 2024, month: 2, days: 29},
		{name: "february century non-leap", year: 1900, month: 2, days: 28},
		{name: "february quadricentennial leap", year: 2000, month: 2, days: 29},
		{name: "december", year: 2024, month: 12, days: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.year, tt.month)
			require.NoError(t, err)

			assert.Equal(t, NewDate(tt.year, time.Month(tt.month), 1), start)
			assert.Equal(t, NewDate(tt.year, time.Month(tt.month), tt.days), end)
		})
	}
}

func TestMonthRangeRejectsOutOfRangeMonth(t *testing.T) {
	for _, month := range []int{0, 13, -3} {
		_, _, err := MonthRange(2024, month)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestDatesBetweenCoversLeapFebruary(t *testing.T) {
	start, end, err := MonthRange(2024, 2)
	require.NoError(t, err)

	var dates []Date
	for date := range DatesBetween(start, end) {
		dates = append(dates, date)
	}

	require.Len(t, dates, 29)
	assert.Equal(t, "2024-02-01", dates[0].String())
	assert.Equal(t, "2024-02-29", dates[28].String())

	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]), "dates must ascend strictly")
	}
}

func TestDatesBetweenIsRestartable(t *testing.T) {
	seq := DatesBetween(NewDate(2024, time.March, 30), NewDate(2024, time.April, 2))

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count())
}

func TestDatesBetweenInvertedRangeIsEmpty(t *testing.T) {
	seq := DatesBetween(NewDate(2024, time.May, 2), NewDate(2024, time.May, 1))

	for range seq {
		t.Fatal("inverted range must not yield dates")
	}
}

func TestDatesBetweenStopsWhenYieldReturnsFalse(t *testing.T) {
	seq := DatesBetween(NewDate(2024, time.May, 1), NewDate(2024, time.May, 31))

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}

	assert.Equal(t, 3, n)
}

func TestParseDateRoundTrip(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), date)
	assert.Equal(t, "2024-02-29", date.String())
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "2024-2-29", "02/29/2024", "2024-13-01", "not a date"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseDate(value)
			require.Error(t, err)
		})
	}
}

func TestAddDaysNormalizesAcrossMonthBoundary(t *testing.T) {
	date := NewDate(2024, time.January, 31).AddDays(1)
	assert.Equal(t, NewDate(2024, time.February, 1), date)

	date = NewDate(2024, time.March, 1).AddDays(-1)
	assert.Equal(t, NewDate(2024, time.February, 29), date)
}

func TestWeekday(t *testing.T) {
	// 2024-02-29 was a Thursday.
	assert.Equal(t, time.Thursday, NewDate(2024, time.February, 29).Weekday())
}
