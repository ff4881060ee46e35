package application

import (
	"time"

	"xwstats/internal/domain"
)

// DayCell pairs a calendar day with whatever the archive reported for it.
// Puzzle is nil for days the service returned no record.
type DayCell struct {
	Date   domain.Date
	Puzzle *domain.Puzzle
}

// MonthView is one month's day cells in ascending order, built purely from
// state already loaded into the session.
type MonthView struct {
	Year  int
	Month time.Month
	Days  []DayCell
}

// MonthView assembles the view for a month. It performs no fetching; call
// MonthSummary first if the month hasn't been loaded.
func (s *Session) MonthView(year, month int) (MonthView, error) {
	start, end, err := domain.MonthRange(year, month)
	if err != nil {
		return MonthView{}, err
	}

	view := MonthView{Year: year, Month: time.Month(month)}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for date := range domain.DatesBetween(start, end) {
		cell := DayCell{Date: date}
		if puzzle, ok := s.puzzles[date]; ok {
			cell.Puzzle = &puzzle
		}
		view.Days = append(view.Days, cell)
	}

	return view, nil
}
