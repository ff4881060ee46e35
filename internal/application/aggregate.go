package application

import (
	"math"

	"xwstats/internal/domain"
)

// WeekdayStats counts solved puzzles against loaded puzzles for one weekday.
type WeekdayStats struct {
	Solved int
	Total  int
}

func (w WeekdayStats) Rate() float64 {
	if w.Total == 0 {
		return 0
	}

	return math.Round(100*float64(w.Solved)/float64(w.Total)) / 100
}

// RangeStats aggregates completion over a set of dates. Only days some month
// summary actually loaded contribute; uncovered days count toward TotalDays
// alone.
type RangeStats struct {
	TotalDays  int
	LoadedDays int
	ByStatus   map[domain.Status]int
	// ByWeekday is indexed by time.Weekday (Sunday = 0).
	ByWeekday [7]WeekdayStats
}

func (r RangeStats) Solved() int {
	return r.ByStatus[domain.StatusDone]
}

// SolveRate is the share of loaded days that were solved, 0..1.
func (r RangeStats) SolveRate() float64 {
	if r.LoadedDays == 0 {
		return 0
	}

	return float64(r.Solved()) / float64(r.LoadedDays)
}

// AggregateRange folds the session's records for the given dates into
// RangeStats.
func (s *Session) AggregateRange(dates []domain.Date) RangeStats {
	stats := RangeStats{ByStatus: make(map[domain.Status]int)}

	for _, date := range dates {
		stats.TotalDays++

		puzzle, err := s.DayStats(date)
		if err != nil {
			continue
		}

		stats.LoadedDays++
		stats.ByStatus[puzzle.Status]++

		weekday := date.Weekday()
		stats.ByWeekday[weekday].Total++
		if puzzle.Status == domain.StatusDone {
			stats.ByWeekday[weekday].Solved++
		}
	}

	return stats
}
