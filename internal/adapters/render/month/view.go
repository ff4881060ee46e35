package month

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xwstats/internal/application"
	"xwstats/internal/domain"
)

type RenderOptions struct {
	// Today, when set, highlights the matching day cell.
	Today domain.Date
}

func renderView(view application.MonthView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("%s %d", view.Month, view.Year)),
		s.header.Render("Su Mo Tu We Th Fr Sa"),
	}

	lines = append(lines, weekLines(view, opts, s)...)
	lines = append(lines, legendLine(s), s.summary.Render(summaryLine(view)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func weekLines(view application.MonthView, opts RenderOptions, s styles) []string {
	var weeks []string
	cells := make([]string, 0, 7)

	if len(view.Days) > 0 {
		for range int(view.Days[0].Date.Weekday()) {
			cells = append(cells, "  ")
		}
	}

	for _, day := range view.Days {
		cells = append(cells, renderDay(day, opts, s))
		if len(cells) == 7 {
			weeks = append(weeks, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}

	if len(cells) > 0 {
		weeks = append(weeks, strings.Join(cells, " "))
	}

	return weeks
}

func renderDay(cell application.DayCell, opts RenderOptions, s styles) string {
	text := fmt.Sprintf("%2d", cell.Date.Day)

	style := s.noData
	if cell.Puzzle != nil {
		switch cell.Puzzle.Status {
		case domain.StatusDone:
			style = s.done
		case domain.StatusInProgress:
			style = s.inProgress
		case domain.StatusNotStarted:
			style = s.notStarted
		}
	}

	if cell.Date == opts.Today {
		style = style.Inherit(s.today)
	}

	return style.Render(text)
}

func legendLine(s styles) string {
	return strings.Join([]string{
		s.done.Render("■ solved"),
		s.inProgress.Render("■ in progress"),
		s.notStarted.Render("■ not started"),
		s.noData.Render("· no data"),
	}, "  ")
}

func summaryLine(view application.MonthView) string {
	var solved, loaded int
	for _, day := range view.Days {
		if day.Puzzle == nil {
			continue
		}
		loaded++
		if day.Puzzle.Status == domain.StatusDone {
			solved++
		}
	}

	return fmt.Sprintf("solved %d of %d · %d days loaded", solved, len(view.Days), loaded)
}
