package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"xwstats/internal/application"
	"xwstats/internal/domain"
)

type summaryReport struct {
	From       string                `json:"from"`
	To         string                `json:"to"`
	TotalDays  int                   `json:"total_days"`
	LoadedDays int                   `json:"loaded_days"`
	Solved     int                   `json:"solved"`
	InProgress int                   `json:"in_progress"`
	NotStarted int                   `json:"not_started"`
	SolveRate  float64               `json:"solve_rate"`
	ByWeekday  map[string]weekdayRow `json:"by_weekday"`
}

type weekdayRow struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

func newSummaryCmd(app *app) *cobra.Command {
	var from, to, userID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate solve stats over a range of months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, app, userID, from, to, asJSON)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First month, YYYY-MM")
	cmd.Flags().StringVar(&to, "to", "", "Last month, YYYY-MM (default: current)")
	cmd.Flags().StringVar(&userID, "user", "", "Account id (default: config user_id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func runSummary(cmd *cobra.Command, app *app, userID, from, to string, asJSON bool) error {
	fromYM, err := application.ParseYearMonth(from)
	if err != nil {
		return err
	}

	toYM := application.YearMonth{Year: app.now().Year(), Month: int(app.now().Month())}
	if to != "" {
		toYM, err = application.ParseYearMonth(to)
		if err != nil {
			return err
		}
	}

	session, err := app.session(cmd.Context(), userID)
	if err != nil {
		return err
	}

	var dates []domain.Date
	fetch := func(ctx context.Context) error {
		dates, err = session.RangeSummary(ctx, fromYM.Year, fromYM.Month, toYM.Year, toYM.Month)
		return err
	}

	if asJSON {
		if err := fetch(cmd.Context()); err != nil {
			return err
		}
	} else {
		label := fmt.Sprintf("Fetching archive %s..%s...", fromYM, toYM)
		if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fetch); err != nil {
			return err
		}
	}

	stats := session.AggregateRange(dates)

	if asJSON {
		return writeJSON(cmd, buildSummaryReport(fromYM, toYM, stats))
	}

	return writeSummaryText(cmd, fromYM, toYM, stats)
}

func buildSummaryReport(from, to application.YearMonth, stats application.RangeStats) summaryReport {
	report := summaryReport{
		From:       from.String(),
		To:         to.String(),
		TotalDays:  stats.TotalDays,
		LoadedDays: stats.LoadedDays,
		Solved:     stats.Solved(),
		InProgress: stats.ByStatus[domain.StatusInProgress],
		NotStarted: stats.ByStatus[domain.StatusNotStarted],
		SolveRate:  stats.SolveRate(),
		ByWeekday:  make(map[string]weekdayRow, 7),
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		row := stats.ByWeekday[weekday]
		if row.Total == 0 {
			continue
		}
		report.ByWeekday[weekday.String()] = weekdayRow{Solved: row.Solved, Total: row.Total}
	}

	return report
}

func writeSummaryText(cmd *cobra.Command, from, to application.YearMonth, stats application.RangeStats) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s .. %s\n", from, to)
	fmt.Fprintf(out, "days:        %d (%d loaded)\n", stats.TotalDays, stats.LoadedDays)
	fmt.Fprintf(out, "solved:      %d (%.0f%%)\n", stats.Solved(), 100*stats.SolveRate())
	fmt.Fprintf(out, "in progress: %d\n", stats.ByStatus[domain.StatusInProgress])
	fmt.Fprintf(out, "not started: %d\n", stats.ByStatus[domain.StatusNotStarted])

	fmt.Fprintln(out, "by weekday:")
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		row := stats.ByWeekday[weekday]
		if row.Total == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-9s %d/%d (%.0f%%)\n", weekday, row.Solved, row.Total, 100*row.Rate())
	}

	return nil
}
