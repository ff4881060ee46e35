package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	monthrender "xwstats/internal/adapters/render/month"
	"xwstats/internal/domain"
)

func newMonthCmd(app *app) *cobra.Command {
	var year, month int
	var userID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Fetch and display one month of puzzle history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMonth(cmd, app, userID, year, month, asJSON)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().StringVar(&userID, "user", "", "Account id (default: config user_id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runMonth(cmd *cobra.Command, app *app, userID string, year, month int, asJSON bool) error {
	now := app.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	session, err := app.session(cmd.Context(), userID)
	if err != nil {
		return err
	}

	if _, err := session.MonthSummary(cmd.Context(), year, month); err != nil {
		return fmt.Errorf("summarize %04d-%02d: %w", year, month, err)
	}

	view, err := session.MonthView(year, month)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, view)
	}

	rendered, err := app.monthRenderer(view, monthrender.RenderOptions{Today: domain.DateOf(now)})
	if err != nil {
		return fmt.Errorf("render month: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
