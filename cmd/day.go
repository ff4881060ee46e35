package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"xwstats/internal/domain"
)

type dayReport struct {
	Date   string          `json:"date"`
	ID     domain.PuzzleID `json:"puzzle_id"`
	Status domain.Status   `json:"status"`
}

func newDayCmd(app *app) *cobra.Command {
	var userID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show one day's puzzle status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(cmd, app, userID, args[0], asJSON)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Account id (default: config user_id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runDay(cmd *cobra.Command, app *app, userID, dateArg string, asJSON bool) error {
	date, err := domain.ParseDate(dateArg)
	if err != nil {
		return err
	}

	session, err := app.session(cmd.Context(), userID)
	if err != nil {
		return err
	}

	// Day lookups read the session cache only, so load the surrounding
	// month first.
	if _, err := session.MonthSummary(cmd.Context(), date.Year, int(date.Month)); err != nil {
		return fmt.Errorf("summarize %04d-%02d: %w", date.Year, date.Month, err)
	}

	puzzle, err := session.DayStats(date)
	if errors.Is(err, domain.ErrDayNotLoaded) {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "no puzzle record for %s\n", date)
		return err
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, dayReport{Date: date.String(), ID: puzzle.ID, Status: puzzle.Status})
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (puzzle %d)\n", date, puzzle.Status.Label(), puzzle.ID)
	return err
}
