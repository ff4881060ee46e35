package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"xwstats/internal/domain"
)

type gameReport struct {
	Calcs  json.RawMessage `json:"calcs"`
	Firsts json.RawMessage `json:"firsts,omitempty"`
}

func newGameCmd(app *app) *cobra.Command {
	var userID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "game <game-id>",
		Short: "Fetch computed stats for one puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, app, userID, args[0], asJSON)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Account id (default: config user_id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render raw JSON payload")

	return cmd
}

func runGame(cmd *cobra.Command, app *app, userID, gameID string, asJSON bool) error {
	session, err := app.session(cmd.Context(), userID)
	if err != nil {
		return err
	}

	detail, err := session.GameStats(cmd.Context(), gameID)
	if err != nil {
		return fmt.Errorf("fetch game %s: %w", gameID, err)
	}

	if asJSON {
		return writeJSON(cmd, gameReport{Calcs: detail.Calcs, Firsts: detail.Firsts})
	}

	view := detail.SolveView()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "game %s\n", gameID)
	fmt.Fprintf(out, "attempted:   %s\n", yesNo(view.Attempted))

	if view.SolvedAt != nil {
		fmt.Fprintf(out, "solved at:   %s\n", view.SolvedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(out, "clean solve: %s\n", yesNo(view.CleanlySolved))
	} else {
		fmt.Fprintln(out, "solved at:   n/a")
	}

	if view.SolveSeconds != nil {
		fmt.Fprintf(out, "solve time:  %s\n", domain.FormatSeconds(*view.SolveSeconds))
	} else {
		fmt.Fprintln(out, "solve time:  n/a")
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
