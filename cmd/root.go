package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "xw",
		Short:         "Crossword stats CLI (xw): browse your NYT solve history",
		Long:          "xw fetches your NYT crossword archive, renders per-month completion calendars, shows per-game solve stats, and aggregates solve rates over date ranges, authenticated by the NYT-S session cookie from a local cookie jar.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newMonthCmd(app),
		newDayCmd(app),
		newGameCmd(app),
		newSummaryCmd(app),
	)

	return rootCmd
}
