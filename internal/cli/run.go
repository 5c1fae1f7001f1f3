package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRunCommand is the cron entry point: one full scrape-score-rank
// pass. Failures exit non-zero so cron surfaces them.
func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Scrape all configured users and update the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.syncSvc.Run(cmd.Context()); err != nil {
				a.log.Errorf("Bot failed: %v", err)
				return err
			}

			entries, err := a.adminSvc.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}

			if len(entries) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), "Leaderboard:")
				for i, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s: %d points (%d solved)\n",
						i+1, e.Username, e.TotalScore, e.ProblemsSolved)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}
}
