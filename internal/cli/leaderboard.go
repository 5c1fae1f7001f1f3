package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the current competition leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.adminSvc.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No users in leaderboard yet")
				return nil
			}

			fmt.Fprintln(out, "Current Leaderboard:")
			fmt.Fprintln(out)
			for i, e := range entries {
				fmt.Fprintf(out, "  %d. %s: %d points (%d solved)\n",
					i+1, e.Username, e.TotalScore, e.ProblemsSolved)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
