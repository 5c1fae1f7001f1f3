package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current competition status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.adminSvc.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if stats.Current == nil {
				fmt.Fprintln(out, "No competition found")
				fmt.Fprintln(out, "Run 'leetcode-bot set-comp' to create a competition first")
				return nil
			}

			comp := stats.Current
			state := "Not run yet"
			if comp.HasRun {
				state = "Completed"
			}

			fmt.Fprintln(out, "Current Competition:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Name: %s\n", comp.Name)
			fmt.Fprintf(out, "  Period: %s to %s\n", comp.StartDate, comp.EndDate)
			fmt.Fprintf(out, "  Status: %s\n", state)
			fmt.Fprintf(out, "  Created: %s\n", comp.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Problems: %d\n", stats.Problems)
			fmt.Fprintf(out, "  Users: %d\n", stats.Users)
			fmt.Fprintln(out)

			if comp.HasRun {
				fmt.Fprintln(out, "Competition has been run. Use 'leetcode-bot revert-run' to allow re-running.")
			} else {
				fmt.Fprintln(out, "Competition ready. Run 'leetcode-bot run' to start.")
			}
			return nil
		},
	}
}
