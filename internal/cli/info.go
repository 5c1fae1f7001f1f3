package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show database statistics",
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
			fmt.Fprintln(out, "Database Statistics:")
			fmt.Fprintln(out)
			if stats.Current != nil {
				fmt.Fprintf(out, "  Current Competition: %s\n", stats.Current.Name)
			}
			fmt.Fprintf(out, "  Total Competitions: %d\n", stats.Competitions)
			fmt.Fprintf(out, "  Problems: %d\n", stats.Problems)
			fmt.Fprintf(out, "  Users: %d\n", stats.Users)
			if stats.Current != nil {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "  Current Comp Submissions: %d\n", stats.Submissions)
				fmt.Fprintf(out, "  Current Comp Solved: %d\n", stats.Solved)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
