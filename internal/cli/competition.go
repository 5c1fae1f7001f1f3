package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSetCompCommand creates a new competition from config. When one
// already exists the operator is asked to confirm; the new competition
// becomes current by virtue of its later creation timestamp.
func newSetCompCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "set-comp",
		Short: "Create a new competition from config",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			current, err := a.adminSvc.CurrentCompetition(cmd.Context())
			if err != nil {
				return err
			}
			if current != nil && !yes {
				fmt.Fprintf(out, "Existing competition found: %q\n\n", current.Name)
				if !confirm(cmd.InOrStdin(), out, "Create new competition anyway?") {
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
				fmt.Fprintln(out)
			}

			id, err := a.adminSvc.CreateCompetition(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Competition %q created (ID: %d)\n\n", a.cfg.Competition.Name, id)
			fmt.Fprintln(out, "Competition details:")
			fmt.Fprintf(out, "  Name: %s\n", a.cfg.Competition.Name)
			fmt.Fprintf(out, "  Start: %s\n", a.cfg.Competition.StartDate)
			fmt.Fprintf(out, "  End: %s\n", a.cfg.Competition.EndDate)
			fmt.Fprintf(out, "  Problems: %d\n", len(a.cfg.Problems))
			fmt.Fprintf(out, "  Participants: %d\n", len(a.cfg.Usernames))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newMarkRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-run",
		Short: "Mark the current competition as run",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			current, err := a.adminSvc.CurrentCompetition(cmd.Context())
			if err != nil {
				return err
			}
			if current == nil {
				fmt.Fprintln(out, "No competition found")
				return nil
			}

			if err := a.adminSvc.MarkRun(cmd.Context(), current.ID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Competition %q marked as run\n", current.Name)
			return nil
		},
	}
}

// newRevertRunCommand clears the current competition's submissions,
// resets cached user stats and drops the run flag, after confirmation.
// Other competitions' submissions are left alone.
func newRevertRunCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "revert-run",
		Short: "Revert the current competition's run and clear its submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			current, err := a.adminSvc.CurrentCompetition(cmd.Context())
			if err != nil {
				return err
			}
			if current == nil {
				fmt.Fprintln(out, "No competition found")
				fmt.Fprintln(out, "Run 'leetcode-bot set-comp' to create a competition first")
				return nil
			}
			if !current.HasRun {
				fmt.Fprintf(out, "Competition %q has not been run yet\n", current.Name)
				return nil
			}

			if !yes {
				fmt.Fprintf(out, "Competition %q has been run\n\n", current.Name)
				fmt.Fprintln(out, "This will:")
				fmt.Fprintln(out, "  1. Clear all submissions from this run")
				fmt.Fprintln(out, "  2. Reset user statistics")
				fmt.Fprintln(out, "  3. Mark competition as not run")
				fmt.Fprintln(out)
				fmt.Fprintln(out, "This will delete submission data!")
				fmt.Fprintln(out)
				if !confirm(cmd.InOrStdin(), out, "Revert run and clear data?") {
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
				fmt.Fprintln(out)
			}

			cleared, err := a.adminSvc.RevertRun(cmd.Context(), current.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Cleared %d submissions for this competition\n", cleared)
			fmt.Fprintln(out, "Reset user statistics")
			fmt.Fprintln(out, "Marked as not run")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Competition reverted! You can now run again")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all submissions and cached user stats (keeps problems and competitions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprintln(out, "This will delete every submission across all competitions!")
				fmt.Fprintln(out)
				if !confirm(cmd.InOrStdin(), out, "Reset database?") {
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
				fmt.Fprintln(out)
			}

			cleared, err := a.adminSvc.Reset(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Cleared %d submissions\n", cleared)
			fmt.Fprintln(out, "Reset user statistics")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Database reset complete!")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
