package cli

import (
	"fmt"

	"github.com/hpitta26/Leetcode-Bot/internal/repository"

	"github.com/spf13/cobra"
)

func newSubmissionsCommand() *cobra.Command {
	var allCompetitions bool
	var username string

	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Show recorded submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			if username != "" {
				subs, err := a.adminSvc.UserSubmissions(cmd.Context(), username)
				if err != nil {
					return err
				}
				if len(subs) == 0 {
					fmt.Fprintf(out, "No submissions for %s yet\n", username)
					return nil
				}
				fmt.Fprintf(out, "Submissions for %s:\n\n", username)
				for _, sub := range subs {
					fmt.Fprintf(out, "  %s %s (%d points)\n", solvedMark(sub.Solved), sub.ProblemTitle, sub.Points)
				}
				fmt.Fprintln(out)
				return nil
			}

			subs, err := a.adminSvc.Submissions(cmd.Context(), allCompetitions)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Fprintln(out, "No submissions in database yet")
				return nil
			}

			if allCompetitions {
				fmt.Fprintln(out, "All Submissions (All Competitions):")
				printGroupedByCompetition(cmd, subs)
			} else {
				fmt.Fprintln(out, "Submissions (Current Competition):")
				printGroupedByUser(cmd, subs)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allCompetitions, "all", false, "show submissions across every competition")
	cmd.Flags().StringVar(&username, "user", "", "show only this user's submissions")

	return cmd
}

// printGroupedByCompetition relies on the (competition, user, recency)
// ordering of the all-competitions listing to emit section headers.
func printGroupedByCompetition(cmd *cobra.Command, subs []repository.SubmissionDetail) {
	out := cmd.OutOrStdout()
	var currentComp uint
	currentUser := ""
	for _, sub := range subs {
		if sub.CompetitionID != currentComp {
			currentComp = sub.CompetitionID
			currentUser = ""
			fmt.Fprintf(out, "\nCompetition: %s\n", sub.CompetitionName)
		}
		if sub.Username != currentUser {
			currentUser = sub.Username
			fmt.Fprintf(out, "  %s:\n", currentUser)
		}
		fmt.Fprintf(out, "    %s %s (%d points)\n", solvedMark(sub.Solved), sub.ProblemTitle, sub.Points)
	}
	fmt.Fprintln(out)
}

func printGroupedByUser(cmd *cobra.Command, subs []repository.SubmissionDetail) {
	out := cmd.OutOrStdout()
	currentUser := ""
	for _, sub := range subs {
		if sub.Username != currentUser {
			currentUser = sub.Username
			fmt.Fprintf(out, "\n  %s:\n", currentUser)
		}
		fmt.Fprintf(out, "    %s %s (%d points)\n", solvedMark(sub.Solved), sub.ProblemTitle, sub.Points)
	}
	fmt.Fprintln(out)
}

func solvedMark(solved bool) string {
	if solved {
		return "✓"
	}
	return "✗"
}
