package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hpitta26/Leetcode-Bot/internal/scheduler"

	"github.com/spf13/cobra"
)

// newDaemonCommand runs the scoring pass on the configured cron
// expression in-process, as an alternative to a crontab entry.
func newDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the scoring pass on a schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			sched := scheduler.NewSyncScheduler(a.syncSvc, a.cfg.Scheduler.Cron, a.log)
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			a.log.Info("Shutting down")
			return nil
		},
	}
}
