package scheduler

import (
	"context"

	"github.com/hpitta26/Leetcode-Bot/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SyncScheduler runs the scoring pass on a cron expression for
// operators who prefer a long-running process over a system crontab
// entry. Standard 5-field expressions.
type SyncScheduler struct {
	cron     *cron.Cron
	syncSvc  *service.SyncService
	cronExpr string
	log      *logrus.Logger
}

func NewSyncScheduler(syncSvc *service.SyncService, cronExpr string, log *logrus.Logger) *SyncScheduler {
	return &SyncScheduler{
		cron:     cron.New(),
		syncSvc:  syncSvc,
		cronExpr: cronExpr,
		log:      log,
	}
}

func (s *SyncScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronExpr, s.runSync)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithFields(logrus.Fields{
		"cron": s.cronExpr,
	}).Info("Sync scheduler started")
	return nil
}

func (s *SyncScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Sync scheduler stopped")
}

// runSync keeps a failed pass from killing the scheduler; the error is
// logged and the next tick retries from scratch.
func (s *SyncScheduler) runSync() {
	ctx := context.Background()

	if err := s.syncSvc.Run(ctx); err != nil {
		s.log.Errorf("Scheduled sync failed: %v", err)
	}
}
