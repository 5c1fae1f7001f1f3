package service

import (
	"context"

	"github.com/hpitta26/Leetcode-Bot/internal/config"
	"github.com/hpitta26/Leetcode-Bot/internal/models"
	"github.com/hpitta26/Leetcode-Bot/internal/repository"
	"github.com/hpitta26/Leetcode-Bot/pkg/errors"

	"github.com/sirupsen/logrus"
)

// Scraper supplies the recently solved problem slugs for a user handle,
// most recent first. A per-user failure carries a descriptive error and
// must not abort the rest of the batch.
type Scraper interface {
	RecentlySolved(ctx context.Context, username string) ([]string, error)
}

// SyncService runs one full scoring pass: scrape every configured user,
// record an outcome per competition problem, and recompute cached user
// totals.
type SyncService struct {
	competitionRepo *repository.CompetitionRepository
	problemRepo     *repository.ProblemRepository
	userRepo        *repository.UserRepository
	submissionRepo  *repository.SubmissionRepository
	scraper         Scraper
	cfg             *config.Config
	log             *logrus.Logger
}

func NewSyncService(
	competitionRepo *repository.CompetitionRepository,
	problemRepo *repository.ProblemRepository,
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
	scraper Scraper,
	cfg *config.Config,
	log *logrus.Logger,
) *SyncService {
	return &SyncService{
		competitionRepo: competitionRepo,
		problemRepo:     problemRepo,
		userRepo:        userRepo,
		submissionRepo:  submissionRepo,
		scraper:         scraper,
		cfg:             cfg,
		log:             log,
	}
}

// Run executes the scoring pass against the current competition.
//
// Per-user scrape errors are logged and skipped: that user simply gets
// nothing recorded this run. Store errors (foreign keys, write failures)
// are fatal and propagate. Run never touches the competition's has_run
// flag; that is an administrative action.
func (s *SyncService) Run(ctx context.Context) error {
	comp, err := s.competitionRepo.GetCurrent(ctx)
	if err != nil {
		return errors.New(errors.ErrCompetition, "failed to resolve current competition", err)
	}
	if comp == nil {
		return errors.New(errors.ErrNoCompetition, "no competition found, run set-comp first", nil)
	}

	problems := make([]models.Problem, len(s.cfg.Problems))
	for i, p := range s.cfg.Problems {
		problems[i] = models.Problem{
			Slug:       p.Slug,
			Title:      p.Title,
			Difficulty: p.Difficulty,
			Points:     p.Points,
		}
	}
	if err := s.problemRepo.UpsertAll(ctx, problems); err != nil {
		return errors.New(errors.ErrCompetition, "failed to initialize problems", err)
	}

	s.log.WithFields(logrus.Fields{
		"competition": comp.Name,
		"users":       len(s.cfg.Usernames),
		"problems":    len(problems),
	}).Info("Starting scoring run")

	slugs := s.cfg.ProblemSlugs()
	for _, username := range s.cfg.Usernames {
		if err := s.syncUser(ctx, username, slugs, comp.ID); err != nil {
			return err
		}
	}

	entries, err := s.submissionRepo.Leaderboard(ctx, comp.ID)
	if err != nil {
		return errors.New(errors.ErrLeaderboard, "failed to compute leaderboard", err)
	}

	s.log.WithFields(logrus.Fields{
		"competition": comp.Name,
		"users":       len(entries),
	}).Info("Scoring run completed")

	return nil
}

// syncUser records one user's outcome for every competition problem,
// then recomputes that user's cached totals once.
func (s *SyncService) syncUser(ctx context.Context, username string, slugs []string, competitionID uint) error {
	recent, err := s.scraper.RecentlySolved(ctx, username)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"username": username,
		}).Warnf("Scrape failed, no submissions recorded this run: %v", err)
		return nil
	}

	solvedSet := make(map[string]bool, len(recent))
	for _, slug := range recent {
		solvedSet[slug] = true
	}

	solvedCount := 0
	for _, slug := range slugs {
		solved := solvedSet[slug]
		if solved {
			solvedCount++
		}
		if err := s.submissionRepo.Save(ctx, username, slug, solved, competitionID, nil); err != nil {
			return errors.New(errors.ErrSubmissionSave, "failed to save submission for "+username, err)
		}
	}

	if err := s.userRepo.RecalculateStats(ctx, username); err != nil {
		return errors.New(errors.ErrStatsUpdate, "failed to update stats for "+username, err)
	}

	s.log.WithFields(logrus.Fields{
		"username": username,
		"solved":   solvedCount,
		"problems": len(slugs),
	}).Info("User synced")

	return nil
}
