package service

import (
	"context"

	"github.com/hpitta26/Leetcode-Bot/internal/config"
	"github.com/hpitta26/Leetcode-Bot/internal/models"
	"github.com/hpitta26/Leetcode-Bot/internal/repository"
	"github.com/hpitta26/Leetcode-Bot/pkg/errors"

	"github.com/sirupsen/logrus"
)

// AdminService backs the administrative commands: competition lifecycle,
// status and statistics, leaderboard and submission views, and the
// destructive reset/revert flows.
type AdminService struct {
	competitionRepo *repository.CompetitionRepository
	problemRepo     *repository.ProblemRepository
	userRepo        *repository.UserRepository
	submissionRepo  *repository.SubmissionRepository
	log             *logrus.Logger
}

func NewAdminService(
	competitionRepo *repository.CompetitionRepository,
	problemRepo *repository.ProblemRepository,
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
	log *logrus.Logger,
) *AdminService {
	return &AdminService{
		competitionRepo: competitionRepo,
		problemRepo:     problemRepo,
		userRepo:        userRepo,
		submissionRepo:  submissionRepo,
		log:             log,
	}
}

// DatabaseStats aggregates the counts shown by the status and info
// commands. The submission counts are scoped to the current competition
// and stay zero when none exists.
type DatabaseStats struct {
	Current      *models.Competition
	Competitions int64
	Problems     int64
	Users        int64
	Submissions  int64
	Solved       int64
}

func (s *AdminService) CurrentCompetition(ctx context.Context) (*models.Competition, error) {
	return s.competitionRepo.GetCurrent(ctx)
}

func (s *AdminService) Stats(ctx context.Context) (*DatabaseStats, error) {
	stats := &DatabaseStats{}

	var err error
	if stats.Current, err = s.competitionRepo.GetCurrent(ctx); err != nil {
		return nil, err
	}
	if stats.Competitions, err = s.competitionRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Problems, err = s.problemRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}

	if stats.Current != nil {
		if stats.Submissions, err = s.submissionRepo.CountByCompetition(ctx, stats.Current.ID); err != nil {
			return nil, err
		}
		if stats.Solved, err = s.submissionRepo.CountSolvedByCompetition(ctx, stats.Current.ID); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// CreateCompetition creates a new competition from config and loads its
// problem set. It never checks for an existing competition; the CLI asks
// the operator for confirmation before calling this.
func (s *AdminService) CreateCompetition(ctx context.Context, cfg *config.Config) (uint, error) {
	id, err := s.competitionRepo.Create(ctx,
		cfg.Competition.Name,
		cfg.Competition.StartDate,
		cfg.Competition.EndDate,
	)
	if err != nil {
		return 0, errors.New(errors.ErrCompetition, "failed to create competition", err)
	}

	problems := make([]models.Problem, len(cfg.Problems))
	for i, p := range cfg.Problems {
		problems[i] = models.Problem{
			Slug:       p.Slug,
			Title:      p.Title,
			Difficulty: p.Difficulty,
			Points:     p.Points,
		}
	}
	if err := s.problemRepo.UpsertAll(ctx, problems); err != nil {
		return 0, errors.New(errors.ErrCompetition, "failed to initialize problems", err)
	}

	s.log.WithFields(logrus.Fields{
		"competition_id": id,
		"name":           cfg.Competition.Name,
		"problems":       len(problems),
	}).Info("Competition created")

	return id, nil
}

func (s *AdminService) MarkRun(ctx context.Context, competitionID uint) error {
	return s.competitionRepo.MarkRun(ctx, competitionID)
}

// RevertRun clears one competition's submissions, zeroes every user's
// cached stats, and marks the competition as not run. Other
// competitions' submissions are untouched; cached stats come back on the
// next run's recalculation.
func (s *AdminService) RevertRun(ctx context.Context, competitionID uint) (int64, error) {
	cleared, err := s.submissionRepo.DeleteByCompetition(ctx, competitionID)
	if err != nil {
		return 0, err
	}
	if err := s.userRepo.ResetStats(ctx); err != nil {
		return cleared, err
	}
	if err := s.competitionRepo.RevertRun(ctx, competitionID); err != nil {
		return cleared, err
	}

	s.log.WithFields(logrus.Fields{
		"competition_id": competitionID,
		"cleared":        cleared,
	}).Info("Competition run reverted")

	return cleared, nil
}

// Reset clears every submission across all competitions and zeroes all
// cached user stats. Problems and competitions are kept.
func (s *AdminService) Reset(ctx context.Context) (int64, error) {
	cleared, err := s.submissionRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.userRepo.ResetStats(ctx); err != nil {
		return cleared, err
	}

	s.log.WithFields(logrus.Fields{
		"cleared": cleared,
	}).Info("Database reset")

	return cleared, nil
}

// Leaderboard returns the current competition's live standings, or an
// empty list when no competition exists.
func (s *AdminService) Leaderboard(ctx context.Context) ([]repository.LeaderboardEntry, error) {
	comp, err := s.competitionRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return []repository.LeaderboardEntry{}, nil
	}
	return s.submissionRepo.Leaderboard(ctx, comp.ID)
}

// UserSubmissions returns one user's submissions in the current
// competition; empty when no competition exists.
func (s *AdminService) UserSubmissions(ctx context.Context, username string) ([]repository.SubmissionDetail, error) {
	comp, err := s.competitionRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return []repository.SubmissionDetail{}, nil
	}
	return s.submissionRepo.ListByUser(ctx, username, comp.ID)
}

// Submissions returns submissions for display. With allCompetitions the
// listing spans every competition and carries competition names;
// otherwise it is scoped to the current competition and empty when none
// exists.
func (s *AdminService) Submissions(ctx context.Context, allCompetitions bool) ([]repository.SubmissionDetail, error) {
	if allCompetitions {
		return s.submissionRepo.ListAllCompetitions(ctx)
	}

	comp, err := s.competitionRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return []repository.SubmissionDetail{}, nil
	}
	return s.submissionRepo.ListByCompetition(ctx, comp.ID)
}
