package repository

import (
	"context"
	"time"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// LeaderboardEntry is one ranked row of a competition leaderboard,
// recomputed live from submissions rather than read from the cached user
// totals.
type LeaderboardEntry struct {
	Username       string    `json:"username"`
	TotalScore     int       `json:"total_score"`
	ProblemsSolved int       `json:"problems_solved"`
	LastUpdated    time.Time `json:"last_updated"`
}

// SubmissionDetail joins problem metadata onto a raw submission row.
// CompetitionName is populated only by the all-competitions listing.
type SubmissionDetail struct {
	Username        string     `json:"username"`
	ProblemSlug     string     `json:"problem_slug"`
	ProblemTitle    string     `json:"problem_title"`
	Difficulty      string     `json:"difficulty"`
	Points          int        `json:"points"`
	Solved          bool       `json:"solved"`
	SolvedAt        *time.Time `json:"solved_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompetitionID   uint       `json:"competition_id"`
	CompetitionName string     `json:"competition_name,omitempty"`
}

// Save upserts the submission identified by (username, problem_slug,
// competition_id), overwriting solved/solved_at on repeat runs. The user
// row is created first inside the same transaction, so a crash can never
// leave a submission for a nonexistent user. Unknown problem slugs or
// competition ids fail with a foreign key error.
func (r *SubmissionRepository) Save(ctx context.Context, username, problemSlug string, solved bool, competitionID uint, solvedAt *time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := &models.User{Username: username}
		if err := tx.Where("username = ?", username).FirstOrCreate(user).Error; err != nil {
			return err
		}

		sub := &models.Submission{
			Username:      username,
			ProblemSlug:   problemSlug,
			CompetitionID: competitionID,
			Solved:        solved,
			SolvedAt:      solvedAt,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "username"},
				{Name: "problem_slug"},
				{Name: "competition_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"solved", "solved_at", "updated_at"}),
		}).Create(sub).Error
	})
}

// Leaderboard ranks every known user by points earned from solved
// submissions within the given competition. Users with no submissions in
// that competition still appear with a zero score. Ordering is score
// desc, then solved count desc, then username asc, so equal inputs
// always produce the same standings.
func (r *SubmissionRepository) Leaderboard(ctx context.Context, competitionID uint) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT u.username,
			       COALESCE(SUM(CASE WHEN s.solved THEN p.points ELSE 0 END), 0) AS total_score,
			       COUNT(CASE WHEN s.solved THEN 1 END) AS problems_solved,
			       u.last_updated
			FROM users u
			LEFT JOIN submissions s ON s.username = u.username AND s.competition_id = ?
			LEFT JOIN problems p ON p.slug = s.problem_slug
			GROUP BY u.username, u.last_updated
			ORDER BY total_score DESC, problems_solved DESC, u.username ASC
		`, competitionID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	return entries, nil
}

// ListByUser returns one user's submissions in the given competition,
// most recently updated first, with problem details joined on.
func (r *SubmissionRepository) ListByUser(ctx context.Context, username string, competitionID uint) ([]SubmissionDetail, error) {
	var details []SubmissionDetail
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT s.username, s.problem_slug, p.title AS problem_title,
			       p.difficulty, p.points, s.solved, s.solved_at,
			       s.updated_at, s.competition_id
			FROM submissions s
			INNER JOIN problems p ON p.slug = s.problem_slug
			WHERE s.username = ? AND s.competition_id = ?
			ORDER BY s.updated_at DESC
		`, username, competitionID).
		Scan(&details).Error
	return details, err
}

// ListByCompetition returns every submission in one competition, grouped
// by user, most recently updated first within each user.
func (r *SubmissionRepository) ListByCompetition(ctx context.Context, competitionID uint) ([]SubmissionDetail, error) {
	var details []SubmissionDetail
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT s.username, s.problem_slug, p.title AS problem_title,
			       p.difficulty, p.points, s.solved, s.solved_at,
			       s.updated_at, s.competition_id
			FROM submissions s
			INNER JOIN problems p ON p.slug = s.problem_slug
			WHERE s.competition_id = ?
			ORDER BY s.username ASC, s.updated_at DESC
		`, competitionID).
		Scan(&details).Error
	return details, err
}

// ListAllCompetitions returns every submission across every competition,
// annotated with the competition name and ordered for sectioned display:
// competition, then user, then most recent first.
func (r *SubmissionRepository) ListAllCompetitions(ctx context.Context) ([]SubmissionDetail, error) {
	var details []SubmissionDetail
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT s.username, s.problem_slug, p.title AS problem_title,
			       p.difficulty, p.points, s.solved, s.solved_at,
			       s.updated_at, s.competition_id, c.name AS competition_name
			FROM submissions s
			INNER JOIN problems p ON p.slug = s.problem_slug
			INNER JOIN competitions c ON c.id = s.competition_id
			ORDER BY s.competition_id ASC, s.username ASC, s.updated_at DESC
		`).
		Scan(&details).Error
	return details, err
}

// DeleteByCompetition removes all submissions scoped to one competition,
// leaving other competitions untouched. Returns the number of rows
// cleared.
func (r *SubmissionRepository) DeleteByCompetition(ctx context.Context, competitionID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Delete(&models.Submission{})
	return result.RowsAffected, result.Error
}

// DeleteAll removes every submission across every competition.
func (r *SubmissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.Submission{})
	return result.RowsAffected, result.Error
}

func (r *SubmissionRepository) CountByCompetition(ctx context.Context, competitionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("competition_id = ?", competitionID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) CountSolvedByCompetition(ctx context.Context, competitionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("competition_id = ? AND solved = ?", competitionID, true).
		Count(&count).Error
	return count, err
}
