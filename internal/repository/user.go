package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure creates the user row with zero totals if it doesn't exist yet.
// Users are never created any other way, and never deleted.
func (r *UserRepository) Ensure(ctx context.Context, username string) error {
	user := &models.User{Username: username}
	return r.db.WithContext(ctx).
		Where("username = ?", username).
		FirstOrCreate(user).Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RecalculateStats overwrites the user's cached totals from their solved
// submissions across ALL competitions. The sync path calls this once per
// user after the full batch of saves, not per submission. Idempotent.
func (r *UserRepository) RecalculateStats(ctx context.Context, username string) error {
	type aggregate struct {
		TotalScore     int
		ProblemsSolved int
	}

	var agg aggregate
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(p.points), 0) AS total_score,
			       COUNT(s.id) AS problems_solved
			FROM submissions s
			INNER JOIN problems p ON p.slug = s.problem_slug
			WHERE s.username = ? AND s.solved = ?
		`, username, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"total_score":     agg.TotalScore,
			"problems_solved": agg.ProblemsSolved,
			"last_updated":    time.Now(),
		}).Error
}

// ResetStats zeroes the cached totals for every user. Used by the
// administrative reset and revert flows; stats are recalculated on the
// next run.
func (r *UserRepository) ResetStats(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"total_score":     0,
			"problems_solved": 0,
		}).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&count).Error
	return count, err
}
