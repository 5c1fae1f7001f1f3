package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProblemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// UpsertAll inserts or replaces the problem set, keyed by slug.
// Re-running with the same slug overwrites title/difficulty/points and
// never creates duplicates. Malformed descriptors fail the whole batch
// before anything is written.
func (r *ProblemRepository) UpsertAll(ctx context.Context, problems []models.Problem) error {
	for i, p := range problems {
		if p.Slug == "" {
			return fmt.Errorf("problem %d: missing slug", i)
		}
		if p.Title == "" {
			return fmt.Errorf("problem %q: missing title", p.Slug)
		}
		if p.Points < 0 {
			return fmt.Errorf("problem %q: negative points", p.Slug)
		}
	}
	if len(problems) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "difficulty", "points"}),
		}).
		Create(&problems).Error
}

func (r *ProblemRepository) GetBySlug(ctx context.Context, slug string) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&problem).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *ProblemRepository) GetAll(ctx context.Context) ([]models.Problem, error) {
	var problems []models.Problem
	err := r.db.WithContext(ctx).
		Order("slug ASC").
		Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Problem{}).
		Count(&count).Error
	return count, err
}
