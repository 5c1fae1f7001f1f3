package repository

import (
	"context"
	"errors"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"gorm.io/gorm"
)

type CompetitionRepository struct {
	db *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

// Create inserts a new competition with has_run = false and returns the
// generated id. It does not check for an existing competition; that
// confirmation is the caller's concern.
func (r *CompetitionRepository) Create(ctx context.Context, name, startDate, endDate string) (uint, error) {
	comp := &models.Competition{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		HasRun:    false,
	}
	if err := r.db.WithContext(ctx).Create(comp).Error; err != nil {
		return 0, err
	}
	return comp.ID, nil
}

// GetCurrent returns the most recently created competition, or nil when
// none exist. Creation-time ties are broken by the higher id.
func (r *CompetitionRepository) GetCurrent(ctx context.Context) (*models.Competition, error) {
	var comp models.Competition
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&comp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id uint) (*models.Competition, error) {
	var comp models.Competition
	err := r.db.WithContext(ctx).First(&comp, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

// MarkRun flags a competition as run. Idempotent; no cascading effect on
// submissions or user stats.
func (r *CompetitionRepository) MarkRun(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Competition{}).
		Where("id = ?", id).
		Update("has_run", true).Error
}

// RevertRun clears the run flag. Callers wanting a full reset must clear
// that competition's submissions separately.
func (r *CompetitionRepository) RevertRun(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Competition{}).
		Where("id = ?", id).
		Update("has_run", false).Error
}

func (r *CompetitionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Competition{}).
		Count(&count).Error
	return count, err
}
