package progress

import (
	"context"
	"errors"

	"nutriscan-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProgressRepository interface {
		GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.DailyProgress, error)
		Update(ctx context.Context, progress *entities.DailyProgress) error
	}

	progressRepository struct {
		db *gorm.DB
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.DailyProgress, error) {
	var progress entities.DailyProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = entities.DailyProgress{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Update(ctx context.Context, progress *entities.DailyProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}
