package wellness

import (
	"context"

	"nutriscan-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WellnessRepository interface {
		CreateMoodEntry(ctx context.Context, entry *entities.MoodEntry) error
		ListMoodEntries(ctx context.Context, userID uuid.UUID) ([]entities.MoodEntry, error)
	}

	wellnessRepository struct {
		db *gorm.DB
	}
)

func NewWellnessRepository(db *gorm.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) CreateMoodEntry(ctx context.Context, entry *entities.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wellnessRepository) ListMoodEntries(ctx context.Context, userID uuid.UUID) ([]entities.MoodEntry, error) {
	var entries []entities.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
