package scan

import (
	"context"
	"errors"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"
	"nutriscan-backend/pkg/progress"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		// SaveAnalysis appends the record, evicts history beyond the cap and
		// folds the nutrition delta into the daily totals in one transaction.
		// Either all three land or none do. Evicted records are returned so
		// the caller can release their stored images.
		SaveAnalysis(ctx context.Context, record *entities.ScanRecord, limit int) ([]entities.ScanRecord, error)
		ListHistory(ctx context.Context, userID uuid.UUID, search string) ([]entities.ScanRecord, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) SaveAnalysis(ctx context.Context, record *entities.ScanRecord, limit int) ([]entities.ScanRecord, error) {
	var evicted []entities.ScanRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		err := tx.Where("user_id = ?", record.UserID).
			Order("created_at DESC, id DESC").
			Offset(limit).
			Find(&evicted).Error
		if err != nil {
			return err
		}
		for _, old := range evicted {
			if err := tx.Delete(&entities.ScanRecord{}, "id = ?", old.ID).Error; err != nil {
				return err
			}
		}

		var daily entities.DailyProgress
		err = tx.Where("user_id = ?", record.UserID).First(&daily).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			daily = entities.DailyProgress{
				ID:     uuid.New(),
				UserID: record.UserID,
			}
			if err := tx.Create(&daily).Error; err != nil {
				return err
			}
		}

		progress.Merge(&daily, recordValues(record))
		return tx.Save(&daily).Error
	})
	if err != nil {
		return nil, err
	}
	return evicted, nil
}

func (r *scanRepository) ListHistory(ctx context.Context, userID uuid.UUID, search string) ([]entities.ScanRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if search != "" {
		query = query.Where("food_name ILIKE ?", "%"+search+"%")
	}

	var records []entities.ScanRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func recordValues(record *entities.ScanRecord) domain.NutritionValues {
	return domain.NutritionValues{
		Calories: record.Calories,
		Protein:  record.Protein,
		Carbs:    record.Carbs,
		Fats:     record.Fats,
	}
}
