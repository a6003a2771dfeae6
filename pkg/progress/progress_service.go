package progress

import (
	"context"
	"math"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"

	"github.com/google/uuid"
)

type (
	ProgressService interface {
		GetProgress(ctx context.Context, userID string) (domain.DailyProgressResponse, error)
		AdjustWater(ctx context.Context, userID string, deltaMl int) (domain.DailyProgressResponse, error)
		SyncWaterGoal(ctx context.Context, userID string, weightKg float64) error
	}

	progressService struct {
		progressRepository ProgressRepository
	}
)

func NewProgressService(progressRepository ProgressRepository) ProgressService {
	return &progressService{progressRepository: progressRepository}
}

// WaterGoalFor derives the daily water goal in ml from body weight. Pure and
// idempotent; recomputed whenever the profile weight changes.
func WaterGoalFor(weightKg float64) int {
	return int(math.Round(weightKg * 35))
}

// Merge folds one scan's nutrition values into the running totals. The fold
// is purely additive, so the final totals do not depend on scan order.
func Merge(progress *entities.DailyProgress, delta domain.NutritionValues) {
	progress.Calories += delta.Calories
	progress.Protein += delta.Protein
	progress.Carbs += delta.Carbs
	progress.Fats += delta.Fats
}

// AdjustWater applies a water delta in ml, flooring the result at zero.
func AdjustWater(progress *entities.DailyProgress, deltaMl int) {
	progress.WaterMl += deltaMl
	if progress.WaterMl < 0 {
		progress.WaterMl = 0
	}
}

func (s *progressService) GetProgress(ctx context.Context, userID string) (domain.DailyProgressResponse, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	progress, err := s.progressRepository.GetOrCreate(ctx, uid)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}
	return toResponse(progress), nil
}

func (s *progressService) AdjustWater(ctx context.Context, userID string, deltaMl int) (domain.DailyProgressResponse, error) {
	if deltaMl != domain.WaterStepMl && deltaMl != -domain.WaterStepMl {
		return domain.DailyProgressResponse{}, domain.ErrInvalidWaterStep
	}

	uid, err := parseUserID(userID)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	progress, err := s.progressRepository.GetOrCreate(ctx, uid)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	AdjustWater(progress, deltaMl)

	if err := s.progressRepository.Update(ctx, progress); err != nil {
		return domain.DailyProgressResponse{}, err
	}
	return toResponse(progress), nil
}

func (s *progressService) SyncWaterGoal(ctx context.Context, userID string, weightKg float64) error {
	uid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	progress, err := s.progressRepository.GetOrCreate(ctx, uid)
	if err != nil {
		return err
	}

	goal := WaterGoalFor(weightKg)
	if progress.WaterGoalMl == goal {
		return nil
	}
	progress.WaterGoalMl = goal
	return s.progressRepository.Update(ctx, progress)
}

func parseUserID(userID string) (uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return uid, nil
}

func toResponse(progress *entities.DailyProgress) domain.DailyProgressResponse {
	return domain.DailyProgressResponse{
		Calories:    progress.Calories,
		Protein:     progress.Protein,
		Carbs:       progress.Carbs,
		Fats:        progress.Fats,
		WaterMl:     progress.WaterMl,
		WaterGoalMl: progress.WaterGoalMl,
	}
}
