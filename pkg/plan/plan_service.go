package plan

import (
	"context"
	"errors"
	"sync"

	"nutriscan-backend/domain"
	"nutriscan-backend/pkg/gemini"
	"nutriscan-backend/pkg/translate"
	"nutriscan-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	PlanService interface {
		GenerateMealPlan(ctx context.Context, userID string) (domain.MealPlan, error)
		// GenerateShoppingList derives a list from the user's most recent meal
		// plan of this session. Without one it returns an empty list and never
		// reaches the AI gateway.
		GenerateShoppingList(ctx context.Context, userID string) (domain.ShoppingList, error)
		GenerateWorkoutPlan(ctx context.Context, userID string) (domain.WorkoutPlan, error)
	}

	planService struct {
		userRepository user.UserRepository
		gateway        gemini.Gateway

		// lastMealPlans keeps the source-language meal plan per user so the
		// shopping list is always derived from what the user last saw.
		mu            sync.Mutex
		lastMealPlans map[string]domain.MealPlan
	}
)

func NewPlanService(userRepository user.UserRepository, gateway gemini.Gateway) PlanService {
	return &planService{
		userRepository: userRepository,
		gateway:        gateway,
		lastMealPlans:  make(map[string]domain.MealPlan),
	}
}

func (s *planService) GenerateMealPlan(ctx context.Context, userID string) (domain.MealPlan, error) {
	profile, lang, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.MealPlan{}, err
	}

	plan, err := s.gateway.GenerateMealPlan(ctx, profile)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPlan) {
			return domain.MealPlan{}, err
		}
		return domain.MealPlan{}, domain.ErrPlanGenerationFailed
	}

	s.mu.Lock()
	s.lastMealPlans[userID] = plan
	s.mu.Unlock()

	return translate.MealPlan(ctx, s.gateway, lang, plan), nil
}

func (s *planService) GenerateShoppingList(ctx context.Context, userID string) (domain.ShoppingList, error) {
	s.mu.Lock()
	plan, ok := s.lastMealPlans[userID]
	s.mu.Unlock()
	if !ok {
		return domain.ShoppingList{}, nil
	}

	_, lang, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.ShoppingList{}, err
	}

	list, err := s.gateway.GenerateShoppingList(ctx, plan)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPlan) {
			return domain.ShoppingList{}, err
		}
		return domain.ShoppingList{}, domain.ErrPlanGenerationFailed
	}

	return translate.ShoppingList(ctx, s.gateway, lang, list), nil
}

func (s *planService) GenerateWorkoutPlan(ctx context.Context, userID string) (domain.WorkoutPlan, error) {
	profile, lang, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.WorkoutPlan{}, err
	}

	plan, err := s.gateway.GenerateWorkoutPlan(ctx, profile)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPlan) {
			return domain.WorkoutPlan{}, err
		}
		return domain.WorkoutPlan{}, domain.ErrPlanGenerationFailed
	}

	return translate.WorkoutPlan(ctx, s.gateway, lang, plan), nil
}

func (s *planService) loadProfile(ctx context.Context, userID string) (gemini.ProfileSummary, string, error) {
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gemini.ProfileSummary{}, "", domain.ErrUserNotFound
		}
		return gemini.ProfileSummary{}, "", err
	}
	if !u.Onboarded {
		return gemini.ProfileSummary{}, "", domain.ErrNotOnboarded
	}

	return gemini.ProfileSummary{
		Age:               u.Age,
		Gender:            u.Gender,
		HeightCm:          u.HeightCm,
		WeightKg:          u.WeightKg,
		DietaryPreference: u.DietaryPreference,
		GoalType:          u.GoalType,
		GoalDetail:        u.GoalDetail,
		GoalCustomDetail:  u.GoalCustomDetail,
		Profession:        u.Profession,
		CustomProfession:  u.CustomProfession,
	}, u.Language, nil
}
