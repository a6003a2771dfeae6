package translate

import (
	"context"
	"errors"
	"testing"

	"nutriscan-backend/domain"
	"nutriscan-backend/pkg/gemini"

	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	translations []string
	err          error
	calls        int
}

func (s *stubGateway) AnalyzeFoodImage(ctx context.Context, base64Data, mimeType string, profile gemini.ProfileSummary) (domain.NutritionInfo, error) {
	return domain.NutritionInfo{}, nil
}
func (s *stubGateway) AnalyzeScannedText(ctx context.Context, payload string, profile gemini.ProfileSummary) (domain.NutritionInfo, error) {
	return domain.NutritionInfo{}, nil
}
func (s *stubGateway) GenerateMealPlan(ctx context.Context, profile gemini.ProfileSummary) (domain.MealPlan, error) {
	return domain.MealPlan{}, nil
}
func (s *stubGateway) GenerateShoppingList(ctx context.Context, plan domain.MealPlan) (domain.ShoppingList, error) {
	return domain.ShoppingList{}, nil
}
func (s *stubGateway) GenerateWorkoutPlan(ctx context.Context, profile gemini.ProfileSummary) (domain.WorkoutPlan, error) {
	return domain.WorkoutPlan{}, nil
}
func (s *stubGateway) TranslateTexts(ctx context.Context, texts []string, targetLanguage string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.translations != nil {
		return s.translations, nil
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = "hi:" + text
	}
	return out, nil
}
func (s *stubGateway) StreamChat(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string, onChunk func(text string) error) error {
	return nil
}

func sampleInfo() domain.NutritionInfo {
	return domain.NutritionInfo{
		FoodName:       "Banana",
		Nutrition:      domain.NutritionValues{Calories: 105},
		Recommendation: domain.RecommendationShouldEat,
		ServingSize:    "1 medium banana",
		Reason:         "Good source of energy.",
	}
}

func TestNutritionInfoDefaultLanguageSkipsGateway(t *testing.T) {
	gw := &stubGateway{}
	got := NutritionInfo(context.Background(), gw, "en", sampleInfo())
	assert.Equal(t, sampleInfo(), got)
	assert.Zero(t, gw.calls)
}

func TestNutritionInfoTranslatesDisplayText(t *testing.T) {
	gw := &stubGateway{}
	got := NutritionInfo(context.Background(), gw, "hi", sampleInfo())
	assert.Equal(t, "hi:Banana", got.FoodName)
	assert.Equal(t, "hi:1 medium banana", got.ServingSize)
	assert.Equal(t, "hi:Good source of energy.", got.Reason)
	// Numbers and the recommendation enum are never translated.
	assert.Equal(t, 105.0, got.Nutrition.Calories)
	assert.Equal(t, domain.RecommendationShouldEat, got.Recommendation)
}

func TestNutritionInfoFallsBackOnGatewayError(t *testing.T) {
	gw := &stubGateway{err: errors.New("quota exceeded")}
	got := NutritionInfo(context.Background(), gw, "hi", sampleInfo())
	assert.Equal(t, sampleInfo(), got)
}

func TestNutritionInfoFallsBackPerItem(t *testing.T) {
	gw := &stubGateway{translations: []string{"केला", "", ""}}
	got := NutritionInfo(context.Background(), gw, "hi", sampleInfo())
	assert.Equal(t, "केला", got.FoodName)
	assert.Equal(t, "1 medium banana", got.ServingSize)
	assert.Equal(t, "Good source of energy.", got.Reason)
}

func TestNutritionInfoUnknownLanguageSkipsGateway(t *testing.T) {
	gw := &stubGateway{}
	got := NutritionInfo(context.Background(), gw, "fr", sampleInfo())
	assert.Equal(t, sampleInfo(), got)
	assert.Zero(t, gw.calls)
}

func TestMealPlanRoundTripsEveryField(t *testing.T) {
	gw := &stubGateway{}
	plan := domain.MealPlan{
		WeeklyPlan: []domain.DayPlan{
			{
				Day:       "Monday",
				Breakfast: domain.Meal{Name: "Oats", Description: "With fruit."},
				Lunch:     domain.Meal{Name: "Dal", Description: "With rice."},
				Dinner:    domain.Meal{Name: "Curry", Description: "With roti."},
			},
		},
	}

	got := MealPlan(context.Background(), gw, "hi", plan)
	assert.Equal(t, "hi:Monday", got.WeeklyPlan[0].Day)
	assert.Equal(t, "hi:Oats", got.WeeklyPlan[0].Breakfast.Name)
	assert.Equal(t, "hi:With roti.", got.WeeklyPlan[0].Dinner.Description)
}

func TestShoppingListTranslation(t *testing.T) {
	gw := &stubGateway{}
	list := domain.ShoppingList{
		Categories: []domain.ShoppingCategory{
			{Category: "Vegetables", Items: []string{"Spinach", "Tomatoes"}},
		},
	}

	got := ShoppingList(context.Background(), gw, "hi", list)
	assert.Equal(t, "hi:Vegetables", got.Categories[0].Category)
	assert.Equal(t, []string{"hi:Spinach", "hi:Tomatoes"}, got.Categories[0].Items)
}

func TestWorkoutPlanTranslationSkipsRestDayExercises(t *testing.T) {
	gw := &stubGateway{}
	plan := domain.WorkoutPlan{
		WeeklyWorkoutPlan: []domain.DailyWorkout{
			{Day: "Sunday", Focus: "Rest Day", Exercises: nil},
		},
	}

	got := WorkoutPlan(context.Background(), gw, "hi", plan)
	assert.Equal(t, "hi:Rest Day", got.WeeklyWorkoutPlan[0].Focus)
	assert.Empty(t, got.WeeklyWorkoutPlan[0].Exercises)
}
