package plan

import (
	"context"
	"testing"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"
	"nutriscan-backend/pkg/gemini"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	user *entities.User
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entities.User) error { return nil }
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return f.user, nil
}
func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return f.user, nil
}
func (f *fakeUserRepository) Update(ctx context.Context, user *entities.User) error { return nil }

type fakeGateway struct {
	mealPlan          domain.MealPlan
	shoppingList      domain.ShoppingList
	workoutPlan       domain.WorkoutPlan
	mealPlanCalls     int
	shoppingListCalls int
}

func (f *fakeGateway) AnalyzeFoodImage(ctx context.Context, base64Data, mimeType string, profile gemini.ProfileSummary) (domain.NutritionInfo, error) {
	return domain.NutritionInfo{}, nil
}
func (f *fakeGateway) AnalyzeScannedText(ctx context.Context, payload string, profile gemini.ProfileSummary) (domain.NutritionInfo, error) {
	return domain.NutritionInfo{}, nil
}
func (f *fakeGateway) GenerateMealPlan(ctx context.Context, profile gemini.ProfileSummary) (domain.MealPlan, error) {
	f.mealPlanCalls++
	return f.mealPlan, nil
}
func (f *fakeGateway) GenerateShoppingList(ctx context.Context, plan domain.MealPlan) (domain.ShoppingList, error) {
	f.shoppingListCalls++
	return f.shoppingList, nil
}
func (f *fakeGateway) GenerateWorkoutPlan(ctx context.Context, profile gemini.ProfileSummary) (domain.WorkoutPlan, error) {
	return f.workoutPlan, nil
}
func (f *fakeGateway) TranslateTexts(ctx context.Context, texts []string, targetLanguage string) ([]string, error) {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = "hi:" + text
	}
	return out, nil
}
func (f *fakeGateway) StreamChat(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string, onChunk func(text string) error) error {
	return nil
}

func onboardedUser(lang string) *entities.User {
	return &entities.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Language:  lang,
		Onboarded: true,
		Age:       28,
		WeightKg:  70,
	}
}

func weeklyMealPlan() domain.MealPlan {
	plan := domain.MealPlan{}
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for _, day := range days {
		plan.WeeklyPlan = append(plan.WeeklyPlan, domain.DayPlan{
			Day:       day,
			Breakfast: domain.Meal{Name: "Oatmeal", Description: "With fruit."},
			Lunch:     domain.Meal{Name: "Dal and rice", Description: "With salad."},
			Dinner:    domain.Meal{Name: "Vegetable curry", Description: "With roti."},
		})
	}
	return plan
}

func TestShoppingListWithoutMealPlanIsANoop(t *testing.T) {
	gw := &fakeGateway{}
	u := onboardedUser("en")
	svc := NewPlanService(&fakeUserRepository{user: u}, gw)

	list, err := svc.GenerateShoppingList(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, list.Categories)
	assert.Zero(t, gw.shoppingListCalls, "gateway must not be called without a meal plan")
}

func TestShoppingListUsesLastMealPlan(t *testing.T) {
	gw := &fakeGateway{
		mealPlan: weeklyMealPlan(),
		shoppingList: domain.ShoppingList{
			Categories: []domain.ShoppingCategory{
				{Category: "Vegetables", Items: []string{"Spinach", "Tomatoes"}},
			},
		},
	}
	u := onboardedUser("en")
	svc := NewPlanService(&fakeUserRepository{user: u}, gw)

	_, err := svc.GenerateMealPlan(context.Background(), u.ID.String())
	require.NoError(t, err)

	list, err := svc.GenerateShoppingList(context.Background(), u.ID.String())
	require.NoError(t, err)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "Vegetables", list.Categories[0].Category)
	assert.Equal(t, 1, gw.shoppingListCalls)
}

func TestMealPlanIsTranslatedButCacheKeepsSource(t *testing.T) {
	gw := &fakeGateway{
		mealPlan: weeklyMealPlan(),
		shoppingList: domain.ShoppingList{
			Categories: []domain.ShoppingCategory{{Category: "Pantry", Items: []string{"Rice"}}},
		},
	}
	u := onboardedUser("hi")
	svc := NewPlanService(&fakeUserRepository{user: u}, gw)

	plan, err := svc.GenerateMealPlan(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "hi:Oatmeal", plan.WeeklyPlan[0].Breakfast.Name)

	// The shopping list is derived from the untranslated plan.
	ps := svc.(*planService)
	ps.mu.Lock()
	cached := ps.lastMealPlans[u.ID.String()]
	ps.mu.Unlock()
	assert.Equal(t, "Oatmeal", cached.WeeklyPlan[0].Breakfast.Name)
}

func TestPlanGenerationRequiresOnboarding(t *testing.T) {
	u := onboardedUser("en")
	u.Onboarded = false
	svc := NewPlanService(&fakeUserRepository{user: u}, &fakeGateway{mealPlan: weeklyMealPlan()})

	_, err := svc.GenerateMealPlan(context.Background(), u.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotOnboarded)
}
