package domain

import "errors"

var (
	MessageSuccessGenerateMealPlan     = "meal plan generated successfully"
	MessageSuccessGenerateShoppingList = "shopping list generated successfully"
	MessageSuccessGenerateWorkoutPlan  = "workout plan generated successfully"

	MessageFailedGenerateMealPlan     = "failed to generate a meal plan"
	MessageFailedGenerateShoppingList = "failed to generate a shopping list"
	MessageFailedGenerateWorkoutPlan  = "failed to generate a workout plan"

	ErrPlanGenerationFailed = errors.New("the AI model could not generate the plan")
	ErrMalformedPlan        = errors.New("the AI model returned a malformed plan")
)

type (
	Meal struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	DayPlan struct {
		Day       string `json:"day"`
		Breakfast Meal   `json:"breakfast"`
		Lunch     Meal   `json:"lunch"`
		Dinner    Meal   `json:"dinner"`
	}

	// MealPlan always carries exactly 7 day plans, Monday through Sunday.
	MealPlan struct {
		WeeklyPlan []DayPlan `json:"weeklyPlan"`
	}

	ShoppingCategory struct {
		Category string   `json:"category"`
		Items    []string `json:"items"`
	}

	ShoppingList struct {
		Categories []ShoppingCategory `json:"categories"`
	}

	Exercise struct {
		Name        string `json:"name"`
		Sets        string `json:"sets"`
		Reps        string `json:"reps"`
		Description string `json:"description"`
	}

	// DailyWorkout with an empty Exercises slice is a rest day.
	DailyWorkout struct {
		Day       string     `json:"day"`
		Focus     string     `json:"focus"`
		Exercises []Exercise `json:"exercises"`
	}

	WorkoutPlan struct {
		WeeklyWorkoutPlan []DailyWorkout `json:"weeklyWorkoutPlan"`
	}
)
