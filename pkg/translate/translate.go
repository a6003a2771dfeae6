// Package translate passes AI-generated free text through the gateway's
// batch-translation capability when the user's language is not the default.
// Everything here is best-effort: any failure, whole-call or per-item, falls
// back to the source-language string instead of failing the parent operation.
package translate

import (
	"context"

	"nutriscan-backend/domain"
	"nutriscan-backend/internal/i18n"
	"nutriscan-backend/pkg/gemini"
)

var languageNames = map[string]string{
	"hi": "Hindi",
}

func targetName(lang string) (string, bool) {
	if lang == i18n.DefaultLanguage {
		return "", false
	}
	name, ok := languageNames[lang]
	return name, ok
}

func pick(translations []string, i int, fallback string) string {
	if i < len(translations) && translations[i] != "" {
		return translations[i]
	}
	return fallback
}

func NutritionInfo(ctx context.Context, gw gemini.Gateway, lang string, info domain.NutritionInfo) domain.NutritionInfo {
	target, ok := targetName(lang)
	if !ok {
		return info
	}

	texts := []string{info.FoodName, info.ServingSize, info.Reason}
	translations, err := gw.TranslateTexts(ctx, texts, target)
	if err != nil {
		return info
	}

	info.FoodName = pick(translations, 0, info.FoodName)
	info.ServingSize = pick(translations, 1, info.ServingSize)
	info.Reason = pick(translations, 2, info.Reason)
	return info
}

func MealPlan(ctx context.Context, gw gemini.Gateway, lang string, plan domain.MealPlan) domain.MealPlan {
	target, ok := targetName(lang)
	if !ok {
		return plan
	}

	var texts []string
	for _, day := range plan.WeeklyPlan {
		texts = append(texts,
			day.Day,
			day.Breakfast.Name, day.Breakfast.Description,
			day.Lunch.Name, day.Lunch.Description,
			day.Dinner.Name, day.Dinner.Description,
		)
	}

	translations, err := gw.TranslateTexts(ctx, texts, target)
	if err != nil {
		return plan
	}

	// Copy before mutating so the caller's plan keeps its source language.
	days := make([]domain.DayPlan, len(plan.WeeklyPlan))
	copy(days, plan.WeeklyPlan)
	plan.WeeklyPlan = days

	i := 0
	next := func(fallback string) string {
		v := pick(translations, i, fallback)
		i++
		return v
	}
	for d := range plan.WeeklyPlan {
		day := &plan.WeeklyPlan[d]
		day.Day = next(day.Day)
		day.Breakfast.Name = next(day.Breakfast.Name)
		day.Breakfast.Description = next(day.Breakfast.Description)
		day.Lunch.Name = next(day.Lunch.Name)
		day.Lunch.Description = next(day.Lunch.Description)
		day.Dinner.Name = next(day.Dinner.Name)
		day.Dinner.Description = next(day.Dinner.Description)
	}
	return plan
}

func ShoppingList(ctx context.Context, gw gemini.Gateway, lang string, list domain.ShoppingList) domain.ShoppingList {
	target, ok := targetName(lang)
	if !ok {
		return list
	}

	var texts []string
	for _, cat := range list.Categories {
		texts = append(texts, cat.Category)
		texts = append(texts, cat.Items...)
	}

	translations, err := gw.TranslateTexts(ctx, texts, target)
	if err != nil {
		return list
	}

	categories := make([]domain.ShoppingCategory, len(list.Categories))
	for c, cat := range list.Categories {
		items := make([]string, len(cat.Items))
		copy(items, cat.Items)
		cat.Items = items
		categories[c] = cat
	}
	list.Categories = categories

	i := 0
	next := func(fallback string) string {
		v := pick(translations, i, fallback)
		i++
		return v
	}
	for c := range list.Categories {
		cat := &list.Categories[c]
		cat.Category = next(cat.Category)
		for it := range cat.Items {
			cat.Items[it] = next(cat.Items[it])
		}
	}
	return list
}

func WorkoutPlan(ctx context.Context, gw gemini.Gateway, lang string, plan domain.WorkoutPlan) domain.WorkoutPlan {
	target, ok := targetName(lang)
	if !ok {
		return plan
	}

	var texts []string
	for _, day := range plan.WeeklyWorkoutPlan {
		texts = append(texts, day.Day, day.Focus)
		for _, ex := range day.Exercises {
			texts = append(texts, ex.Name, ex.Description)
		}
	}

	translations, err := gw.TranslateTexts(ctx, texts, target)
	if err != nil {
		return plan
	}

	days := make([]domain.DailyWorkout, len(plan.WeeklyWorkoutPlan))
	for d, day := range plan.WeeklyWorkoutPlan {
		exercises := make([]domain.Exercise, len(day.Exercises))
		copy(exercises, day.Exercises)
		day.Exercises = exercises
		days[d] = day
	}
	plan.WeeklyWorkoutPlan = days

	i := 0
	next := func(fallback string) string {
		v := pick(translations, i, fallback)
		i++
		return v
	}
	for d := range plan.WeeklyWorkoutPlan {
		day := &plan.WeeklyWorkoutPlan[d]
		day.Day = next(day.Day)
		day.Focus = next(day.Focus)
		for e := range day.Exercises {
			ex := &day.Exercises[e]
			ex.Name = next(ex.Name)
			ex.Description = next(ex.Description)
		}
	}
	return plan
}
