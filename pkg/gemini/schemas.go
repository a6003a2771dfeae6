package gemini

// Response schemas passed to the model via generationConfig.responseSchema.
// Each capability has a fixed schema; anything that does not decode into the
// matching domain type is treated as a gateway failure.

var nutritionResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"foodName": map[string]interface{}{
			"type":        "STRING",
			"description": "The name of the food item identified in the image.",
		},
		"nutrition": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"calories": map[string]interface{}{"type": "NUMBER", "description": "Estimated calories in kcal."},
				"protein":  map[string]interface{}{"type": "NUMBER", "description": "Estimated protein in grams."},
				"carbs":    map[string]interface{}{"type": "NUMBER", "description": "Estimated carbohydrates in grams."},
				"fats":     map[string]interface{}{"type": "NUMBER", "description": "Estimated fats in grams."},
			},
			"required": []string{"calories", "protein", "carbs", "fats"},
		},
		"recommendation": map[string]interface{}{
			"type": "STRING",
			"enum": []string{"Should Eat", "Moderate", "Avoid"},
		},
		"servingSize": map[string]interface{}{
			"type":        "STRING",
			"description": "A suggested appropriate serving size, e.g., '1 cup' or '100 grams'.",
		},
		"reason": map[string]interface{}{
			"type":        "STRING",
			"description": "A brief, one-sentence explanation for the recommendation.",
		},
	},
	"required": []string{"foodName", "nutrition", "recommendation", "servingSize", "reason"},
}

var mealSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "STRING"},
		"description": map[string]interface{}{"type": "STRING", "description": "A short description of the meal."},
	},
	"required": []string{"name", "description"},
}

var mealPlanResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"weeklyPlan": map[string]interface{}{
			"type":        "ARRAY",
			"description": "An array of 7 daily meal plans.",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"day":       map[string]interface{}{"type": "STRING", "description": "Day of the week (e.g., Monday)."},
					"breakfast": mealSchema,
					"lunch":     mealSchema,
					"dinner":    mealSchema,
				},
				"required": []string{"day", "breakfast", "lunch", "dinner"},
			},
		},
	},
	"required": []string{"weeklyPlan"},
}

var shoppingListResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"categories": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"category": map[string]interface{}{"type": "STRING", "description": "Category name (e.g., Vegetables, Dairy, Meat)."},
					"items": map[string]interface{}{
						"type":  "ARRAY",
						"items": map[string]interface{}{"type": "STRING"},
					},
				},
				"required": []string{"category", "items"},
			},
		},
	},
	"required": []string{"categories"},
}

var workoutPlanResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"weeklyWorkoutPlan": map[string]interface{}{
			"type":        "ARRAY",
			"description": "An array of 7 daily workout plans.",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"day":   map[string]interface{}{"type": "STRING"},
					"focus": map[string]interface{}{"type": "STRING", "description": "The main focus of the day's workout."},
					"exercises": map[string]interface{}{
						"type":        "ARRAY",
						"description": "Exercises for the day. Empty on a rest day.",
						"items": map[string]interface{}{
							"type": "OBJECT",
							"properties": map[string]interface{}{
								"name":        map[string]interface{}{"type": "STRING"},
								"sets":        map[string]interface{}{"type": "STRING"},
								"reps":        map[string]interface{}{"type": "STRING"},
								"description": map[string]interface{}{"type": "STRING"},
							},
							"required": []string{"name", "sets", "reps", "description"},
						},
					},
				},
				"required": []string{"day", "focus", "exercises"},
			},
		},
	},
	"required": []string{"weeklyWorkoutPlan"},
}

var translationResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"translations": map[string]interface{}{
			"type":        "ARRAY",
			"description": "Translated strings, same order and length as the input.",
			"items":       map[string]interface{}{"type": "STRING"},
		},
	},
	"required": []string{"translations"},
}
