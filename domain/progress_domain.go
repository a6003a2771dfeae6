package domain

import "errors"

// WaterStepMl is the fixed increment applied by the water tracker controls.
const WaterStepMl = 250

var (
	MessageSuccessGetProgress = "daily progress retrieved successfully"
	MessageSuccessAdjustWater = "water intake updated successfully"

	MessageFailedGetProgress = "failed to retrieve daily progress"
	MessageFailedAdjustWater = "failed to update water intake"

	ErrInvalidWaterStep = errors.New("water adjustment must be a fixed step")
)

type (
	AdjustWaterRequest struct {
		DeltaMl int `json:"delta_ml" validate:"required,oneof=-250 250"`
	}

	DailyProgressResponse struct {
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fats        float64 `json:"fats"`
		WaterMl     int     `json:"water_ml"`
		WaterGoalMl int     `json:"water_goal_ml"`
	}
)
