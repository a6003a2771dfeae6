package entities

import (
	"github.com/google/uuid"
)

// DailyProgress holds the running per-user nutrient and water totals. One row
// per user; totals only grow through scan merges. There is no automatic
// day-boundary reset.
type DailyProgress struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`

	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	WaterMl     int     `json:"water_ml"`      // invariant: >= 0
	WaterGoalMl int     `json:"water_goal_ml"` // round(weight_kg * 35)

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
