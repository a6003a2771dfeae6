package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"is_verified"`
	IsPremium  bool      `json:"is_premium"`
	Language   string    `gorm:"default:en" json:"language"` // "en" or "hi"

	// Profile fields, filled in at onboarding. Onboarded stays false until then.
	Onboarded         bool    `json:"onboarded"`
	Name              string  `json:"name"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"` // "Male", "Female", "Other", "Prefer not to say"
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	DietaryPreference string  `json:"dietary_preference"` // "Vegetarian", "Non-Vegetarian"
	GoalType          string  `json:"goal_type"`          // "Medical", "Fitness"
	GoalDetail        string  `json:"goal_detail"`
	GoalCustomDetail  string  `json:"goal_custom_detail,omitempty"`
	Profession        string  `json:"profession"`
	CustomProfession  string  `json:"custom_profession,omitempty"`

	Timestamp
}
