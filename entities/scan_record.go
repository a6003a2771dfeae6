package entities

import (
	"github.com/google/uuid"
)

// ScanRecord is one entry of the capped scan history. Duplicates are allowed,
// ordering is by CreatedAt, newest first.
type ScanRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	ScanMode string    `json:"scan_mode"` // "food" or "qr"
	ImageURL string    `json:"image_url,omitempty"`

	FoodName       string  `json:"food_name"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fats           float64 `json:"fats"`
	Recommendation string  `json:"recommendation"` // "Should Eat", "Moderate", "Avoid"
	ServingSize    string  `json:"serving_size"`
	Reason         string  `json:"reason" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
