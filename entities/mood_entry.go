package entities

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Mood     string    `json:"mood"` // "Happy", "Neutral", "Sad", "Stressed", "Energized"
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`
	LoggedAt time.Time `gorm:"type:timestamp" json:"logged_at"`

	User *User `gorm:"foreignKey:UserID"`
}
