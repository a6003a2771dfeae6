package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMood        = "mood logged successfully"
	MessageSuccessGetMoodHistory = "mood history retrieved successfully"

	MessageFailedLogMood        = "failed to log mood"
	MessageFailedGetMoodHistory = "failed to retrieve mood history"

	ErrMoodNotSelected = errors.New("please select a mood")
)

type (
	LogMoodRequest struct {
		Mood  string `json:"mood" validate:"required,oneof=Happy Neutral Sad Stressed Energized"`
		Notes string `json:"notes" validate:"omitempty"`
	}

	MoodLogResponse struct {
		ID       string    `json:"id"`
		Mood     string    `json:"mood"`
		Notes    string    `json:"notes,omitempty"`
		LoggedAt time.Time `json:"logged_at"`
	}
)
