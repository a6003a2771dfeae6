package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ScanModeFood = "food"
	ScanModeQR   = "qr"

	RecommendationShouldEat = "Should Eat"
	RecommendationModerate  = "Moderate"
	RecommendationAvoid     = "Avoid"

	// HistoryCap is the hard limit on retained scan records per user. The
	// oldest entry is evicted silently once the cap is exceeded.
	HistoryCap = 50
)

var (
	MessageSuccessAnalyze    = "analysis completed successfully"
	MessageSuccessGetHistory = "scan history retrieved successfully"

	MessageFailedAnalyze    = "failed to analyze scan"
	MessageFailedGetHistory = "failed to retrieve scan history"

	ErrInvalidScanMode    = errors.New("invalid scan mode")
	ErrEmptyScanPayload   = errors.New("scan payload is empty")
	ErrAnalysisInFlight   = errors.New("an analysis is already in progress")
	ErrAnalysisFailed     = errors.New("the AI model could not process the request")
	ErrUnreadableFile     = errors.New("could not read uploaded file")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	// NutritionValues is the additive portion of an analysis, folded into the
	// daily progress totals.
	NutritionValues struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	// NutritionInfo is one scan result as produced by the AI gateway.
	NutritionInfo struct {
		FoodName       string          `json:"foodName"`
		Nutrition      NutritionValues `json:"nutrition"`
		Recommendation string          `json:"recommendation"`
		ServingSize    string          `json:"servingSize"`
		Reason         string          `json:"reason"`
	}

	AnalyzeFoodRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AnalyzeQRRequest struct {
		Payload string `json:"payload" validate:"required"`
	}

	AnalyzeResponse struct {
		ID       string        `json:"id"`
		ImageURL string        `json:"image_url,omitempty"`
		Result   NutritionInfo `json:"result"`
	}

	ScanHistoryItem struct {
		ID             string    `json:"id"`
		FoodName       string    `json:"food_name"`
		Calories       float64   `json:"calories"`
		Protein        float64   `json:"protein"`
		Carbs          float64   `json:"carbs"`
		Fats           float64   `json:"fats"`
		Recommendation string    `json:"recommendation"`
		ServingSize    string    `json:"serving_size"`
		Reason         string    `json:"reason"`
		ScanMode       string    `json:"scan_mode"`
		ImageURL       string    `json:"image_url,omitempty"`
		ScannedAt      time.Time `json:"scanned_at"`
	}
)

// Valid reports whether the gateway returned a recommendation from the closed
// enum. Anything else is treated as a schema violation.
func (n NutritionInfo) Valid() bool {
	switch n.Recommendation {
	case RecommendationShouldEat, RecommendationModerate, RecommendationAvoid:
	default:
		return false
	}
	if n.FoodName == "" {
		return false
	}
	return n.Nutrition.Calories >= 0 && n.Nutrition.Protein >= 0 &&
		n.Nutrition.Carbs >= 0 && n.Nutrition.Fats >= 0
}
