package scan

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"
	"nutriscan-backend/internal/utils/storage"
	"nutriscan-backend/pkg/gemini"
	"nutriscan-backend/pkg/translate"
	"nutriscan-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScanService interface {
		AnalyzeFood(ctx context.Context, userID string, req domain.AnalyzeFoodRequest) (domain.AnalyzeResponse, error)
		AnalyzeQR(ctx context.Context, userID string, req domain.AnalyzeQRRequest) (domain.AnalyzeResponse, error)
		GetHistory(ctx context.Context, userID string, search string) ([]domain.ScanHistoryItem, error)
	}

	scanService struct {
		scanRepository ScanRepository
		userRepository user.UserRepository
		gateway        gemini.Gateway
		s3             storage.AwsS3

		// inFlight holds user IDs with an analysis currently running. A second
		// request for the same user is rejected instead of queued, so two
		// concurrent scans can never double-count progress.
		inFlight sync.Map
	}
)

func NewScanService(scanRepository ScanRepository, userRepository user.UserRepository, gateway gemini.Gateway, s3 storage.AwsS3) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		userRepository: userRepository,
		gateway:        gateway,
		s3:             s3,
	}
}

func (s *scanService) AnalyzeFood(ctx context.Context, userID string, req domain.AnalyzeFoodRequest) (domain.AnalyzeResponse, error) {
	if req.Image == nil {
		return domain.AnalyzeResponse{}, domain.ErrEmptyScanPayload
	}

	release, err := s.acquire(userID)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}
	defer release()

	profile, lang, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}

	file, err := req.Image.Open()
	if err != nil {
		return domain.AnalyzeResponse{}, domain.ErrUnreadableFile
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.AnalyzeResponse{}, domain.ErrUnreadableFile
	}

	info, err := s.gateway.AnalyzeFoodImage(ctx, base64.StdEncoding.EncodeToString(fileData), imageMimeType(req.Image.Filename, req.Image.Header.Get("Content-Type")), profile)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}

	// The image upload is best-effort. History without a thumbnail is still
	// history; a failed analysis with a stored image would be an orphan.
	imageURL := ""
	fileName := fmt.Sprintf("scan-%s", uuid.New().String())
	if objectKey, upErr := s.s3.UploadFile(fileName, req.Image, "scans", storage.AllowImage...); upErr != nil {
		log.Printf("failed uploading scan image for user %s: %v", userID, upErr)
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.persist(ctx, userID, domain.ScanModeFood, imageURL, lang, info)
}

func (s *scanService) AnalyzeQR(ctx context.Context, userID string, req domain.AnalyzeQRRequest) (domain.AnalyzeResponse, error) {
	if strings.TrimSpace(req.Payload) == "" {
		return domain.AnalyzeResponse{}, domain.ErrEmptyScanPayload
	}

	release, err := s.acquire(userID)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}
	defer release()

	profile, lang, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}

	info, err := s.gateway.AnalyzeScannedText(ctx, req.Payload, profile)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}

	return s.persist(ctx, userID, domain.ScanModeQR, "", lang, info)
}

func (s *scanService) GetHistory(ctx context.Context, userID string, search string) ([]domain.ScanHistoryItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	records, err := s.scanRepository.ListHistory(ctx, uid, search)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ScanHistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.ScanHistoryItem{
			ID:             record.ID.String(),
			FoodName:       record.FoodName,
			Calories:       record.Calories,
			Protein:        record.Protein,
			Carbs:          record.Carbs,
			Fats:           record.Fats,
			Recommendation: record.Recommendation,
			ServingSize:    record.ServingSize,
			Reason:         record.Reason,
			ScanMode:       record.ScanMode,
			ImageURL:       record.ImageURL,
			ScannedAt:      record.CreatedAt,
		})
	}
	return items, nil
}

func (s *scanService) acquire(userID string) (func(), error) {
	if _, loaded := s.inFlight.LoadOrStore(userID, struct{}{}); loaded {
		return nil, domain.ErrAnalysisInFlight
	}
	return func() { s.inFlight.Delete(userID) }, nil
}

func (s *scanService) loadProfile(ctx context.Context, userID string) (gemini.ProfileSummary, string, error) {
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gemini.ProfileSummary{}, "", domain.ErrUserNotFound
		}
		return gemini.ProfileSummary{}, "", err
	}
	if !u.Onboarded {
		return gemini.ProfileSummary{}, "", domain.ErrNotOnboarded
	}

	return gemini.ProfileSummary{
		Age:               u.Age,
		Gender:            u.Gender,
		HeightCm:          u.HeightCm,
		WeightKg:          u.WeightKg,
		DietaryPreference: u.DietaryPreference,
		GoalType:          u.GoalType,
		GoalDetail:        u.GoalDetail,
		GoalCustomDetail:  u.GoalCustomDetail,
		Profession:        u.Profession,
		CustomProfession:  u.CustomProfession,
	}, u.Language, nil
}

// persist stores the analysis atomically and returns the (possibly
// translated) result. Nutrition numbers are always persisted from the
// source-language analysis; translation only touches display text.
func (s *scanService) persist(ctx context.Context, userID, mode, imageURL, lang string, info domain.NutritionInfo) (domain.AnalyzeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.AnalyzeResponse{}, domain.ErrParseUUID
	}

	record := &entities.ScanRecord{
		ID:             uuid.New(),
		UserID:         uid,
		ScanMode:       mode,
		ImageURL:       imageURL,
		FoodName:       info.FoodName,
		Calories:       info.Nutrition.Calories,
		Protein:        info.Nutrition.Protein,
		Carbs:          info.Nutrition.Carbs,
		Fats:           info.Nutrition.Fats,
		Recommendation: info.Recommendation,
		ServingSize:    info.ServingSize,
		Reason:         info.Reason,
	}
	evicted, err := s.scanRepository.SaveAnalysis(ctx, record, domain.HistoryCap)
	if err != nil {
		return domain.AnalyzeResponse{}, err
	}
	s.releaseImages(evicted)

	return domain.AnalyzeResponse{
		ID:       record.ID.String(),
		ImageURL: imageURL,
		Result:   translate.NutritionInfo(ctx, s.gateway, lang, info),
	}, nil
}

// releaseImages deletes the stored images of evicted history records.
// Best-effort: the records are already gone, a leaked object is not
// worth failing the analysis over.
func (s *scanService) releaseImages(evicted []entities.ScanRecord) {
	for _, old := range evicted {
		if old.ImageURL == "" {
			continue
		}
		objectKey := s.s3.GetObjectKeyFromLink(old.ImageURL)
		if objectKey == "" {
			continue
		}
		_ = s.s3.DeleteFile(objectKey)
	}
}

func imageMimeType(filename, contentType string) string {
	if contentType != "" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
