package wellness

import (
	"context"
	"time"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"

	"github.com/google/uuid"
)

type (
	WellnessService interface {
		LogMood(ctx context.Context, userID string, req domain.LogMoodRequest) (domain.MoodLogResponse, error)
		GetMoodHistory(ctx context.Context, userID string) ([]domain.MoodLogResponse, error)
	}

	wellnessService struct {
		wellnessRepository WellnessRepository
	}
)

func NewWellnessService(wellnessRepository WellnessRepository) WellnessService {
	return &wellnessService{wellnessRepository: wellnessRepository}
}

func (s *wellnessService) LogMood(ctx context.Context, userID string, req domain.LogMoodRequest) (domain.MoodLogResponse, error) {
	if req.Mood == "" {
		return domain.MoodLogResponse{}, domain.ErrMoodNotSelected
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.MoodLogResponse{}, domain.ErrParseUUID
	}

	entry := &entities.MoodEntry{
		ID:       uuid.New(),
		UserID:   uid,
		Mood:     req.Mood,
		Notes:    req.Notes,
		LoggedAt: time.Now(),
	}
	if err := s.wellnessRepository.CreateMoodEntry(ctx, entry); err != nil {
		return domain.MoodLogResponse{}, err
	}

	return toMoodResponse(entry), nil
}

func (s *wellnessService) GetMoodHistory(ctx context.Context, userID string) ([]domain.MoodLogResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entries, err := s.wellnessRepository.ListMoodEntries(ctx, uid)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MoodLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toMoodResponse(&entries[i]))
	}
	return responses, nil
}

func toMoodResponse(entry *entities.MoodEntry) domain.MoodLogResponse {
	return domain.MoodLogResponse{
		ID:       entry.ID.String(),
		Mood:     entry.Mood,
		Notes:    entry.Notes,
		LoggedAt: entry.LoggedAt,
	}
}
