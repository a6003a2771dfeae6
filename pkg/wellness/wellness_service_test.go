package wellness

import (
	"context"
	"sort"
	"testing"
	"time"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWellnessRepository struct {
	entries []entities.MoodEntry
}

func (f *fakeWellnessRepository) CreateMoodEntry(ctx context.Context, entry *entities.MoodEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeWellnessRepository) ListMoodEntries(ctx context.Context, userID uuid.UUID) ([]entities.MoodEntry, error) {
	out := make([]entities.MoodEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	return out, nil
}

func TestLogMood(t *testing.T) {
	repo := &fakeWellnessRepository{}
	svc := NewWellnessService(repo)
	userID := uuid.New().String()

	res, err := svc.LogMood(context.Background(), userID, domain.LogMoodRequest{Mood: "Happy", Notes: "Great workout today"})
	require.NoError(t, err)
	assert.Equal(t, "Happy", res.Mood)
	assert.Equal(t, "Great workout today", res.Notes)
	assert.WithinDuration(t, time.Now(), res.LoggedAt, time.Minute)
	require.Len(t, repo.entries, 1)
}

func TestLogMoodRequiresMood(t *testing.T) {
	svc := NewWellnessService(&fakeWellnessRepository{})
	_, err := svc.LogMood(context.Background(), uuid.New().String(), domain.LogMoodRequest{Notes: "no mood"})
	assert.ErrorIs(t, err, domain.ErrMoodNotSelected)
}

func TestGetMoodHistoryNewestFirst(t *testing.T) {
	repo := &fakeWellnessRepository{}
	svc := NewWellnessService(repo)
	userID := uuid.New()

	for i, mood := range []string{"Sad", "Neutral", "Energized"} {
		repo.entries = append(repo.entries, entities.MoodEntry{
			ID:       uuid.New(),
			UserID:   userID,
			Mood:     mood,
			LoggedAt: time.Now().Add(time.Duration(i) * time.Hour),
		})
	}

	history, err := svc.GetMoodHistory(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Energized", history[0].Mood)
	assert.Equal(t, "Sad", history[2].Mood)
}

func TestGetMoodHistoryRejectsBadUserID(t *testing.T) {
	svc := NewWellnessService(&fakeWellnessRepository{})
	_, err := svc.GetMoodHistory(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
