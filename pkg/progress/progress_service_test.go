package progress

import (
	"context"
	"testing"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgressRepository struct {
	progress *entities.DailyProgress
	updates  int
}

func (f *fakeProgressRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.DailyProgress, error) {
	if f.progress == nil {
		f.progress = &entities.DailyProgress{ID: uuid.New(), UserID: userID}
	}
	return f.progress, nil
}

func (f *fakeProgressRepository) Update(ctx context.Context, progress *entities.DailyProgress) error {
	f.updates++
	f.progress = progress
	return nil
}

func TestWaterGoalFor(t *testing.T) {
	cases := []struct {
		weightKg float64
		want     int
	}{
		{70, 2450},
		{50, 1750},
		{62.5, 2188},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WaterGoalFor(tc.weightKg))
	}
}

func TestMergeIsOrderIndependent(t *testing.T) {
	deltas := []domain.NutritionValues{
		{Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4},
		{Calories: 250, Protein: 12, Carbs: 30, Fats: 9},
		{Calories: 80, Protein: 0.5, Carbs: 20, Fats: 0.1},
	}

	forward := &entities.DailyProgress{}
	for _, d := range deltas {
		Merge(forward, d)
	}

	backward := &entities.DailyProgress{}
	for i := len(deltas) - 1; i >= 0; i-- {
		Merge(backward, deltas[i])
	}

	assert.Equal(t, forward.Calories, backward.Calories)
	assert.Equal(t, forward.Protein, backward.Protein)
	assert.Equal(t, forward.Carbs, backward.Carbs)
	assert.Equal(t, forward.Fats, backward.Fats)
	assert.Equal(t, 435.0, forward.Calories)
}

func TestAdjustWaterFloorsAtZero(t *testing.T) {
	p := &entities.DailyProgress{WaterMl: 100}
	AdjustWater(p, -250)
	assert.Equal(t, 0, p.WaterMl)

	AdjustWater(p, -250)
	assert.Equal(t, 0, p.WaterMl)

	AdjustWater(p, 250)
	assert.Equal(t, 250, p.WaterMl)
}

func TestAdjustWaterRejectsArbitraryDeltas(t *testing.T) {
	repo := &fakeProgressRepository{}
	svc := NewProgressService(repo)
	userID := uuid.New().String()

	_, err := svc.AdjustWater(context.Background(), userID, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidWaterStep)
	assert.Zero(t, repo.updates)

	res, err := svc.AdjustWater(context.Background(), userID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, res.WaterMl)
	assert.Equal(t, 1, repo.updates)
}

func TestSyncWaterGoalSkipsNoopUpdate(t *testing.T) {
	repo := &fakeProgressRepository{}
	svc := NewProgressService(repo)
	userID := uuid.New().String()

	require.NoError(t, svc.SyncWaterGoal(context.Background(), userID, 70))
	assert.Equal(t, 2450, repo.progress.WaterGoalMl)
	assert.Equal(t, 1, repo.updates)

	require.NoError(t, svc.SyncWaterGoal(context.Background(), userID, 70))
	assert.Equal(t, 1, repo.updates)
}

func TestParseUserIDRejectsGarbage(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepository{})
	_, err := svc.GetProgress(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
