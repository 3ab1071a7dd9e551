package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

func TestEvaluate(t *testing.T) {
	ref := testReferenceData(t)

	state := &domain.SessionState{
		SkillLevel: 1,
		Season:     domain.SeasonSpring,
		HasArtisan: true,
		Rows: []domain.AllocationRow{
			{ID: "r1", CropName: "Parsnip", SeedCount: 10, Allocation: domain.Allocation{Sold: 10}},
			{ID: "r2", CropName: "Green Bean", SeedCount: 2, Allocation: domain.Allocation{Kegged: 8}},
			{ID: "r3", CropName: "Mystery", SeedCount: 5},
			{ID: "r4"},
		},
	}

	report, err := Evaluate(ref, state)
	require.NoError(t, err)

	assert.False(t, report.Valid)
	require.Len(t, report.Capacity, 2)
	assert.True(t, report.Capacity[0].OK)
	assert.False(t, report.Capacity[1].OK)
	assert.Equal(t, 2, report.Capacity[1].Excess)

	require.Len(t, report.Totals.Breakdown, 2)
	require.Len(t, report.Totals.Skipped, 1)
	assert.Equal(t, domain.SkipReasonUnknownCrop, report.Totals.Skipped[0].Reason)
	// 399.5 + 8*126 revenue, 200 + 120 seed cost
	assert.InDelta(t, 1407.5, report.Totals.TotalRevenue, 1e-9)
	assert.Equal(t, 320.0, report.Totals.TotalSeedCost)
}

func TestEvaluate_Errors(t *testing.T) {
	ref := testReferenceData(t)

	_, err := Evaluate(nil, &domain.SessionState{SkillLevel: 1})
	assert.ErrorIs(t, err, domain.ErrReferenceNotLoaded)

	_, err = Evaluate(ref, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Evaluate(ref, &domain.SessionState{SkillLevel: 40, Season: domain.SeasonSpring})
	assert.ErrorIs(t, err, domain.ErrSkillLevelNotFound)
}
