package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

type stubLookup map[string]*domain.CropDefinition

func (s stubLookup) Find(name string, season domain.Season) (*domain.CropDefinition, bool) {
	crop, ok := s[strings.ToLower(name)]
	if !ok || crop.Season != season {
		return nil, false
	}
	return crop, true
}

var catalog = stubLookup{
	"parsnip": {
		Name:        "Parsnip",
		Season:      domain.SeasonSpring,
		HarvestKind: domain.HarvestSingle,
		SeedCost:    20,
		Prices:      domain.TierPrices{Base: 35, Silver: 44, Gold: 53},
		Jar:         domain.ProductPrice{Base: 120, Artisan: 168},
	},
	"green bean": {
		Name:            "Green Bean",
		Season:          domain.SeasonSpring,
		HarvestKind:     domain.HarvestMulti,
		HarvestsPerSeed: 6,
		SeedCost:        60,
		Prices:          domain.TierPrices{Base: 40, Silver: 50, Gold: 60},
		Keg:             domain.ProductPrice{Base: 90, Artisan: 126},
	},
	"melon": {
		Name:        "Melon",
		Season:      domain.SeasonSummer,
		HarvestKind: domain.HarvestSingle,
		SeedCost:    80,
		Prices:      domain.TierPrices{Base: 250, Silver: 312, Gold: 375},
	},
}

var odds = &domain.QualityProbabilityRow{SkillLevel: 1, Base: 60, Silver: 25, Gold: 15}

func TestAggregate_Empty(t *testing.T) {
	inputs := [][]domain.AllocationRow{
		nil,
		{},
		{{ID: "a"}, {ID: "b", CropName: "Parsnip"}, {ID: "c", SeedCount: 4}},
	}
	for _, rows := range inputs {
		got := Aggregate(rows, catalog, domain.SeasonSpring, odds, false, false)
		assert.Zero(t, got.TotalRevenue)
		assert.Zero(t, got.TotalSeedCost)
		assert.Zero(t, got.TotalProfit)
		assert.Empty(t, got.Breakdown)
		assert.NotNil(t, got.Breakdown)
		assert.Empty(t, got.Skipped)
	}
}

func TestAggregate_SumsInStoredOrder(t *testing.T) {
	rows := []domain.AllocationRow{
		{ID: "r2", CropName: "Green Bean", SeedCount: 2, Allocation: domain.Allocation{Sold: 4, Kegged: 8}},
		{ID: "empty"},
		{ID: "r1", CropName: "Parsnip", SeedCount: 10, Allocation: domain.Allocation{Sold: 10}},
	}

	got := Aggregate(rows, catalog, domain.SeasonSpring, odds, false, false)

	require.Len(t, got.Breakdown, 2)
	assert.Equal(t, "r2", got.Breakdown[0].RowID)
	assert.Equal(t, "r1", got.Breakdown[1].RowID)

	beans := got.Breakdown[0]
	assert.Equal(t, 12, beans.HarvestTotal)
	assert.InDelta(t, 45.5, beans.UnitPrice, 1e-9)
	// 4*45.5 + 8*90
	assert.InDelta(t, 902.0, beans.Revenue, 1e-9)
	assert.Equal(t, 120.0, beans.SeedCost)
	assert.Equal(t, domain.Allocation{Sold: 4, Kegged: 8}, beans.Distribution)

	parsnip := got.Breakdown[1]
	assert.InDelta(t, 399.5, parsnip.Revenue, 1e-9)
	assert.InDelta(t, 199.5, parsnip.Profit, 1e-9)

	assert.InDelta(t, 1301.5, got.TotalRevenue, 1e-9)
	assert.Equal(t, 320.0, got.TotalSeedCost)
	assert.InDelta(t, 981.5, got.TotalProfit, 1e-9)
	assert.Empty(t, got.Skipped)
}

func TestAggregate_SkipsUnresolvableRows(t *testing.T) {
	rows := []domain.AllocationRow{
		{ID: "stale", CropName: "Melon", SeedCount: 3, Allocation: domain.Allocation{Sold: 3}},
		{ID: "unknown", CropName: "Moonflower", SeedCount: 1},
		{ID: "ok", CropName: "Parsnip", SeedCount: 10, Allocation: domain.Allocation{Sold: 10}},
	}

	got := Aggregate(rows, catalog, domain.SeasonSpring, odds, false, false)

	require.Len(t, got.Breakdown, 1)
	assert.Equal(t, "ok", got.Breakdown[0].RowID)
	assert.InDelta(t, 199.5, got.TotalProfit, 1e-9)
	assert.Equal(t, []domain.SkippedRow{
		{RowID: "stale", CropName: "Melon", Reason: domain.SkipReasonUnknownCrop},
		{RowID: "unknown", CropName: "Moonflower", Reason: domain.SkipReasonUnknownCrop},
	}, got.Skipped)
}

func TestAggregate_MissingOdds(t *testing.T) {
	rows := []domain.AllocationRow{
		{ID: "a", CropName: "Parsnip", SeedCount: 10, Allocation: domain.Allocation{Sold: 10}},
	}

	got := Aggregate(rows, catalog, domain.SeasonSpring, nil, false, false)

	assert.Zero(t, got.TotalProfit)
	assert.Empty(t, got.Breakdown)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, domain.SkipReasonMissingOdds, got.Skipped[0].Reason)
}

func TestAggregate_NilLookup(t *testing.T) {
	rows := []domain.AllocationRow{{ID: "a", CropName: "Parsnip", SeedCount: 1}}
	got := Aggregate(rows, nil, domain.SeasonSpring, odds, false, false)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, domain.SkipReasonUnknownCrop, got.Skipped[0].Reason)
}

func TestAggregate_Deterministic(t *testing.T) {
	rows := []domain.AllocationRow{
		{ID: "a", CropName: "Green Bean", SeedCount: 3, Allocation: domain.Allocation{Sold: 9, Kegged: 9}},
		{ID: "b", CropName: "Parsnip", SeedCount: 7, Allocation: domain.Allocation{Sold: 2, Jarred: 5}},
	}
	first := Aggregate(rows, catalog, domain.SeasonSpring, odds, true, true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Aggregate(rows, catalog, domain.SeasonSpring, odds, true, true))
	}
}
