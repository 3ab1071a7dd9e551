package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

func parsnip() *domain.CropDefinition {
	return &domain.CropDefinition{
		Name:         "Parsnip",
		Season:       domain.SeasonSpring,
		HarvestKind:  domain.HarvestSingle,
		SeedCost:     20,
		Prices:       domain.TierPrices{Base: 35, Silver: 44, Gold: 53},
		TillerPrices: domain.TierPrices{Base: 35, Silver: 44, Gold: 53},
		Jar:          domain.ProductPrice{Base: 120, Artisan: 168},
		Keg:          domain.ProductPrice{Base: 78, Artisan: 109},
	}
}

func blueberry() *domain.CropDefinition {
	return &domain.CropDefinition{
		Name:            "Blueberry",
		Season:          domain.SeasonSummer,
		HarvestKind:     domain.HarvestMulti,
		HarvestsPerSeed: 3,
		SeedCost:        80,
		Prices:          domain.TierPrices{Base: 50, Silver: 62, Gold: 75},
		TillerPrices:    domain.TierPrices{Base: 55, Silver: 68, Gold: 82},
		Jar:             domain.ProductPrice{Base: 150, Artisan: 210},
		Keg:             domain.ProductPrice{Base: 100, Artisan: 150},
		Aged:            domain.ProductPrice{Base: 200, Artisan: 280},
	}
}

var level1Odds = domain.QualityProbabilityRow{SkillLevel: 1, Base: 60, Silver: 25, Gold: 15}

func TestHarvestTotal(t *testing.T) {
	fractional := blueberry()
	fractional.HarvestsPerSeed = 4.5

	tests := []struct {
		name     string
		crop     *domain.CropDefinition
		seeds    int
		expected int
	}{
		{"single harvest equals seeds", parsnip(), 10, 10},
		{"multi harvest multiplies", blueberry(), 4, 12},
		{"fractional per-seed truncates", fractional, 3, 13},
		{"fractional exact product", fractional, 4, 18},
		{"zero seeds", blueberry(), 0, 0},
		{"negative seeds clamp to zero", parsnip(), -5, 0},
		{"nil crop", nil, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HarvestTotal(tt.crop, tt.seeds))
		})
	}
}

func TestHarvestTotal_LinearForIntegerMulti(t *testing.T) {
	crop := blueberry()
	for _, k := range []int{1, 2, 7, 50, 333} {
		assert.Equal(t, 2*HarvestTotal(crop, k), HarvestTotal(crop, 2*k), "k=%d", k)
	}
}

func TestExpectedUnitPrice(t *testing.T) {
	t.Run("weighted expectation", func(t *testing.T) {
		assert.InDelta(t, 39.95, ExpectedUnitPrice(parsnip(), level1Odds, false), 1e-9)
	})

	t.Run("tiller uses tiller prices", func(t *testing.T) {
		// 55*.60 + 68*.25 + 82*.15 = 33 + 17 + 12.3
		assert.InDelta(t, 62.3, ExpectedUnitPrice(blueberry(), level1Odds, true), 1e-9)
		assert.InDelta(t, 56.75, ExpectedUnitPrice(blueberry(), level1Odds, false), 1e-9)
	})

	t.Run("equal prices return the price exactly", func(t *testing.T) {
		rows := []domain.QualityProbabilityRow{
			{Base: 100},
			{Base: 60, Silver: 25, Gold: 15},
			{Base: 33, Silver: 33, Gold: 34},
			{Base: 0, Silver: 0, Gold: 100},
		}
		for _, p := range []float64{1, 35, 120, 999} {
			crop := &domain.CropDefinition{Prices: domain.TierPrices{Base: p, Silver: p, Gold: p}}
			for _, odds := range rows {
				assert.Equal(t, p, ExpectedUnitPrice(crop, odds, false))
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := ExpectedUnitPrice(blueberry(), level1Odds, true)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ExpectedUnitPrice(blueberry(), level1Odds, true))
		}
	})
}

func TestChannelRevenue(t *testing.T) {
	keg := &domain.CropDefinition{
		Name: "Keg Test",
		Keg:  domain.ProductPrice{Base: 100, Artisan: 150},
	}

	t.Run("artisan keg scenario", func(t *testing.T) {
		assert.Equal(t, 500.0, ChannelRevenue(keg, domain.ChannelKegged, 5, false))
		assert.Equal(t, 750.0, ChannelRevenue(keg, domain.ChannelKegged, 5, true))
	})

	t.Run("unavailable channel earns nothing", func(t *testing.T) {
		for _, base := range []float64{0, -1, -250} {
			crop := &domain.CropDefinition{
				Jar: domain.ProductPrice{Base: base, Artisan: 500},
			}
			for _, qty := range []int{1, 10, 1000} {
				assert.Zero(t, ChannelRevenue(crop, domain.ChannelJarred, qty, false))
				assert.Zero(t, ChannelRevenue(crop, domain.ChannelJarred, qty, true))
			}
		}
	})

	t.Run("zero and negative quantity", func(t *testing.T) {
		assert.Zero(t, ChannelRevenue(keg, domain.ChannelKegged, 0, true))
		assert.Zero(t, ChannelRevenue(keg, domain.ChannelKegged, -3, true))
	})

	t.Run("artisan falls back to base when no artisan price", func(t *testing.T) {
		crop := &domain.CropDefinition{Aged: domain.ProductPrice{Base: 40}}
		assert.Equal(t, 80.0, ChannelRevenue(crop, domain.ChannelAged, 2, true))
	})

	t.Run("sold is not a product channel", func(t *testing.T) {
		assert.Zero(t, ChannelRevenue(parsnip(), domain.ChannelSold, 10, false))
	})
}

func TestRowProfit(t *testing.T) {
	t.Run("parsnip scenario", func(t *testing.T) {
		row := domain.AllocationRow{
			CropName:   "Parsnip",
			SeedCount:  10,
			Allocation: domain.Allocation{Sold: 10},
		}
		got := RowProfit(row, parsnip(), level1Odds, false, false)
		assert.InDelta(t, 399.5, got.Revenue, 1e-9)
		assert.Equal(t, 200.0, got.SeedCost)
		assert.InDelta(t, 199.5, got.Profit, 1e-9)
	})

	t.Run("all channels summed", func(t *testing.T) {
		row := domain.AllocationRow{
			CropName:   "Blueberry",
			SeedCount:  4,
			Allocation: domain.Allocation{Sold: 3, Jarred: 3, Kegged: 3, Aged: 3},
		}
		got := RowProfit(row, blueberry(), level1Odds, false, true)
		// 3*56.75 + 3*210 + 3*150 + 3*280
		assert.InDelta(t, 170.25+630+450+840, got.Revenue, 1e-9)
		assert.Equal(t, 320.0, got.SeedCost)
		assert.InDelta(t, got.Revenue-got.SeedCost, got.Profit, 1e-9)
	})

	t.Run("inactive rows contribute nothing", func(t *testing.T) {
		rows := []domain.AllocationRow{
			{CropName: "", SeedCount: 10, Allocation: domain.Allocation{Sold: 10}},
			{CropName: "Parsnip", SeedCount: 0, Allocation: domain.Allocation{Sold: 10}},
		}
		for _, row := range rows {
			assert.Equal(t, domain.RowResult{}, RowProfit(row, parsnip(), level1Odds, true, true))
		}
	})

	t.Run("negative quantities never reduce revenue", func(t *testing.T) {
		row := domain.AllocationRow{
			CropName:   "Parsnip",
			SeedCount:  1,
			Allocation: domain.Allocation{Sold: -5, Jarred: -5},
		}
		got := RowProfit(row, parsnip(), level1Odds, false, false)
		assert.Zero(t, got.Revenue)
		assert.Equal(t, -20.0, got.Profit)
	})

	t.Run("idempotent", func(t *testing.T) {
		row := domain.AllocationRow{
			CropName:   "Blueberry",
			SeedCount:  7,
			Allocation: domain.Allocation{Sold: 5, Kegged: 9},
		}
		crop := blueberry()
		first := RowProfit(row, crop, level1Odds, true, true)
		second := RowProfit(row, crop, level1Odds, true, true)
		assert.Equal(t, first, second)
		assert.Equal(t, blueberry(), crop, "crop must not be mutated")
	})
}

func TestQuote(t *testing.T) {
	q := Quote(parsnip(), 10, level1Odds, false, true)

	assert.Equal(t, "Parsnip", q.Crop)
	assert.Equal(t, 10, q.HarvestTotal)
	assert.InDelta(t, 39.95, q.UnitPrice, 1e-9)
	assert.InDelta(t, 39.95, q.ChannelPrices[domain.ChannelSold], 1e-9)
	assert.Equal(t, 168.0, q.ChannelPrices[domain.ChannelJarred])
	assert.Equal(t, 109.0, q.ChannelPrices[domain.ChannelKegged])
	_, hasAged := q.ChannelPrices[domain.ChannelAged]
	assert.False(t, hasAged, "parsnip cannot be aged")

	assert.Equal(t, domain.CropQuote{}, Quote(nil, 10, level1Odds, false, false))
}
