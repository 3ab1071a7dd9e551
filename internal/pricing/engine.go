// Package pricing turns a crop definition, quality odds and an allocation into money.
// Every function here is pure: no package state, no I/O, no rounding.
package pricing

import (
	"math"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// percentScale converts the probability table's percentages to fractions
const percentScale = 100.0

// HarvestTotal returns the number of units harvested from seedCount seeds over a season.
// Multi-harvest crops yield seedCount * HarvestsPerSeed, truncated toward zero.
func HarvestTotal(crop *domain.CropDefinition, seedCount int) int {
	if crop == nil || seedCount <= 0 {
		return 0
	}
	if crop.IsMulti() {
		if crop.HarvestsPerSeed <= 0 {
			return 0
		}
		return int(math.Trunc(float64(seedCount) * crop.HarvestsPerSeed))
	}
	return seedCount
}

// ExpectedUnitPrice is the probability-weighted sale price of one raw unit.
// Tiller swaps in the tiller price triple.
func ExpectedUnitPrice(crop *domain.CropDefinition, odds domain.QualityProbabilityRow, hasTiller bool) float64 {
	if crop == nil {
		return 0
	}
	prices := crop.Prices
	if hasTiller {
		prices = crop.TillerPrices
	}

	// Weighting on the percent scale and dividing once keeps results exact when
	// the odds are whole percentages.
	var weighted float64
	for _, tier := range domain.QualityTiers {
		weighted += prices.Price(tier) * odds.Percent(tier)
	}
	return weighted / percentScale
}

// ChannelRevenue is the revenue of sending quantity units into a processed-product channel.
// Unavailable channels and non-positive quantities earn nothing. The sold channel is
// priced by RowProfit, not here.
func ChannelRevenue(crop *domain.CropDefinition, ch domain.Channel, quantity int, hasArtisan bool) float64 {
	if crop == nil || quantity <= 0 {
		return 0
	}
	product, ok := crop.Product(ch)
	if !ok || !product.Available() {
		return 0
	}
	return float64(quantity) * productUnitPrice(product, hasArtisan)
}

// ProductUnitPrice is the per-unit price of a channel's product, or 0 if unavailable
func ProductUnitPrice(crop *domain.CropDefinition, ch domain.Channel, hasArtisan bool) float64 {
	if crop == nil {
		return 0
	}
	product, ok := crop.Product(ch)
	if !ok || !product.Available() {
		return 0
	}
	return productUnitPrice(product, hasArtisan)
}

func productUnitPrice(product domain.ProductPrice, hasArtisan bool) float64 {
	if hasArtisan && product.Artisan > 0 {
		return product.Artisan
	}
	return product.Base
}

// RowProfit prices one allocation row. Inactive rows (no crop or no seeds) return
// the zero result; callers that aggregate should filter them first.
func RowProfit(row domain.AllocationRow, crop *domain.CropDefinition, odds domain.QualityProbabilityRow, hasTiller, hasArtisan bool) domain.RowResult {
	if crop == nil || !row.IsActive() {
		return domain.RowResult{}
	}

	seedCost := float64(row.SeedCount) * crop.SeedCost
	unitPrice := ExpectedUnitPrice(crop, odds, hasTiller)

	revenue := float64(clamp(row.Sold)) * unitPrice
	revenue += ChannelRevenue(crop, domain.ChannelJarred, row.Jarred, hasArtisan)
	revenue += ChannelRevenue(crop, domain.ChannelKegged, row.Kegged, hasArtisan)
	revenue += ChannelRevenue(crop, domain.ChannelAged, row.Aged, hasArtisan)

	return domain.RowResult{
		Revenue:  revenue,
		SeedCost: seedCost,
		Profit:   revenue - seedCost,
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
