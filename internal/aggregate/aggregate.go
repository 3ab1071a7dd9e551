// Package aggregate sums priced allocation rows into estimate totals.
package aggregate

import (
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/pricing"
)

// CropLookup resolves a crop by name within a season
type CropLookup interface {
	Find(name string, season domain.Season) (*domain.CropDefinition, bool)
}

// Aggregate prices every active row in stored order and sums the results.
// Rows that cannot be priced are recorded in Totals.Skipped and contribute nothing;
// a nil odds row skips every active row.
func Aggregate(rows []domain.AllocationRow, lookup CropLookup, season domain.Season, odds *domain.QualityProbabilityRow, hasTiller, hasArtisan bool) domain.Totals {
	totals := domain.Totals{Breakdown: []domain.RowBreakdown{}}

	for _, row := range rows {
		if !row.IsActive() {
			continue
		}
		if odds == nil {
			totals.Skipped = append(totals.Skipped, skipped(row, domain.SkipReasonMissingOdds))
			continue
		}

		var crop *domain.CropDefinition
		if lookup != nil {
			crop, _ = lookup.Find(row.CropName, season)
		}
		if crop == nil {
			totals.Skipped = append(totals.Skipped, skipped(row, domain.SkipReasonUnknownCrop))
			continue
		}

		result := pricing.RowProfit(row, crop, *odds, hasTiller, hasArtisan)
		totals.TotalRevenue += result.Revenue
		totals.TotalSeedCost += result.SeedCost
		totals.TotalProfit += result.Profit

		totals.Breakdown = append(totals.Breakdown, domain.RowBreakdown{
			RowID:        row.ID,
			CropName:     crop.Name,
			SeedCount:    row.SeedCount,
			HarvestTotal: pricing.HarvestTotal(crop, row.SeedCount),
			UnitPrice:    pricing.ExpectedUnitPrice(crop, *odds, hasTiller),
			Distribution: row.Allocation,
			RowResult:    result,
		})
	}

	return totals
}

func skipped(row domain.AllocationRow, reason string) domain.SkippedRow {
	return domain.SkippedRow{RowID: row.ID, CropName: row.CropName, Reason: reason}
}
