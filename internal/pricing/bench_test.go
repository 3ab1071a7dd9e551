package pricing

import (
	"testing"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

func BenchmarkRowProfit(b *testing.B) {
	crop := blueberry()
	row := domain.AllocationRow{
		CropName:   "Blueberry",
		SeedCount:  40,
		Allocation: domain.Allocation{Sold: 30, Jarred: 30, Kegged: 30, Aged: 30},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RowProfit(row, crop, level1Odds, true, true)
	}
}

func BenchmarkQuote(b *testing.B) {
	crop := blueberry()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Quote(crop, 40, level1Odds, true, true)
	}
}
