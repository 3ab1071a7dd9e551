package pricing

import "github.com/osse101/CropCalc_Go/internal/domain"

// Quote collects the per-unit figures for a crop: harvest size, expected raw price and
// the unit price of every available channel.
func Quote(crop *domain.CropDefinition, seedCount int, odds domain.QualityProbabilityRow, hasTiller, hasArtisan bool) domain.CropQuote {
	if crop == nil {
		return domain.CropQuote{}
	}
	unit := ExpectedUnitPrice(crop, odds, hasTiller)
	channelPrices := make(map[domain.Channel]float64, len(domain.Channels))
	for _, ch := range crop.AvailableChannels() {
		if ch == domain.ChannelSold {
			channelPrices[ch] = unit
			continue
		}
		channelPrices[ch] = ProductUnitPrice(crop, ch, hasArtisan)
	}

	return domain.CropQuote{
		Crop:          crop.Name,
		Season:        crop.Season,
		SeedCount:     clamp(seedCount),
		HarvestTotal:  HarvestTotal(crop, seedCount),
		UnitPrice:     unit,
		ChannelPrices: channelPrices,
	}
}
