package domain

import "strings"

// Season is the growing season a crop belongs to
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every season in calendar order
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// ParseSeason accepts any casing of a season name ("Spring", "FALL", "winter")
func ParseSeason(s string) (Season, bool) {
	season := Season(strings.ToLower(strings.TrimSpace(s)))
	switch season {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return season, true
	}
	return "", false
}

// HarvestKind describes how many harvests a single seed yields
type HarvestKind string

const (
	HarvestSingle HarvestKind = "single"
	HarvestMulti  HarvestKind = "multi"
)

// QualityTier is the quality of a raw harvested crop
type QualityTier string

const (
	QualityBase   QualityTier = "base"
	QualitySilver QualityTier = "silver"
	QualityGold   QualityTier = "gold"
)

// QualityTiers lists tiers from lowest to highest
var QualityTiers = []QualityTier{QualityBase, QualitySilver, QualityGold}

// TierPrices holds a per-unit price for each quality tier
type TierPrices struct {
	Base   float64 `json:"base"`
	Silver float64 `json:"silver"`
	Gold   float64 `json:"gold"`
}

// Price returns the price for a tier
func (p TierPrices) Price(tier QualityTier) float64 {
	switch tier {
	case QualitySilver:
		return p.Silver
	case QualityGold:
		return p.Gold
	default:
		return p.Base
	}
}

// ProductPrice is the unit price of a processed product, with and without the Artisan profession.
// A product whose Base is not positive does not exist for the crop.
type ProductPrice struct {
	Base    float64 `json:"base"`
	Artisan float64 `json:"artisan"`
}

// Available reports whether the product can be made from the crop
func (p ProductPrice) Available() bool {
	return p.Base > 0
}

// CropDefinition is one entry of the crop catalog. Immutable once loaded.
type CropDefinition struct {
	Name            string       `json:"name"`
	Season          Season       `json:"season"`
	HarvestKind     HarvestKind  `json:"harvest_kind"`
	HarvestsPerSeed float64      `json:"harvests_per_seed,omitempty"`
	SeedCost        float64      `json:"seed_cost"`
	Prices          TierPrices   `json:"prices"`
	TillerPrices    TierPrices   `json:"tiller_prices"`
	Jar             ProductPrice `json:"jar"`
	Keg             ProductPrice `json:"keg"`
	Aged            ProductPrice `json:"aged"`
}

// IsMulti reports whether one seed produces several harvests in a season
func (c *CropDefinition) IsMulti() bool {
	return c.HarvestKind == HarvestMulti
}

// Product returns the processed-product price backing a channel.
// The sold channel has no product and always reports false.
func (c *CropDefinition) Product(ch Channel) (ProductPrice, bool) {
	switch ch {
	case ChannelJarred:
		return c.Jar, true
	case ChannelKegged:
		return c.Keg, true
	case ChannelAged:
		return c.Aged, true
	}
	return ProductPrice{}, false
}

// ChannelAvailable reports whether harvested units may be allocated to ch
func (c *CropDefinition) ChannelAvailable(ch Channel) bool {
	if ch == ChannelSold {
		return true
	}
	product, ok := c.Product(ch)
	return ok && product.Available()
}

// AvailableChannels lists the channels the crop supports, in channel order
func (c *CropDefinition) AvailableChannels() []Channel {
	out := make([]Channel, 0, len(Channels))
	for _, ch := range Channels {
		if c.ChannelAvailable(ch) {
			out = append(out, ch)
		}
	}
	return out
}

// QualityProbabilityRow gives the chance, in percent, of each quality tier at a skill level
type QualityProbabilityRow struct {
	SkillLevel int     `json:"skill_level"`
	Base       float64 `json:"base"`
	Silver     float64 `json:"silver"`
	Gold       float64 `json:"gold"`
}

// Percent returns the chance of a tier in percent
func (r QualityProbabilityRow) Percent(tier QualityTier) float64 {
	switch tier {
	case QualitySilver:
		return r.Silver
	case QualityGold:
		return r.Gold
	default:
		return r.Base
	}
}

// Total is the sum of the three percentages; 100 for well-formed data
func (r QualityProbabilityRow) Total() float64 {
	return r.Base + r.Silver + r.Gold
}
