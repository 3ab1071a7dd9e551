package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// parseCrops reads the upstream crop export. Product cells are loosely typed
// ("-", "N/A", 0 or missing all mean unsupported), so fields are read with gjson
// rather than a fixed struct.
func parseCrops(data []byte, source string) ([]domain.CropDefinition, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: "+ErrMsgNotJSONArray, ErrInvalidReferenceData, source)
	}

	var (
		crops    []domain.CropDefinition
		parseErr error
	)
	root.ForEach(func(idx, v gjson.Result) bool {
		name := strings.TrimSpace(v.Get(keyCrop).String())
		if name == "" {
			parseErr = fmt.Errorf(ErrFmtCropEmptyName, ErrInvalidReferenceData, idx.Int())
			return false
		}
		rawSeason := v.Get(keySeason).String()
		season, ok := domain.ParseSeason(rawSeason)
		if !ok {
			parseErr = fmt.Errorf(ErrFmtCropBadSeason, ErrInvalidReferenceData, name, rawSeason)
			return false
		}

		crop := domain.CropDefinition{
			Name:        name,
			Season:      season,
			HarvestKind: domain.HarvestSingle,
			SeedCost:    v.Get(keySeed).Float(),
			Prices: domain.TierPrices{
				Base:   v.Get(keyBase).Float(),
				Silver: v.Get(keySilver).Float(),
				Gold:   v.Get(keyGold).Float(),
			},
			TillerPrices: domain.TierPrices{
				Base:   v.Get(keyTillerBase).Float(),
				Silver: v.Get(keyTillerSilver).Float(),
				Gold:   v.Get(keyTillerGold).Float(),
			},
			Jar:  productPrice(v, keyJar, keyArtisanJar),
			Keg:  productPrice(v, keyKeg, keyArtisanKeg),
			Aged: productPrice(v, keyAged, keyArtisanAged),
		}
		if v.Get(keyType).String() == typeMulti {
			crop.HarvestKind = domain.HarvestMulti
			crop.HarvestsPerSeed = v.Get(keyPerSeason).Float()
		}

		crops = append(crops, crop)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return crops, nil
}

// productPrice keeps only numeric cells; anything else prices the product at 0 (unsupported)
func productPrice(v gjson.Result, baseKey, artisanKey string) domain.ProductPrice {
	return domain.ProductPrice{
		Base:    numericCell(v.Get(baseKey)),
		Artisan: numericCell(v.Get(artisanKey)),
	}
}

func numericCell(r gjson.Result) float64 {
	if r.Type != gjson.Number {
		return 0
	}
	return r.Float()
}

// parseProbabilities reads the quality table; percentages arrive as numbers or "60%" strings
func parseProbabilities(data []byte, source string) ([]domain.QualityProbabilityRow, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: "+ErrMsgNotJSONArray, ErrInvalidReferenceData, source)
	}

	var (
		rows     []domain.QualityProbabilityRow
		parseErr error
	)
	root.ForEach(func(idx, v gjson.Result) bool {
		base, okBase := parsePercent(v.Get(keyBase))
		silver, okSilver := parsePercent(v.Get(keySilver))
		gold, okGold := parsePercent(v.Get(keyGold))
		if !okBase || !okSilver || !okGold {
			parseErr = fmt.Errorf(ErrFmtProbabilityBadRow, ErrInvalidReferenceData, idx.Int())
			return false
		}

		rows = append(rows, domain.QualityProbabilityRow{
			SkillLevel: int(v.Get(keyFarmingLevel).Int()),
			Base:       base,
			Silver:     silver,
			Gold:       gold,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}

func parsePercent(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Float(), true
	case gjson.String:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.String()), "%"))
		pct, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return pct, true
	default:
		return 0, false
	}
}
