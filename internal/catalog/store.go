package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// ErrInvalidReferenceData is returned when the crop catalog or probability table is malformed
var ErrInvalidReferenceData = errors.New("invalid reference data")

type cropKey struct {
	name   string
	season domain.Season
}

func keyFor(name string, season domain.Season) cropKey {
	return cropKey{name: strings.ToLower(strings.TrimSpace(name)), season: season}
}

// ReferenceData is the read-only crop catalog and quality table.
// It is safe for concurrent use because nothing mutates it after construction.
type ReferenceData struct {
	crops    []domain.CropDefinition
	byKey    map[cropKey]*domain.CropDefinition
	bySeason map[domain.Season][]*domain.CropDefinition
	odds     map[int]domain.QualityProbabilityRow
	levels   []int

	fingerprint string
}

// NewReferenceData validates and indexes already-parsed reference data
func NewReferenceData(crops []domain.CropDefinition, rows []domain.QualityProbabilityRow) (*ReferenceData, error) {
	if len(crops) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReferenceData, ErrMsgNoCrops)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReferenceData, ErrMsgNoProbabilities)
	}

	ref := &ReferenceData{
		crops:    make([]domain.CropDefinition, len(crops)),
		byKey:    make(map[cropKey]*domain.CropDefinition, len(crops)),
		bySeason: make(map[domain.Season][]*domain.CropDefinition, len(domain.Seasons)),
		odds:     make(map[int]domain.QualityProbabilityRow, len(rows)),
	}
	copy(ref.crops, crops)

	for i := range ref.crops {
		crop := &ref.crops[i]
		if err := validateCrop(i, crop); err != nil {
			return nil, err
		}
		key := keyFor(crop.Name, crop.Season)
		if _, exists := ref.byKey[key]; exists {
			return nil, fmt.Errorf(ErrFmtCropDuplicate, ErrInvalidReferenceData, crop.Name, crop.Season)
		}
		ref.byKey[key] = crop
		ref.bySeason[crop.Season] = append(ref.bySeason[crop.Season], crop)
	}

	for _, row := range rows {
		if row.SkillLevel < 0 {
			return nil, fmt.Errorf(ErrFmtProbabilityNegLvl, ErrInvalidReferenceData, row.SkillLevel)
		}
		if _, exists := ref.odds[row.SkillLevel]; exists {
			return nil, fmt.Errorf(ErrFmtProbabilityDupe, ErrInvalidReferenceData, row.SkillLevel)
		}
		ref.odds[row.SkillLevel] = row
		ref.levels = append(ref.levels, row.SkillLevel)
	}
	sort.Ints(ref.levels)

	return ref, nil
}

func validateCrop(idx int, crop *domain.CropDefinition) error {
	if strings.TrimSpace(crop.Name) == "" {
		return fmt.Errorf(ErrFmtCropEmptyName, ErrInvalidReferenceData, idx)
	}
	if _, ok := domain.ParseSeason(string(crop.Season)); !ok {
		return fmt.Errorf(ErrFmtCropBadSeason, ErrInvalidReferenceData, crop.Name, crop.Season)
	}
	if crop.SeedCost < 0 {
		return fmt.Errorf(ErrFmtCropNegativeSeed, ErrInvalidReferenceData, crop.Name)
	}
	if crop.IsMulti() && crop.HarvestsPerSeed <= 0 {
		return fmt.Errorf(ErrFmtCropBadPerSeason, ErrInvalidReferenceData, crop.Name)
	}
	return nil
}

// CheckProbabilities reports the first row whose percentages do not add up to 100
func (r *ReferenceData) CheckProbabilities() error {
	for _, level := range r.levels {
		total := r.odds[level].Total()
		if math.Abs(total-100) > probabilityTolerance {
			return fmt.Errorf(ErrFmtProbabilityBadSum, ErrInvalidReferenceData, level, total)
		}
	}
	return nil
}

// Find resolves a crop by name (case-insensitive) within a season
func (r *ReferenceData) Find(name string, season domain.Season) (*domain.CropDefinition, bool) {
	if r == nil {
		return nil, false
	}
	crop, ok := r.byKey[keyFor(name, season)]
	return crop, ok
}

// CropsForSeason returns the season's crops in catalog order
func (r *ReferenceData) CropsForSeason(season domain.Season) []domain.CropDefinition {
	if r == nil {
		return nil
	}
	list := r.bySeason[season]
	out := make([]domain.CropDefinition, len(list))
	for i, crop := range list {
		out[i] = *crop
	}
	return out
}

// SeasonCropCount is the number of distinct crops offered in a season
func (r *ReferenceData) SeasonCropCount(season domain.Season) int {
	if r == nil {
		return 0
	}
	return len(r.bySeason[season])
}

// Crops returns a copy of the full catalog
func (r *ReferenceData) Crops() []domain.CropDefinition {
	if r == nil {
		return nil
	}
	out := make([]domain.CropDefinition, len(r.crops))
	copy(out, r.crops)
	return out
}

// ProbabilityRow returns the quality odds for a skill level
func (r *ReferenceData) ProbabilityRow(level int) (*domain.QualityProbabilityRow, bool) {
	if r == nil {
		return nil, false
	}
	row, ok := r.odds[level]
	if !ok {
		return nil, false
	}
	return &row, true
}

// ProbabilityRows returns every row ordered by skill level
func (r *ReferenceData) ProbabilityRows() []domain.QualityProbabilityRow {
	if r == nil {
		return nil
	}
	out := make([]domain.QualityProbabilityRow, 0, len(r.levels))
	for _, level := range r.levels {
		out = append(out, r.odds[level])
	}
	return out
}

// SkillRange is the lowest and highest skill level with odds
func (r *ReferenceData) SkillRange() (minLevel, maxLevel int) {
	if r == nil || len(r.levels) == 0 {
		return 0, 0
	}
	return r.levels[0], r.levels[len(r.levels)-1]
}

// Fingerprint identifies the source files the data was loaded from; empty when built in memory
func (r *ReferenceData) Fingerprint() string {
	if r == nil {
		return ""
	}
	return r.fingerprint
}
