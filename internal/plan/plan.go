// Package plan reads estimate plans from YAML files and turns them into session state.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CropCalc_Go/internal/allocation"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/domain"
)

// Error format strings
const (
	errFmtReadPlan       = "failed to read plan %s: %w"
	errFmtParsePlan      = "failed to parse plan: %w"
	errFmtSeason         = "%w: '%s'"
	errFmtRowCount       = "%w: plan has %d rows, at most %d allowed"
	errFmtRowSeeds       = "%w: row %d seeds must be between 0 and %d"
	errFmtRowQuantity    = "%w: row %d %s must be between 0 and %d"
	errFmtRowCrop        = "row %d: %w"
	errFmtRowNoCrop      = "%w: row %d has no crop"
	errFmtRowUnavailable = "%w: row %d %s for %s"
)

// Row is one crop line of a plan
type Row struct {
	Crop   string `yaml:"crop"`
	Seeds  int    `yaml:"seeds"`
	Sold   int    `yaml:"sold,omitempty"`
	Jarred int    `yaml:"jarred,omitempty"`
	Kegged int    `yaml:"kegged,omitempty"`
	Aged   int    `yaml:"aged,omitempty"`
}

func (r Row) allocation() domain.Allocation {
	return domain.Allocation{Sold: r.Sold, Jarred: r.Jarred, Kegged: r.Kegged, Aged: r.Aged}
}

// Plan is a complete set of estimator inputs
type Plan struct {
	SkillLevel int    `yaml:"skill_level"`
	Season     string `yaml:"season"`
	Tiller     bool   `yaml:"tiller"`
	Artisan    bool   `yaml:"artisan"`
	Rows       []Row  `yaml:"rows"`
}

// Load reads and validates a plan file
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(errFmtReadPlan, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a plan. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(errFmtParsePlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks ranges and the season name; crop names are checked by ToState
func (p *Plan) Validate() error {
	if _, ok := domain.ParseSeason(p.Season); !ok {
		return fmt.Errorf(errFmtSeason, domain.ErrInvalidSeason, p.Season)
	}
	if len(p.Rows) == 0 {
		return domain.ErrNoActiveRows
	}
	if len(p.Rows) > domain.MaxRowsPerState {
		return fmt.Errorf(errFmtRowCount, domain.ErrInvalidInput, len(p.Rows), domain.MaxRowsPerState)
	}
	for i, row := range p.Rows {
		n := i + 1
		if row.Crop == "" {
			return fmt.Errorf(errFmtRowNoCrop, domain.ErrNoCropSelected, n)
		}
		if row.Seeds < 0 || row.Seeds > domain.MaxSeedCount {
			return fmt.Errorf(errFmtRowSeeds, domain.ErrInvalidInput, n, domain.MaxSeedCount)
		}
		alloc := row.allocation()
		for _, ch := range domain.Channels {
			if q := alloc.Quantity(ch); q < 0 || q > domain.MaxQuantity {
				return fmt.Errorf(errFmtRowQuantity, domain.ErrInvalidInput, n, ch, domain.MaxQuantity)
			}
		}
	}
	return nil
}

// ToState resolves every crop in the plan's season and fills the channels in channel
// order, reconciling after each one the same way a session edit does. The corrections
// applied along the way are returned with the state.
func (p *Plan) ToState(resolver *catalog.Resolver) (*domain.SessionState, []domain.Correction, error) {
	season, ok := domain.ParseSeason(p.Season)
	if !ok {
		return nil, nil, fmt.Errorf(errFmtSeason, domain.ErrInvalidSeason, p.Season)
	}

	state := &domain.SessionState{
		ID:                  uuid.New().String(),
		SkillLevel:          p.SkillLevel,
		Season:              season,
		HasTiller:           p.Tiller,
		HasArtisan:          p.Artisan,
		DistributionVisible: true,
		Rows:                make([]domain.AllocationRow, 0, len(p.Rows)),
	}

	var corrections []domain.Correction
	for i, planned := range p.Rows {
		n := i + 1
		crop, err := resolver.Resolve(planned.Crop, season)
		if err != nil {
			return nil, nil, fmt.Errorf(errFmtRowCrop, n, err)
		}

		row := domain.AllocationRow{
			ID:        fmt.Sprintf("row-%d", n),
			CropName:  crop.Name,
			SeedCount: planned.Seeds,
		}
		want := planned.allocation()
		for _, ch := range domain.Channels {
			qty := want.Quantity(ch)
			if qty > 0 && !crop.ChannelAvailable(ch) {
				return nil, nil, fmt.Errorf(errFmtRowUnavailable, domain.ErrChannelUnavailable, n, ch, crop.Name)
			}
			row.Allocation = row.Allocation.With(ch, qty)
			var (
				corr    domain.Correction
				changed bool
			)
			row, corr, changed = allocation.ReconcileWithCorrection(row, crop, ch)
			if changed {
				corrections = append(corrections, corr)
			}
		}
		state.Rows = append(state.Rows, row)
	}
	return state, corrections, nil
}

// Example is a starter plan written by the CLI's -init flag
func Example() *Plan {
	return &Plan{
		SkillLevel: 1,
		Season:     string(domain.SeasonSpring),
		Rows: []Row{
			{Crop: "Parsnip", Seeds: 10, Sold: 10},
			{Crop: "Green Bean", Seeds: 4, Sold: 12, Kegged: 12},
		},
	}
}

// Encode writes the plan as YAML
func (p *Plan) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
