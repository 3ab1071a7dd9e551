package session

import (
	"fmt"

	"github.com/osse101/CropCalc_Go/internal/aggregate"
	"github.com/osse101/CropCalc_Go/internal/allocation"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/domain"
)

// RowCapacity is the capacity check of one active row
type RowCapacity struct {
	RowID    string `json:"row_id"`
	CropName string `json:"crop_name"`
	domain.CapacityResult
}

// Report is a one-shot estimate of a whole state, without a stored session
type Report struct {
	Totals   domain.Totals `json:"totals"`
	Capacity []RowCapacity `json:"capacity"`
	// Valid is false when any active row allocates more than it harvests
	Valid bool `json:"valid"`
}

// Evaluate prices a complete state. Over-capacity rows are still priced and reported
// in Capacity with Valid false; unknown crops land in Totals.Skipped.
func Evaluate(data *catalog.ReferenceData, state *domain.SessionState) (*Report, error) {
	if data == nil {
		return nil, domain.ErrReferenceNotLoaded
	}
	if state == nil {
		return nil, domain.ErrInvalidInput
	}
	odds, ok := data.ProbabilityRow(state.SkillLevel)
	if !ok {
		return nil, fmt.Errorf(ErrFmtSkillLevel, domain.ErrSkillLevelNotFound, state.SkillLevel)
	}

	report := &Report{Capacity: []RowCapacity{}, Valid: true}
	for _, row := range state.Rows {
		if !row.IsActive() {
			continue
		}
		crop, found := data.Find(row.CropName, state.Season)
		if !found {
			continue
		}
		res := allocation.ValidateCapacity(row, crop)
		if !res.OK {
			report.Valid = false
		}
		report.Capacity = append(report.Capacity, RowCapacity{
			RowID:          row.ID,
			CropName:       crop.Name,
			CapacityResult: res,
		})
	}

	report.Totals = aggregate.Aggregate(state.Rows, data, state.Season, odds, state.HasTiller, state.HasArtisan)
	return report, nil
}
