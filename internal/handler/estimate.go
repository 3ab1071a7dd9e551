package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CropCalc_Go/internal/allocation"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/session"
)

// EstimateRowRequest is one crop line of a stateless estimate
type EstimateRowRequest struct {
	CropName  string `json:"crop_name" validate:"max=64"`
	SeedCount int    `json:"seed_count" validate:"lte=100000"`
	Sold      int    `json:"sold" validate:"lte=10000000"`
	Jarred    int    `json:"jarred" validate:"lte=10000000"`
	Kegged    int    `json:"kegged" validate:"lte=10000000"`
	Aged      int    `json:"aged" validate:"lte=10000000"`
}

// EstimateRequest is a whole estimator state submitted in one call
type EstimateRequest struct {
	SkillLevel int                  `json:"skill_level" validate:"gte=0,lte=100"`
	Season     string               `json:"season" validate:"required,season"`
	HasTiller  bool                 `json:"has_tiller"`
	HasArtisan bool                 `json:"has_artisan"`
	Rows       []EstimateRowRequest `json:"rows" validate:"required,min=1,max=64,dive"`
}

// toState clamps negative inputs and channels the crop cannot use, then builds the state
func (req EstimateRequest) toState(data *catalog.ReferenceData) *domain.SessionState {
	season, _ := domain.ParseSeason(req.Season)
	state := &domain.SessionState{
		SkillLevel:          req.SkillLevel,
		Season:              season,
		HasTiller:           req.HasTiller,
		HasArtisan:          req.HasArtisan,
		DistributionVisible: true,
		Rows:                make([]domain.AllocationRow, 0, len(req.Rows)),
	}

	for i, in := range req.Rows {
		row := domain.AllocationRow{
			ID:        fmt.Sprintf("row-%d", i+1),
			CropName:  in.CropName,
			SeedCount: in.SeedCount,
			Allocation: domain.Allocation{
				Sold: in.Sold, Jarred: in.Jarred, Kegged: in.Kegged, Aged: in.Aged,
			},
		}
		if row.SeedCount < 0 {
			row.SeedCount = 0
		}
		crop, _ := data.Find(row.CropName, season)
		if crop != nil {
			row.CropName = crop.Name
		}
		row.Allocation = allocation.ClampAllocation(row.Allocation, crop)
		state.Rows = append(state.Rows, row)
	}
	return state
}

// HandleEstimate prices a complete state without creating a session
// @Summary Stateless estimate
// @Description Prices every row and reports rows that allocate more than they harvest
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Estimator inputs"
// @Success 200 {object} session.Report
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/estimate [post]
func HandleEstimate(data *catalog.ReferenceData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EstimateRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpEstimate); err != nil {
			return
		}

		report, err := session.Evaluate(data, req.toState(data))
		if err != nil {
			respondServiceError(w, r, OpEstimate, err)
			return
		}

		logger.FromContext(r.Context()).Info(OpEstimate,
			"rows", len(report.Totals.Breakdown),
			"valid", report.Valid,
			"profit", report.Totals.TotalProfit)
		respondJSON(w, http.StatusOK, report)
	}
}
