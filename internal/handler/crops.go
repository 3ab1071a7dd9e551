package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/pricing"
)

// CropSummary is a catalog entry plus the channels it supports
type CropSummary struct {
	domain.CropDefinition
	Channels []domain.Channel `json:"channels"`
}

// CropListResponse lists the crops of one season, or all crops
type CropListResponse struct {
	Season domain.Season `json:"season,omitempty"`
	Crops  []CropSummary `json:"crops"`
}

// HandleListCrops lists the catalog in file order
// @Summary List crops
// @Description Lists every crop, or only those of ?season=
// @Tags catalog
// @Produce json
// @Param season query string false "spring, summer, fall or winter"
// @Success 200 {object} CropListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crops [get]
func HandleListCrops(data *catalog.ReferenceData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			season domain.Season
			crops  []domain.CropDefinition
		)
		if raw := r.URL.Query().Get(QueryParamSeason); raw != "" {
			parsed, ok := domain.ParseSeason(raw)
			if !ok {
				respondServiceError(w, r, OpListCrops, fmt.Errorf("%w: '%s'", domain.ErrInvalidSeason, raw))
				return
			}
			season = parsed
			crops = data.CropsForSeason(season)
		} else {
			crops = data.Crops()
		}

		resp := CropListResponse{Season: season, Crops: make([]CropSummary, 0, len(crops))}
		for i := range crops {
			resp.Crops = append(resp.Crops, CropSummary{
				CropDefinition: crops[i],
				Channels:       crops[i].AvailableChannels(),
			})
		}

		logger.FromContext(r.Context()).Debug(OpListCrops, "season", season, "count", len(resp.Crops))
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetCropQuote prices one crop for a seed count and skill level
// @Summary Quote a crop
// @Description Harvest total, expected raw unit price and per-channel unit prices
// @Tags catalog
// @Produce json
// @Param season path string true "Season"
// @Param name path string true "Crop name"
// @Param seeds query int false "Seed count" default(1)
// @Param level query int false "Farming level" default(1)
// @Param tiller query bool false "Tiller profession"
// @Param artisan query bool false "Artisan profession"
// @Success 200 {object} domain.CropQuote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/crops/{season}/{name}/quote [get]
func HandleGetCropQuote(data *catalog.ReferenceData) http.HandlerFunc {
	resolver := catalog.NewResolver(data)
	return func(w http.ResponseWriter, r *http.Request) {
		rawSeason := chi.URLParam(r, URLParamSeason)
		season, ok := domain.ParseSeason(rawSeason)
		if !ok {
			respondServiceError(w, r, OpQuoteCrop, fmt.Errorf("%w: '%s'", domain.ErrInvalidSeason, rawSeason))
			return
		}

		seeds, ok := getIntQueryParam(w, r, QueryParamSeeds, 1)
		if !ok {
			return
		}
		if seeds < 0 || seeds > domain.MaxSeedCount {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamSeeds))
			return
		}
		level, ok := getIntQueryParam(w, r, QueryParamLevel, domain.DefaultSkillLevel)
		if !ok {
			return
		}
		tiller, ok := getBoolQueryParam(w, r, QueryParamTiller)
		if !ok {
			return
		}
		artisan, ok := getBoolQueryParam(w, r, QueryParamArtisan)
		if !ok {
			return
		}

		crop, err := resolver.Resolve(chi.URLParam(r, URLParamName), season)
		if err != nil {
			respondServiceError(w, r, OpQuoteCrop, err)
			return
		}
		odds, found := data.ProbabilityRow(level)
		if !found {
			respondServiceError(w, r, OpQuoteCrop, fmt.Errorf("%w: %d", domain.ErrSkillLevelNotFound, level))
			return
		}

		respondJSON(w, http.StatusOK, pricing.Quote(crop, seeds, *odds, tiller, artisan))
	}
}

// ProbabilityTableResponse is the full quality odds table
type ProbabilityTableResponse struct {
	MinLevel int                            `json:"min_level"`
	MaxLevel int                            `json:"max_level"`
	Rows     []domain.QualityProbabilityRow `json:"rows"`
}

// HandleListProbabilities returns the quality odds for every skill level
// @Summary Quality odds table
// @Tags catalog
// @Produce json
// @Success 200 {object} ProbabilityTableResponse
// @Router /api/v1/probabilities [get]
func HandleListProbabilities(data *catalog.ReferenceData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minLevel, maxLevel := data.SkillRange()
		respondJSON(w, http.StatusOK, ProbabilityTableResponse{
			MinLevel: minLevel,
			MaxLevel: maxLevel,
			Rows:     data.ProbabilityRows(),
		})
	}
}

// HandleGetProbability returns the quality odds for one skill level
// @Summary Quality odds for a level
// @Tags catalog
// @Produce json
// @Param level path int true "Farming level"
// @Success 200 {object} domain.QualityProbabilityRow
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/probabilities/{level} [get]
func HandleGetProbability(data *catalog.ReferenceData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, URLParamLevel)
		level, err := strconv.Atoi(raw)
		if err != nil {
			respondServiceError(w, r, OpGetOdds, fmt.Errorf("%w: level '%s'", domain.ErrInvalidInput, raw))
			return
		}
		row, ok := data.ProbabilityRow(level)
		if !ok {
			respondServiceError(w, r, OpGetOdds, fmt.Errorf("%w: %d", domain.ErrSkillLevelNotFound, level))
			return
		}
		respondJSON(w, http.StatusOK, row)
	}
}
