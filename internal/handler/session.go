package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/session"
)

// SettingsRequest changes session settings; omitted fields are left alone
type SettingsRequest struct {
	SkillLevel *int    `json:"skill_level,omitempty" validate:"omitempty,gte=0,lte=100"`
	Season     *string `json:"season,omitempty" validate:"omitempty,season"`
	HasTiller  *bool   `json:"has_tiller,omitempty"`
	HasArtisan *bool   `json:"has_artisan,omitempty"`
}

func (req SettingsRequest) toUpdate() session.SettingsUpdate {
	update := session.SettingsUpdate{
		SkillLevel: req.SkillLevel,
		HasTiller:  req.HasTiller,
		HasArtisan: req.HasArtisan,
	}
	if req.Season != nil {
		season, _ := domain.ParseSeason(*req.Season)
		update.Season = &season
	}
	return update
}

// SelectCropRequest picks the crop of a row; an empty name clears it
type SelectCropRequest struct {
	CropName string `json:"crop_name" validate:"max=64"`
}

// SeedCountRequest sets a row's seed count; negative values become zero
type SeedCountRequest struct {
	SeedCount int `json:"seed_count" validate:"lte=100000"`
}

// ChannelQuantityRequest sets one channel of a row; negative values become zero
type ChannelQuantityRequest struct {
	Quantity int `json:"quantity" validate:"lte=10000000"`
}

// sessionAction runs a service call that returns the updated state
func sessionAction(w http.ResponseWriter, r *http.Request, opName string, status int, call func(r *http.Request, id string) (*domain.SessionState, error)) {
	ctx, id, ok := sessionParams(w, r)
	if !ok {
		return
	}
	r = r.WithContext(ctx)

	state, err := call(r, id)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	logger.FromContext(ctx).Debug(opName, "rows", len(state.Rows))
	respondJSON(w, status, state)
}

func rowParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	rowID := chi.URLParam(r, URLParamRowID)
	if rowID == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingURLParam, URLParamRowID))
		return "", false
	}
	return rowID, true
}

// HandleCreateSession starts a new estimator session
// @Summary Create session
// @Description Level 1, spring, no professions, one empty row
// @Tags sessions
// @Produce json
// @Success 201 {object} domain.SessionState
// @Router /api/v1/sessions [post]
func HandleCreateSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Create(r.Context())
		if err != nil {
			respondServiceError(w, r, OpCreateSession, err)
			return
		}
		respondJSON(w, http.StatusCreated, state)
	}
}

// HandleGetSession returns a session
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func HandleGetSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionAction(w, r, OpGetSession, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.Get(r.Context(), id)
		})
	}
}

// HandleUpdateSettings changes skill level, season or professions
// @Summary Update settings
// @Description Changing the season clears every row
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SettingsRequest true "Settings"
// @Success 200 {object} domain.SessionState
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/settings [patch]
func HandleUpdateSettings(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUpdateSettings); err != nil {
			return
		}
		sessionAction(w, r, OpUpdateSettings, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.UpdateSettings(r.Context(), id, req.toUpdate())
		})
	}
}

// HandleAddRow appends an empty row
// @Summary Add row
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} domain.SessionState
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/rows [post]
func HandleAddRow(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionAction(w, r, OpAddRow, http.StatusCreated, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.AddRow(r.Context(), id)
		})
	}
}

// HandleRemoveRow deletes a row
// @Summary Remove row
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Success 200 {object} domain.SessionState
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/rows/{rowID} [delete]
func HandleRemoveRow(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rowID, ok := rowParam(w, r)
		if !ok {
			return
		}
		sessionAction(w, r, OpRemoveRow, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.RemoveRow(r.Context(), id, rowID)
		})
	}
}

// HandleSelectCrop sets the crop of a row
// @Summary Select crop
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param request body SelectCropRequest true "Crop"
// @Success 200 {object} domain.SessionState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/rows/{rowID}/crop [put]
func HandleSelectCrop(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rowID, ok := rowParam(w, r)
		if !ok {
			return
		}
		var req SelectCropRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSelectCrop); err != nil {
			return
		}
		sessionAction(w, r, OpSelectCrop, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.SelectCrop(r.Context(), id, rowID, req.CropName)
		})
	}
}

// HandleSetSeedCount sets a row's seed count
// @Summary Set seed count
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param request body SeedCountRequest true "Seeds"
// @Success 200 {object} domain.SessionState
// @Router /api/v1/sessions/{id}/rows/{rowID}/seeds [put]
func HandleSetSeedCount(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rowID, ok := rowParam(w, r)
		if !ok {
			return
		}
		var req SeedCountRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSetSeedCount); err != nil {
			return
		}
		sessionAction(w, r, OpSetSeedCount, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.SetSeedCount(r.Context(), id, rowID, req.SeedCount)
		})
	}
}

// HandleEditChannel sets one channel of a row, reconciling it against the harvest
// @Summary Edit channel
// @Description Over-allocation reduces the edited channel and reports the correction
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rowID path string true "Row ID"
// @Param channel path string true "sold, jarred, kegged or aged"
// @Param request body ChannelQuantityRequest true "Quantity"
// @Success 200 {object} session.EditResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/rows/{rowID}/channels/{channel} [put]
func HandleEditChannel(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rowID, ok := rowParam(w, r)
		if !ok {
			return
		}
		rawChannel := chi.URLParam(r, URLParamChannel)
		ch, ok := domain.ParseChannel(rawChannel)
		if !ok {
			respondServiceError(w, r, OpEditChannel, fmt.Errorf("%w: '%s'", domain.ErrInvalidChannel, rawChannel))
			return
		}
		var req ChannelQuantityRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpEditChannel); err != nil {
			return
		}

		ctx, id, ok := sessionParams(w, r)
		if !ok {
			return
		}
		r = r.WithContext(ctx)

		result, err := svc.EditChannel(ctx, id, rowID, ch, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpEditChannel, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleOpenDistribution reveals the allocation step
// @Summary Open distribution
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionState
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/distribution [post]
func HandleOpenDistribution(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionAction(w, r, OpOpenDistribution, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.OpenDistribution(r.Context(), id)
		})
	}
}

// HandleCalculate prices the session
// @Summary Calculate
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Totals
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/calculate [post]
func HandleCalculate(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id, ok := sessionParams(w, r)
		if !ok {
			return
		}
		r = r.WithContext(ctx)

		totals, err := svc.Calculate(ctx, id)
		if err != nil {
			respondServiceError(w, r, OpCalculate, err)
			return
		}
		respondJSON(w, http.StatusOK, totals)
	}
}

// HandleResetSession returns a session to its defaults
// @Summary Reset session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionState
// @Router /api/v1/sessions/{id}/reset [post]
func HandleResetSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionAction(w, r, OpResetSession, http.StatusOK, func(r *http.Request, id string) (*domain.SessionState, error) {
			return svc.Reset(r.Context(), id)
		})
	}
}
