package handler

import (
	"net/http"

	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Crops       int    `json:"crops,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once reference data is loaded
// @Summary Readiness check
// @Description Returns OK if crop and probability data are loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(data *catalog.ReferenceData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data == nil || len(data.Crops()) == 0 {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgUnavailableError,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status:      HealthStatusOK,
			Crops:       len(data.Crops()),
			Fingerprint: data.Fingerprint(),
		})
	}
}
