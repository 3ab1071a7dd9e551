package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and maps its error to a status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	resp := ErrorResponse{Error: msg}
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		resp.Suggestions = notFound.Suggestions
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrRowNotFound):
		return http.StatusNotFound, ErrMsgRowNotFoundError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrSkillLevelNotFound):
		return http.StatusBadRequest, ErrMsgSkillLevelError
	case errors.Is(err, domain.ErrInvalidSeason):
		return http.StatusBadRequest, ErrMsgInvalidSeasonError
	case errors.Is(err, domain.ErrInvalidChannel):
		return http.StatusBadRequest, ErrMsgInvalidChannelError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrLastRow):
		return http.StatusConflict, ErrMsgLastRowError
	case errors.Is(err, domain.ErrRowLimitReached):
		return http.StatusConflict, ErrMsgRowLimitError
	case errors.Is(err, domain.ErrNoActiveRows):
		return http.StatusConflict, ErrMsgNoActiveRowsError
	case errors.Is(err, domain.ErrDistributionClosed):
		return http.StatusConflict, ErrMsgDistributionClosedError
	case errors.Is(err, domain.ErrNoCropSelected):
		return http.StatusConflict, ErrMsgNoCropSelectedError
	case errors.Is(err, domain.ErrAllocationInvalid):
		return http.StatusUnprocessableEntity, ErrMsgAllocationInvalidError
	case errors.Is(err, domain.ErrChannelUnavailable):
		return http.StatusUnprocessableEntity, ErrMsgChannelUnavailableError
	case errors.Is(err, domain.ErrReferenceNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
