package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CropCalc_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written.
//
//	var req SeedCountRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpSetSeedCount); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(actionName + " " + LogMsgRequestDecoded)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntQueryParam parses an optional integer query parameter.
// On a malformed value it writes a 400 and returns false.
func getIntQueryParam(w http.ResponseWriter, r *http.Request, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return n, true
}

// getBoolQueryParam parses an optional boolean query parameter
func getBoolQueryParam(w http.ResponseWriter, r *http.Request, paramName string) (bool, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return false, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return false, false
	}
	return b, true
}

// sessionParams reads the session id from the URL and tags the request context with it
func sessionParams(w http.ResponseWriter, r *http.Request) (context.Context, string, bool) {
	id := chi.URLParam(r, URLParamSessionID)
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingURLParam, URLParamSessionID))
		return nil, "", false
	}
	return logger.WithSessionID(r.Context(), id), id, true
}
