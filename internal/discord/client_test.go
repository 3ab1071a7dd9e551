package discord

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/handler"
	"github.com/osse101/CropCalc_Go/internal/session"
)

func TestAPIClient_Retry(t *testing.T) {
	t.Run("retries server errors until success", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("/api/v1/probabilities/1", func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			WriteJSON(w, domain.QualityProbabilityRow{SkillLevel: 1, Base: 60, Silver: 25, Gold: 15})
		})

		row, err := ctx.APIClient.GetProbability(1)
		require.NoError(t, err)
		assert.Equal(t, 60.0, row.Base)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("/api/v1/probabilities/1", func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := ctx.APIClient.GetProbability(1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, int32(maxRetries+1), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		ctx := SetupTestContext(t)
		var calls atomic.Int32
		ctx.Mux.HandleFunc("/api/v1/probabilities/99", func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			WriteJSONStatus(w, http.StatusNotFound, handler.ErrorResponse{Error: handler.ErrMsgSkillLevelError})
		})

		_, err := ctx.APIClient.GetProbability(99)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, handler.ErrMsgSkillLevelError, apiErr.Message)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("unreachable server", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.Server.Close()

		_, err := ctx.APIClient.ListCrops("")
		assert.ErrorIs(t, err, ErrMaxRetries)
	})
}

func TestAPIClient_SendsAPIKey(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/crops", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get(apiKeyHeader))
		assert.Equal(t, "fall", r.URL.Query().Get("season"))
		WriteJSON(w, handler.CropListResponse{Season: domain.SeasonFall})
	})

	resp, err := ctx.APIClient.ListCrops("fall")
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonFall, resp.Season)
}

func TestAPIClient_ErrorWithoutBody(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/crops", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := ctx.APIClient.ListCrops("")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "status 401", apiErr.Message)
	assert.Equal(t, apiErrorPrefix+"status 401", err.Error())
}

func TestAPIClient_QuoteCrop(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /api/v1/crops/{season}/{name}/quote", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "summer", r.PathValue("season"))
		assert.Equal(t, "Hot Pepper", r.PathValue("name"))
		q := r.URL.Query()
		assert.Equal(t, "12", q.Get("seeds"))
		assert.Equal(t, "4", q.Get("level"))
		assert.Equal(t, "true", q.Get("tiller"))
		assert.Equal(t, "false", q.Get("artisan"))
		WriteJSON(w, domain.CropQuote{Crop: "Hot Pepper", Season: domain.SeasonSummer, HarvestTotal: 36})
	})

	quote, err := ctx.APIClient.QuoteCrop(QuoteRequest{
		Season: "summer", Crop: "Hot Pepper", Seeds: 12, Level: 4, Tiller: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 36, quote.HarvestTotal)
}

func TestAPIClient_Estimate(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/estimate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req handler.EstimateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "spring", req.Season)
		if assert.Len(t, req.Rows, 1) {
			assert.Equal(t, 10, req.Rows[0].Sold)
		}

		WriteJSON(w, session.Report{
			Totals: domain.Totals{TotalRevenue: 399.5, TotalSeedCost: 200, TotalProfit: 199.5},
			Valid:  true,
		})
	})

	report, err := ctx.APIClient.Estimate(handler.EstimateRequest{
		SkillLevel: 1,
		Season:     "spring",
		Rows:       []handler.EstimateRowRequest{{CropName: "Parsnip", SeedCount: 10, Sold: 10}},
	})
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.InDelta(t, 199.5, report.Totals.TotalProfit, 1e-9)
}

func TestAPIClient_Healthy(t *testing.T) {
	ctx := SetupTestContext(t)
	assert.False(t, ctx.APIClient.Healthy(), "no /healthz route registered")

	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, ctx.APIClient.Healthy())
}
