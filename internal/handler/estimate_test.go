package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/handler"
	"github.com/osse101/CropCalc_Go/internal/session"
)

func TestHandleEstimate(t *testing.T) {
	handler.InitValidator()
	h := handler.HandleEstimate(fixtureData(t))

	t.Run("parsnip scenario", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/v1/estimate", handler.EstimateRequest{
			SkillLevel: 1,
			Season:     "spring",
			Rows:       []handler.EstimateRowRequest{{CropName: "parsnip", SeedCount: 10, Sold: 10}},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report session.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.True(t, report.Valid)
		assert.InDelta(t, 399.5, report.Totals.TotalRevenue, 1e-9)
		assert.Equal(t, 200.0, report.Totals.TotalSeedCost)
		assert.InDelta(t, 199.5, report.Totals.TotalProfit, 1e-9)
		require.Len(t, report.Totals.Breakdown, 1)
		assert.Equal(t, "Parsnip", report.Totals.Breakdown[0].CropName)
	})

	t.Run("over capacity is priced but invalid", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/v1/estimate", handler.EstimateRequest{
			SkillLevel: 1,
			Season:     "spring",
			HasArtisan: true,
			Rows:       []handler.EstimateRowRequest{{CropName: "Parsnip", SeedCount: 2, Jarred: 3}},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var report session.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.False(t, report.Valid)
		require.Len(t, report.Capacity, 1)
		assert.Equal(t, 1, report.Capacity[0].Excess)
		assert.Equal(t, 3*168.0, report.Totals.TotalRevenue)
	})

	t.Run("unavailable channels and negatives are clamped", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/v1/estimate", handler.EstimateRequest{
			SkillLevel: 1,
			Season:     "winter",
			Rows:       []handler.EstimateRowRequest{{CropName: "Powdermelon", SeedCount: 5, Sold: -2, Kegged: 5}},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var report session.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.True(t, report.Valid)
		require.Len(t, report.Totals.Breakdown, 1)
		assert.Equal(t, domain.Allocation{}, report.Totals.Breakdown[0].Distribution)
		assert.Zero(t, report.Totals.TotalRevenue)
		assert.Equal(t, 200.0, report.Totals.TotalSeedCost)
	})

	t.Run("unknown crop is skipped", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/v1/estimate", handler.EstimateRequest{
			SkillLevel: 1,
			Season:     "spring",
			Rows: []handler.EstimateRowRequest{
				{CropName: "Parsnip", SeedCount: 1, Sold: 1},
				{CropName: "Starfruit", SeedCount: 1, Sold: 1},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var report session.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		require.Len(t, report.Totals.Skipped, 1)
		assert.Equal(t, domain.SkipReasonUnknownCrop, report.Totals.Skipped[0].Reason)
	})

	errorTests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{"malformed json", `{"season":`, http.StatusBadRequest, handler.ErrMsgInvalidRequest},
		{"missing rows", `{"skill_level":1,"season":"spring"}`, http.StatusBadRequest, handler.ErrMsgInvalidRequestSummary},
		{"bad season", `{"skill_level":1,"season":"monsoon","rows":[{}]}`, http.StatusBadRequest, handler.ErrMsgInvalidRequestSummary},
		{"level without odds", `{"skill_level":7,"season":"spring","rows":[{}]}`, http.StatusBadRequest, handler.ErrMsgSkillLevelError},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, h, http.MethodPost, "/api/v1/estimate", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
		})
	}
}
