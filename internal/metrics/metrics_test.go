package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	created := testutil.ToFloat64(SessionActions.WithLabelValues("created"))
	corrections := testutil.ToFloat64(AllocationCorrections.WithLabelValues("kegged"))
	estimates := testutil.ToFloat64(EstimatesCalculated.WithLabelValues("fall"))
	skipped := testutil.ToFloat64(RowsSkipped.WithLabelValues(domain.SkipReasonUnknownCrop))

	state := &domain.SessionState{ID: "s-1", Season: domain.SeasonFall}
	require.NoError(t, bus.Publish(ctx, event.NewSessionUpdatedEvent("created", state)))
	require.NoError(t, bus.Publish(ctx, event.NewAllocationCorrectedEvent("s-1", "Grape", domain.Correction{Channel: domain.ChannelKegged})))
	require.NoError(t, bus.Publish(ctx, event.NewEstimateCalculatedEvent(state, domain.Totals{
		TotalProfit: 1200,
		Skipped:     []domain.SkippedRow{{RowID: "r", CropName: "x", Reason: domain.SkipReasonUnknownCrop}},
	})))

	assert.Equal(t, created+1, testutil.ToFloat64(SessionActions.WithLabelValues("created")))
	assert.Equal(t, corrections+1, testutil.ToFloat64(AllocationCorrections.WithLabelValues("kegged")))
	assert.Equal(t, estimates+1, testutil.ToFloat64(EstimatesCalculated.WithLabelValues("fall")))
	assert.Equal(t, skipped+1, testutil.ToFloat64(RowsSkipped.WithLabelValues(domain.SkipReasonUnknownCrop)))
}

func TestEventMetricsCollector_UndecodablePayload(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.AllocationCorrected, Payload: make(chan int)})
	assert.NoError(t, err)
}

func TestActiveSessionsSource(t *testing.T) {
	SetActiveSessionsSource(func() int { return 7 })
	assert.Equal(t, 7.0, testutil.ToFloat64(ActiveSessions))
}

type fakeCounter struct{}

func (fakeCounter) SeasonCropCount(season domain.Season) int {
	if season == domain.SeasonWinter {
		return 1
	}
	return 12
}

func (fakeCounter) ProbabilityRows() []domain.QualityProbabilityRow {
	return make([]domain.QualityProbabilityRow, 14)
}

func TestRecordReferenceData(t *testing.T) {
	RecordReferenceData(fakeCounter{})
	assert.Equal(t, 1.0, testutil.ToFloat64(CropsLoaded.WithLabelValues("winter")))
	assert.Equal(t, 12.0, testutil.ToFloat64(CropsLoaded.WithLabelValues("spring")))
	assert.Equal(t, 14.0, testutil.ToFloat64(SkillLevelsLoaded))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/sessions/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/abc-123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/sessions/{id}", "418")))
}

func TestResponseWriter_Flushes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	var _ http.Flusher = rw
	rw.Flush()
	assert.True(t, rec.Flushed)
}
