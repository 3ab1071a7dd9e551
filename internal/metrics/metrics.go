package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	SessionActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionActions,
			Help: HelpTextSessionActions,
		},
		[]string{LabelAction},
	)

	EstimatesCalculated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEstimatesCalculated,
			Help: HelpTextEstimatesCalculated,
		},
		[]string{LabelSeason},
	)

	EstimateProfit = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEstimateProfit,
			Help:    HelpTextEstimateProfit,
			Buckets: ProfitBuckets,
		},
	)

	AllocationCorrections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAllocationCorrections,
			Help: HelpTextAllocationCorrections,
		},
		[]string{LabelChannel},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRowsSkipped,
			Help: HelpTextRowsSkipped,
		},
		[]string{LabelReason},
	)

	CropsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCropsLoaded,
			Help: HelpTextCropsLoaded,
		},
		[]string{LabelSeason},
	)

	SkillLevelsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSkillLevelsLoaded,
			Help: HelpTextSkillLevelsLoaded,
		},
	)
)

var activeSessionsSource atomic.Pointer[func() int]

// ActiveSessions reads the live session count from whatever source was set last
var ActiveSessions = promauto.NewGaugeFunc(
	prometheus.GaugeOpts{
		Name: MetricNameActiveSessions,
		Help: HelpTextActiveSessions,
	},
	func() float64 {
		if fn := activeSessionsSource.Load(); fn != nil {
			return float64((*fn)())
		}
		return 0
	},
)

// SetActiveSessionsSource points the active sessions gauge at fn
func SetActiveSessionsSource(fn func() int) {
	activeSessionsSource.Store(&fn)
}

// CropCounter is the part of the reference data the catalog gauges read
type CropCounter interface {
	SeasonCropCount(season domain.Season) int
	ProbabilityRows() []domain.QualityProbabilityRow
}

// RecordReferenceData sets the catalog gauges from freshly loaded reference data
func RecordReferenceData(data CropCounter) {
	for _, season := range domain.Seasons {
		CropsLoaded.WithLabelValues(string(season)).Set(float64(data.SeasonCropCount(season)))
	}
	SkillLevelsLoaded.Set(float64(len(data.ProbabilityRows())))
}
