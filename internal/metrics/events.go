package metrics

import (
	"context"

	"github.com/osse101/CropCalc_Go/internal/event"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every session event
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.SessionTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SessionUpdated:
		var payload event.SessionUpdatedPayloadV1
		if payload, err = event.DecodePayload[event.SessionUpdatedPayloadV1](evt.Payload); err == nil {
			SessionActions.WithLabelValues(payload.Action).Inc()
		}

	case event.AllocationCorrected:
		var payload event.AllocationCorrectedPayloadV1
		if payload, err = event.DecodePayload[event.AllocationCorrectedPayloadV1](evt.Payload); err == nil {
			AllocationCorrections.WithLabelValues(string(payload.Correction.Channel)).Inc()
		}

	case event.EstimateCalculated:
		var payload event.EstimateCalculatedPayloadV1
		if payload, err = event.DecodePayload[event.EstimateCalculatedPayloadV1](evt.Payload); err == nil {
			EstimatesCalculated.WithLabelValues(string(payload.Season)).Inc()
			EstimateProfit.Observe(payload.TotalProfit)
			for _, skipped := range payload.Skipped {
				RowsSkipped.WithLabelValues(skipped.Reason).Inc()
			}
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
