package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CropCalc_Go/internal/event"
	"github.com/osse101/CropCalc_Go/internal/metrics"
	"github.com/osse101/CropCalc_Go/internal/sse"
)

// EventSystem is the in-process bus plus its live subscribers
type EventSystem struct {
	Bus event.Bus
	Hub *sse.Hub
}

// InitializeEventSystem creates the event bus, starts the SSE hub and wires the
// hub bridge and the metrics collector to the bus
func InitializeEventSystem() (*EventSystem, error) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		hub.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.SessionTypes))
	return &EventSystem{Bus: bus, Hub: hub}, nil
}
