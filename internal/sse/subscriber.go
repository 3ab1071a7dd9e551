package sse

import (
	"context"

	"github.com/osse101/CropCalc_Go/internal/event"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every session event type
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SessionUpdated, s.handleSessionUpdated)
	s.bus.Subscribe(event.AllocationCorrected, s.handleAllocationCorrected)
	s.bus.Subscribe(event.EstimateCalculated, s.handleEstimateCalculated)

	logger.Info(LogMsgSubscribed, "types", event.SessionTypes)
}

// handleSessionUpdated pushes the full state, tagged with what changed
func (s *Subscriber) handleSessionUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionUpdatedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), payload.SessionID, map[string]interface{}{
		"action": payload.Action,
		"state":  payload.State,
	})
	return nil
}

func (s *Subscriber) handleAllocationCorrected(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.AllocationCorrectedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), payload.SessionID, payload)
	return nil
}

func (s *Subscriber) handleEstimateCalculated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.EstimateCalculatedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), payload.SessionID, payload)
	return nil
}
