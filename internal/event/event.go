// Package event is the in-process bus that session changes are published on.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"`
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Session event types
const (
	SessionUpdated      Type = domain.EventTypeSessionUpdated
	AllocationCorrected Type = domain.EventTypeAllocationCorrected
	EstimateCalculated  Type = domain.EventTypeEstimateCalculated
)

// SessionTypes lists every event the session service publishes
var SessionTypes = []Type{SessionUpdated, AllocationCorrected, EstimateCalculated}

// SessionUpdatedPayloadV1 carries the full state after a change
type SessionUpdatedPayloadV1 struct {
	SessionID string               `json:"session_id"`
	Action    string               `json:"action"`
	State     *domain.SessionState `json:"state"`
	Timestamp int64                `json:"timestamp"`
}

// AllocationCorrectedPayloadV1 reports an automatic reduction after an allocation edit
type AllocationCorrectedPayloadV1 struct {
	SessionID  string            `json:"session_id"`
	CropName   string            `json:"crop_name"`
	Correction domain.Correction `json:"correction"`
	Timestamp  int64             `json:"timestamp"`
}

// EstimateCalculatedPayloadV1 summarizes a final calculation
type EstimateCalculatedPayloadV1 struct {
	SessionID     string              `json:"session_id"`
	Season        domain.Season       `json:"season"`
	SkillLevel    int                 `json:"skill_level"`
	TotalRevenue  float64             `json:"total_revenue"`
	TotalSeedCost float64             `json:"total_seed_cost"`
	TotalProfit   float64             `json:"total_profit"`
	Rows          int                 `json:"rows"`
	Skipped       []domain.SkippedRow `json:"skipped,omitempty"`
	Timestamp     int64               `json:"timestamp"`
}

func sessionMetadata(sessionID string) map[string]interface{} {
	return map[string]interface{}{MetadataKeySessionID: sessionID}
}

// NewSessionUpdatedEvent creates a session updated event
func NewSessionUpdatedEvent(action string, state *domain.SessionState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionUpdated,
		Payload: SessionUpdatedPayloadV1{
			SessionID: state.ID,
			Action:    action,
			State:     state,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(state.ID),
	}
}

// NewAllocationCorrectedEvent creates an allocation corrected event
func NewAllocationCorrectedEvent(sessionID, cropName string, correction domain.Correction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AllocationCorrected,
		Payload: AllocationCorrectedPayloadV1{
			SessionID:  sessionID,
			CropName:   cropName,
			Correction: correction,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewEstimateCalculatedEvent creates an estimate calculated event
func NewEstimateCalculatedEvent(state *domain.SessionState, totals domain.Totals) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EstimateCalculated,
		Payload: EstimateCalculatedPayloadV1{
			SessionID:     state.ID,
			Season:        state.Season,
			SkillLevel:    state.SkillLevel,
			TotalRevenue:  totals.TotalRevenue,
			TotalSeedCost: totals.TotalSeedCost,
			TotalProfit:   totals.TotalProfit,
			Rows:          len(totals.Breakdown),
			Skipped:       totals.Skipped,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: sessionMetadata(state.ID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler for the event's type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
