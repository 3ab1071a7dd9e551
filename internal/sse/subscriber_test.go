package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/event"
)

func TestSubscriber_BridgesSessionEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil, "s-1")
	waitForClients(t, hub, 1)

	state := &domain.SessionState{ID: "s-1", SkillLevel: 1, Season: domain.SeasonSpring}
	require.NoError(t, bus.Publish(context.Background(), event.NewSessionUpdatedEvent("created", state)))

	e, ok := receive(t, client)
	require.True(t, ok)
	assert.Equal(t, domain.EventTypeSessionUpdated, e.Type)
	assert.Equal(t, "s-1", e.SessionID)
	payload, isMap := e.Payload.(map[string]interface{})
	require.True(t, isMap)
	assert.Equal(t, "created", payload["action"])

	correction := domain.Correction{RowID: "r1", Channel: domain.ChannelSold, Requested: 13, Applied: 12, Excess: 1}
	require.NoError(t, bus.Publish(context.Background(), event.NewAllocationCorrectedEvent("s-1", "Parsnip", correction)))

	e, ok = receive(t, client)
	require.True(t, ok)
	assert.Equal(t, domain.EventTypeAllocationCorrected, e.Type)
	corrected, isPayload := e.Payload.(event.AllocationCorrectedPayloadV1)
	require.True(t, isPayload)
	assert.Equal(t, correction, corrected.Correction)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?session=s-9&types=estimate.calculated", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 32)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	waitFor := func(prefix string) string {
		deadline := time.After(2 * time.Second)
		for {
			select {
			case line, ok := <-lines:
				if !ok {
					t.Fatalf("stream closed before %q", prefix)
				}
				if strings.HasPrefix(line, prefix) {
					return line
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %q", prefix)
			}
		}
	}

	assert.Equal(t, "event: connected", waitFor("event: "))
	waitForClients(t, hub, 1)

	hub.Broadcast(domain.EventTypeSessionUpdated, "s-9", nil)
	hub.Broadcast(domain.EventTypeEstimateCalculated, "s-other", nil)
	hub.Broadcast(domain.EventTypeEstimateCalculated, "s-9", map[string]float64{"total_profit": 199.5})

	assert.Equal(t, "event: estimate.calculated", waitFor("event: "))
	assert.Contains(t, waitFor("data: "), `"session_id":"s-9"`)
}
