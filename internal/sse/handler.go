package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CropCalc_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections.
// ?types=a,b limits event types and ?session=<id> limits to one session.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, errMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}
		sessionID := r.URL.Query().Get(QueryParamSession)

		ctx := r.Context()
		log := logger.FromContext(ctx)

		client := hub.Register(eventTypes, sessionID)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			logger.AttrKeySessionID, sessionID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !write(w, flusher, connectEvent) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !write(w, flusher, event) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

// write sends one event and reports whether the connection is still usable
func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
