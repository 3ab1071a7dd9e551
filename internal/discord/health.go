package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

// currentHealth snapshots the counters together with connectivity checks
func currentHealth(connected, apiReachable bool) HealthStatus {
	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if nano := lastCommandNano.Load(); nano > 0 {
		last := time.Unix(0, nano)
		health.LastCommandTime = &last
	}
	if !connected || !apiReachable {
		health.Status = "degraded"
	}
	return health
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady
	apiReachable := h.bot.Client != nil && h.bot.Client.Healthy()

	health := currentHealth(connected, apiReachable)

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Warn("Failed to encode health status", "error", err)
	}
}
