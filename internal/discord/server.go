package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthPath          = "/health"
	serverShutdownLimit = 5 * time.Second
	serverHeaderTimeout = 5 * time.Second
)

// HTTPServer serves the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: serverHeaderTimeout,
		},
		bot: bot,
	}

	mux.HandleFunc(healthPath, srv.HandleHealth)
	return srv
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord health server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord health server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownLimit)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord health server shutdown failed", "error", err)
	}
}
