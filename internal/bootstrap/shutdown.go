package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CropCalc_Go/internal/server"
	"github.com/osse101/CropCalc_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
}

// GracefulShutdown closes the event streams, then drains the HTTP server.
// Stream handlers only return once the hub closes them, and Shutdown waits for
// every active request. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgShuttingDownHub)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
