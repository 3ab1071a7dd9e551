package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropCalc_Go/internal/config"
	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/event"
)

func TestSetupLogger(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "debug",
		LogFormat:   "text",
		ServiceName: "crop-calc",
		Version:     "test",
		Environment: "test",
	}

	var stdout bytes.Buffer
	f, err := setupLogger(cfg, &stdout, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, filepath.Join(dir, "session_2025-06-01_12-00-00.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)

	contents, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(contents), LogMsgStartingService)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount+1)
	assert.NotContains(t, logs, "session_2024-01-01_00-00-00.log", "oldest removed first")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := setupLogger(&config.Config{LogDir: filepath.Join(file, "logs")}, &bytes.Buffer{}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), LogMsgFailedCreateLogsDir)
}

func TestInitializeEventSystem(t *testing.T) {
	sys, err := InitializeEventSystem()
	require.NoError(t, err)

	client := sys.Hub.Register(nil, "")
	require.Eventually(t, func() bool { return sys.Hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	state := &domain.SessionState{ID: "s-1", Season: domain.SeasonSpring}
	require.NoError(t, sys.Bus.Publish(context.Background(), event.NewSessionUpdatedEvent("created", state)))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.SessionUpdated), evt.Type)
		assert.Equal(t, "s-1", evt.SessionID)
	case <-time.After(time.Second):
		t.Fatal("event not bridged to the hub")
	}

	GracefulShutdown(context.Background(), ShutdownComponents{Hub: sys.Hub})
	_, open := <-client.EventChannel
	assert.False(t, open, "shutdown closes client streams")
}
