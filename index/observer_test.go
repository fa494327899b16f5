package index

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoggingObserver_RejectedLogsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := NewLoggingObserver(logger)
	obs.OnEvent(Event{
		Type:      EventRecordRejected,
		Key:       []byte("k1"),
		Err:       errors.New("truncated value"),
		Timestamp: time.Now(),
	})

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "record rejected")
	require.Contains(t, out, "key=k1")
	require.Contains(t, out, "truncated value")
}

func TestLoggingObserver_IndexedLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := NewLoggingObserver(logger)
	obs.OnEvent(Event{
		Type:      EventRecordIndexed,
		Key:       []byte("k2"),
		Columns:   3,
		Timestamp: time.Now(),
	})

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "record indexed")
	require.Contains(t, out, "columns=3")
}

func TestNewLoggingObserver_NilLogger(t *testing.T) {
	obs := NewLoggingObserver(nil)
	require.NotNil(t, obs.logger)
}
