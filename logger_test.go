package gendy

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(WithSeed(1), WithLogger(l))
	require.Contains(t, buf.String(), "engine created")

	buf.Reset()
	require.Error(t, e.SetBreakpointCount(0))
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), ErrBreakpointCount.Error())

	buf.Reset()
	render(e, 400)
	require.Contains(t, buf.String(), "configuration applied")
}

func TestNopLogger(t *testing.T) {
	l := newNopLogger()
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.Error("dropped")
	require.NotNil(t, l.With("k", 1).WithGroup("g"))
}
