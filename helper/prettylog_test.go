package helper

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
	})

	require.NotNil(t, handler)
	assert.NotNil(t, handler.Handler)
	assert.NotNil(t, handler.l)
}

func TestPrettyHandlerHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("levels are labeled", func(t *testing.T) {
		levels := map[slog.Level]string{
			slog.LevelDebug: "DEBUG:",
			slog.LevelInfo:  "INFO:",
			slog.LevelWarn:  "WARN:",
			slog.LevelError: "ERROR:",
		}
		for level, label := range levels {
			var buf bytes.Buffer
			handler := NewPrettyHandler(&buf, PrettyHandlerOptions{
				SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
			})

			record := slog.NewRecord(time.Now(), level, "some message", 0)
			require.NoError(t, handler.Handle(ctx, record))

			assert.Contains(t, buf.String(), label)
			assert.Contains(t, buf.String(), "some message")
		}
	})

	t.Run("attributes rendered as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

		record := slog.NewRecord(time.Now(), slog.LevelInfo, "entry scored", 0)
		record.AddAttrs(slog.String("entry", "j001"), slog.Int("tp", 3))
		require.NoError(t, handler.Handle(ctx, record))

		out := buf.String()
		assert.Contains(t, out, "entry")
		assert.Contains(t, out, "j001")
		assert.Contains(t, out, "tp")
		assert.Contains(t, out, "3")
	})

	t.Run("no attributes yields empty object", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

		record := slog.NewRecord(time.Now(), slog.LevelInfo, "plain message", 0)
		require.NoError(t, handler.Handle(ctx, record))

		assert.Contains(t, buf.String(), "{}")
	})

	t.Run("timestamp format", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

		record := slog.NewRecord(time.Now(), slog.LevelInfo, "time test", 0)
		require.NoError(t, handler.Handle(ctx, record))

		assert.Regexp(t, `\[\d{2}:\d{2}:\d{2}\.\d{3}\]`, buf.String())
	})
}
