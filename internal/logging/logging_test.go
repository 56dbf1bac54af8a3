package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Levels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLogger("debug", "json")
	require.NotNil(t, Logger)
	assert.True(t, Logger.Enabled(context.Background(), slog.LevelDebug))

	InitLogger("warn", "text")
	assert.False(t, Logger.Enabled(context.Background(), slog.LevelInfo))

	InitLogger("nonsense", "text")
	assert.True(t, Logger.Enabled(context.Background(), slog.LevelInfo), "unknown level defaults to info")
}

func TestFieldHelpers(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	WithKeyword("#google").Info("analysis started")
	assert.Contains(t, buf.String(), `"keyword":"#google"`)

	buf.Reset()
	WithRequest("req-42").Info("request received")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)

	buf.Reset()
	WithError(errors.New("boom")).Warn("live search failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)
}
