package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForestKatsch/phosphor/core/logger"
)

type ctxKey struct{}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), buf.String())
	return record
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "api")),
		)
		log.Info("hello", logger.Component("test"))

		record := decodeLine(t, &buf)
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "api", record["service"])
		assert.Equal(t, "test", record["component"])
	})

	t.Run("text output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger.New(logger.WithOutput(&buf)).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("development preset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("api"), logger.WithOutput(&buf))
		log.Debug("visible")
		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "service=api")
	})

	t.Run("production preset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("api"), logger.WithOutput(&buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("visible")
		record := decodeLine(t, &buf)
		assert.Equal(t, "production", record["env"])
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	extract := func(ctx context.Context) (slog.Attr, bool) {
		id, ok := ctx.Value(ctxKey{}).(string)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(extract),
	).With(slog.String("scope", "child"))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "with id")
	record := decodeLine(t, &buf)
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "child", record["scope"])

	buf.Reset()
	log.InfoContext(context.Background(), "without id")
	assert.NotContains(t, decodeLine(t, &buf), "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("route", "/users/{id}"), logger.Route("/users/{id}"))
	assert.True(t, logger.Route("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.Equal(t, slog.Int("status_code", 404), logger.StatusCode(404))
	assert.Equal(t, "boom", logger.Error(errors.New("boom")).Value.String())
	assert.Equal(t, slog.KindDuration, logger.Latency(time.Second).Value.Kind())
}
