package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type runIDKey struct{}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew(t *testing.T) {
	t.Run("json by default with form attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Info("field validated", logger.FormID("signup"), logger.Field("email"), logger.FieldCount(3))

		entries := decodeLines(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "INFO", entries[0]["level"])
		assert.Equal(t, "signup", entries[0]["form_id"])
		assert.Equal(t, "email", entries[0]["field"])
		assert.EqualValues(t, 3, entries[0]["field_count"])
	})

	t.Run("empty form attributes are dropped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Info("form disposed", logger.FormID(""), logger.Field(""), logger.Error(nil))

		entries := decodeLines(t, buf)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0], "form_id")
		assert.NotContains(t, entries[0], "field")
		assert.NotContains(t, entries[0], "error")
	})

	t.Run("text formatter", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())

		log.Warn("failed to clear form errors", logger.FormID("login"), logger.Store("redis"))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "form_id=login")
		assert.Contains(t, out, "store=redis")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())

		log.Info("hello")
		require.Len(t, decodeLines(t, buf), 1)
	})

	t.Run("level filters debug lines", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Debug("validation scheduled", logger.Field("email"))
		assert.Zero(t, buf.Len())

		log = logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("validation scheduled", logger.Field("email"))
		assert.NotZero(t, buf.Len())
	})

	t.Run("static component attribute", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("form")))

		log.Info("form opened")
		assert.Equal(t, "form", decodeLines(t, buf)[0]["component"])
	})
}

func TestWithContextValue(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("run_id", runIDKey{}),
	)

	ctx := context.WithValue(context.Background(), runIDKey{}, "run-1")
	log.InfoContext(ctx, "form is valid", logger.FormID("signup"))
	log.InfoContext(context.Background(), "no run")
	log.With(logger.Store("memory")).InfoContext(ctx, "derived logger")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "run-1", entries[0]["run_id"])
	assert.Equal(t, "signup", entries[0]["form_id"])
	assert.NotContains(t, entries[1], "run_id")
	assert.Equal(t, "run-1", entries[2]["run_id"], "extractors survive With")
	assert.Equal(t, "memory", entries[2]["store"])
}

func TestWithContextValueIgnoresIncompleteInput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("", runIDKey{}),
		logger.WithContextValue("run_id", nil),
		logger.WithContextExtractors(nil),
	)

	ctx := context.WithValue(context.Background(), runIDKey{}, "run-1")
	assert.NotPanics(t, func() { log.InfoContext(ctx, "msg") })
	assert.NotContains(t, decodeLines(t, buf)[0], "run_id")
}

func TestErrorAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	errRepo := errors.New("repository down")

	log.Warn("query failed", logger.Error(errRepo), logger.Errors(nil, errRepo))

	entry := decodeLines(t, buf)[0]
	assert.Equal(t, "repository down", entry["error"])
	assert.Equal(t, map[string]any{"1": "repository down"}, entry["errors"])
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default", logger.FormID("f"))

	assert.Equal(t, "f", decodeLines(t, buf)[0]["form_id"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
