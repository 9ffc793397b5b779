package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bindkit/core/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("nil_error_is_empty_attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("error_attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("empty_request_id_is_empty_attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	})

	t.Run("request_attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
		assert.Equal(t, slog.String("path", "/products"), logger.Path("/products"))
		assert.Equal(t, slog.Int("status_code", 201), logger.StatusCode(201))
	})
}

func TestNewWithLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error", "unknown"} {
		assert.NotNil(t, logger.NewWithLevel(level))
	}
}
