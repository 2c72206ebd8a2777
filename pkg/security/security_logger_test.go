package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecurityLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "contact-relay", "test")

	t.Run("Should log rate limit events as warnings", func(t *testing.T) {
		sl.LogRateLimitTriggered(context.Background(), "10.0.0.1", "curl/8", "req-1", "/api/sheets")

		entries := logs.FilterMessage(string(EventRateLimitTriggered)).All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		fields := entries[0].ContextMap()
		assert.Equal(t, "10.0.0.1", fields["ip"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, `{"endpoint":"/api/sheets"}`, fields["details"])
	})

	t.Run("Should log upstream failures as errors", func(t *testing.T) {
		sl.LogUpstreamFailure(context.Background(), "req-2", "/api/sheets", errors.New("dial tcp: refused"))

		entries := logs.FilterMessage(string(EventUpstreamFailure)).All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "contact-relay", entries[0].ContextMap()["service"])
	})
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@x.com", MaskEmail("jane@x.com"))
	assert.Equal(t, "***", MaskEmail("j@"))
	assert.Equal(t, "***@x.com", MaskEmail("j@x.com"))
	assert.Equal(t, "***", MaskEmail("jane.doe.example.com"), "no @ hides everything")
}
