package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/Kargones/gitlab-client/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Enabled:      true,
		Endpoint:     "http://jaeger:4318",
		ServiceName:  "gitlab-client",
		Timeout:      time.Second,
		SamplingRate: 0.5,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"валидно", func(_ *Config) {}, nil},
		{"выключено", func(c *Config) { *c = Config{} }, nil},
		{"без endpoint", func(c *Config) { c.Endpoint = "" }, ErrTracingEndpointRequired},
		{"endpoint без host", func(c *Config) { c.Endpoint = "jaeger" }, ErrTracingEndpointInvalidFormat},
		{"без service name", func(c *Config) { c.ServiceName = "" }, ErrTracingServiceNameRequired},
		{"нулевой таймаут", func(c *Config) { c.Timeout = 0 }, ErrTracingTimeoutInvalid},
		{"sampling > 1", func(c *Config) { c.SamplingRate = 1.5 }, ErrTracingSamplingRateInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	_, err := NewTracerProvider(Config{Enabled: true}, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))

	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))

	const hex = "0123456789abcdef0123456789abcdef"
	ctx = ContextWithOTelTraceID(context.Background(), hex)
	assert.Equal(t, hex, TraceIDFromContext(ctx))
	assert.True(t, trace.SpanContextFromContext(ctx).IsRemote())
}

func TestContextWithOTelTraceID_Invalid(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, ContextWithOTelTraceID(ctx, "not-hex"))
}
