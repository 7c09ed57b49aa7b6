package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitlab-client/pkg/apperrors"
	"github.com/Kargones/gitlab-client/pkg/config"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
)

// TestProvideLogger_ReturnsNonNil проверяет, что ProvideLogger возвращает non-nil Logger.
func TestProvideLogger_ReturnsNonNil(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "debug", Format: "json"}}

	logger := ProvideLogger(cfg)
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Debug("тест", "key", "value") })
}

// TestProvideLogger_WithNilConfig проверяет значения по умолчанию при nil Config.
func TestProvideLogger_WithNilConfig(t *testing.T) {
	assert.NotNil(t, ProvideLogger(nil))
}

func TestProvideMetricsCollector(t *testing.T) {
	logger := logging.NewNopLogger()

	t.Run("nil config", func(t *testing.T) {
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(nil, logger))
	})

	t.Run("метрики выключены", func(t *testing.T) {
		cfg := &config.Config{Metrics: config.MetricsConfig{Enabled: false}}
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(cfg, logger))
	})

	t.Run("некорректная конфигурация даёт NopCollector", func(t *testing.T) {
		cfg := &config.Config{Metrics: config.MetricsConfig{Enabled: true}}
		assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(cfg, logger))
	})

	t.Run("метрики включены", func(t *testing.T) {
		cfg := &config.Config{Metrics: config.MetricsConfig{
			Enabled:        true,
			PushgatewayURL: "http://pushgateway:9091",
			JobName:        "gitlab-client",
			Timeout:        5 * time.Second,
		}}
		assert.IsType(t, &metrics.PrometheusCollector{}, ProvideMetricsCollector(cfg, logger))
	})
}

func TestProvideTracerProvider_Disabled(t *testing.T) {
	logger := logging.NewNopLogger()

	shutdown := ProvideTracerProvider(nil, logger)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	shutdown = ProvideTracerProvider(&config.Config{}, logger)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestProvideTracerProvider_InvalidConfigFallsBack(t *testing.T) {
	cfg := &config.Config{Tracing: config.TracingConfig{Enabled: true}}

	shutdown := ProvideTracerProvider(cfg, logging.NewNopLogger())
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestProvideClient(t *testing.T) {
	logger := logging.NewNopLogger()
	collector := metrics.NewNopCollector()
	nop := func(context.Context) error { return nil }

	t.Run("nil config", func(t *testing.T) {
		_, err := ProvideClient(nil, logger, collector, nop)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrConfigValidate, apperrors.CodeOf(err))
	})

	t.Run("host и токен из конфигурации", func(t *testing.T) {
		cfg := &config.Config{GitLab: config.GitLabConfig{
			Host:         "gitlab.example.com",
			PrivateToken: "token",
			Sudo:         "admin",
		}}
		client, err := ProvideClient(cfg, logger, collector, nop)
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v3", client.APIURL())
		assert.Equal(t, "token", client.Token())
		assert.Equal(t, "admin", client.Sudo())
	})

	t.Run("пустой host", func(t *testing.T) {
		_, err := ProvideClient(&config.Config{}, logger, collector, nop)
		require.Error(t, err)
	})
}
