package di

import (
	"context"
	"log/slog"

	"github.com/Kargones/gitlab-client/pkg/apperrors"
	"github.com/Kargones/gitlab-client/pkg/config"
	"github.com/Kargones/gitlab-client/pkg/gitlab"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
	"github.com/Kargones/gitlab-client/pkg/tracing"
)

// ProvideLogger создаёт Logger на основе Config.Logging.
// Пустые поля заменяются значениями по умолчанию (info, text, stderr).
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.Logging.ToLogging())
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.Metrics.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает
// shutdown function. Если трейсинг отключён или не инициализировался,
// возвращает nop shutdown.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	shutdown, err := tracing.NewTracerProvider(cfg.Tracing.ToTracing(), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideClient создаёт клиент GitLab по Config.GitLab.
//
// Зависит от shutdown, чтобы создаваться после ProvideTracerProvider:
// клиент берёт трейсер из глобального TracerProvider в момент создания.
func ProvideClient(cfg *config.Config, logger logging.Logger, collector metrics.Collector, _ func(context.Context) error) (*gitlab.Client, error) {
	if cfg == nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "конфигурация не задана", nil)
	}
	return gitlab.NewClientFromConfig(cfg.GitLab, logger, collector)
}
