package di

import (
	"context"
	"errors"

	"github.com/Kargones/gitlab-client/pkg/config"
	"github.com/Kargones/gitlab-client/pkg/gitlab"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
)

// App содержит клиент GitLab и его инфраструктуру.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./pkg/di/...
type App struct {
	// Config передаётся извне через InitializeApp().
	Config *config.Config

	// Logger создаётся через ProvideLogger на основе Config.Logging.
	Logger logging.Logger

	// MetricsCollector создаётся через ProvideMetricsCollector.
	// Если метрики отключены — используется NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён — nop function.
	TracerShutdown func(context.Context) error

	// Client — клиент GitLab API, настроенный по Config.GitLab.
	Client *gitlab.Client
}

// Close отправляет накопленные метрики и завершает трейсинг.
// Вызывается один раз при завершении работы.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.MetricsCollector != nil {
		if err := a.MetricsCollector.Push(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.TracerShutdown != nil {
		if err := a.TracerShutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
