// Package metrics собирает метрики HTTP запросов клиента GitLab и отправляет
// их в Prometheus Pushgateway.
//
// NewCollector возвращает NopCollector, когда метрики выключены, поэтому
// клиент всегда может вызывать Collector без проверок.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс сбора метрик.
// Реализации: PrometheusCollector и NopCollector.
type Collector interface {
	// RecordRequest записывает завершённый запрос к API.
	// endpoint — путь относительно /api/v3; числовые сегменты сводятся к ":id".
	// status — HTTP код ответа, 0 если ответ не получен.
	RecordRequest(method, endpoint string, status int, duration time.Duration, success bool)

	// Push отправляет накопленные метрики в Pushgateway.
	// Все реализации возвращают nil: ошибки отправки только логируются.
	Push(ctx context.Context) error
}
