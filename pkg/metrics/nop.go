package metrics

import (
	"context"
	"time"
)

// NopCollector ничего не записывает.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordRequest ничего не делает.
func (c *NopCollector) RecordRequest(_, _ string, _ int, _ time.Duration, _ bool) {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(_ context.Context) error {
	return nil
}
