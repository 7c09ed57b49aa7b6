package metrics

import (
	"net/url"
	"time"
)

// Config содержит настройки сбора и отправки метрик.
type Config struct {
	// Enabled включает метрики. По умолчанию false.
	Enabled bool

	// PushgatewayURL, например "http://pushgateway:9091".
	PushgatewayURL string

	// JobName группирует метрики в Pushgateway. По умолчанию "gitlab-client".
	JobName string

	// Timeout ограничивает запрос к Pushgateway. По умолчанию 10 секунд.
	Timeout time.Duration

	// InstanceLabel переопределяет label instance; пусто — hostname.
	InstanceLabel string
}

// Validate проверяет конфигурацию. Выключенные метрики всегда валидны.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}
	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}
	if c.JobName == "" {
		return ErrJobNameRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		JobName: "gitlab-client",
		Timeout: 10 * time.Second,
	}
}
