package metrics

import "errors"

var (
	// ErrPushgatewayURLRequired возвращается, если метрики включены без URL Pushgateway.
	ErrPushgatewayURLRequired = errors.New("pushgateway URL is required when metrics enabled")

	// ErrPushgatewayURLInvalid возвращается при URL без scheme или host.
	ErrPushgatewayURLInvalid = errors.New("pushgateway URL has invalid format")

	// ErrJobNameRequired возвращается при пустом имени job.
	ErrJobNameRequired = errors.New("job name is required")

	// ErrInvalidTimeout возвращается при неположительном таймауте.
	ErrInvalidTimeout = errors.New("timeout must be positive")
)
