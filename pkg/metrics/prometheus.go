package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kargones/gitlab-client/internal/urlutil"
	"github.com/Kargones/gitlab-client/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "gitlab_client"

// PrometheusCollector реализует Collector на Prometheus метриках.
// Метрики уходят в Pushgateway при вызове Push.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec

	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector и регистрирует метрики:
//   - gitlab_client_request_duration_seconds (histogram)
//   - gitlab_client_requests_total (counter)
//   - gitlab_client_request_errors_total (counter)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для label instance", "error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of GitLab API requests in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint", "status"},
	)
	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of GitLab API requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Total number of failed GitLab API requests",
		},
		[]string{"method", "endpoint"},
	)

	for _, c := range []prometheus.Collector{requestDuration, requestTotal, requestErrors} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		requestErrors:   requestErrors,
		instance:        instance,
	}, nil
}

const maxLabelLength = 128

// sanitizeLabel заменяет контрольные символы и обрезает значение по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// EndpointLabel сводит путь запроса к шаблону: query отбрасывается,
// числовые сегменты и экранированные пути проектов заменяются на ":id".
//
//	"/projects/12/repository/branches/main" → "/projects/:id/repository/branches/main"
//	"/projects/group%2Fapp/issues?page=2"   → "/projects/:id/issues"
func EndpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil || strings.Contains(s, "%2F") {
			segments[i] = ":id"
		}
	}
	return sanitizeLabel(strings.Join(segments, "/"))
}

// RecordRequest обновляет histogram и счётчики.
func (c *PrometheusCollector) RecordRequest(method, endpoint string, status int, duration time.Duration, success bool) {
	endpoint = EndpointLabel(endpoint)
	code := strconv.Itoa(status)

	c.requestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
	c.requestTotal.WithLabelValues(method, endpoint, code).Inc()
	if !success {
		c.requestErrors.WithLabelValues(method, endpoint).Inc()
	}
}

// Push отправляет метрики в Pushgateway. Ошибки логируются, возвращается nil.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if ctx.Err() != nil {
		c.logger.Debug("metrics push отменён")
		return nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Debug("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает registry коллектора, например для отдачи через promhttp.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
