package gitlab

import (
	"net/http"
	"time"

	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

// clientSettings собирает значения ClientOption до создания Client.
type clientSettings struct {
	privateToken   string
	oauthToken     string
	tokenSource    oauth2.TokenSource
	httpClient     *http.Client
	timeout        time.Duration
	timeoutSet     bool
	insecure       bool
	basicUser      string
	basicPassword  string
	suppress       bool
	sudo           string
	userAgent      string
	logger         logging.Logger
	metrics        metrics.Collector
	tracerProvider trace.TracerProvider
}

// ClientOption настраивает Client при создании.
type ClientOption func(*clientSettings)

// WithPrivateToken задаёт private token; передаётся в заголовке PRIVATE-TOKEN.
// Несовместим с WithOAuthToken.
func WithPrivateToken(token string) ClientOption {
	return func(s *clientSettings) { s.privateToken = token }
}

// WithOAuthToken задаёт OAuth2 токен; передаётся как Authorization: Bearer.
// Несовместим с WithPrivateToken.
func WithOAuthToken(token string) ClientOption {
	return func(s *clientSettings) { s.oauthToken = token }
}

// WithTokenSource задаёт источник OAuth2 токенов, например с автообновлением.
// Считается OAuth аутентификацией.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(s *clientSettings) { s.tokenSource = ts }
}

// WithHTTPClient задаёт HTTP клиент. WithInsecureSkipVerify к нему не применяется.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(s *clientSettings) { s.httpClient = hc }
}

// WithTimeout задаёт таймаут одного HTTP запроса. 0 — без таймаута.
func WithTimeout(d time.Duration) ClientOption {
	return func(s *clientSettings) {
		s.timeout = d
		s.timeoutSet = true
	}
}

// WithInsecureSkipVerify отключает проверку TLS сертификата сервера.
func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(s *clientSettings) { s.insecure = skip }
}

// WithBasicAuth добавляет HTTP basic auth к каждому запросу.
// Нужен, когда GitLab стоит за прокси с basic auth.
func WithBasicAuth(user, password string) ClientOption {
	return func(s *clientSettings) {
		s.basicUser = user
		s.basicPassword = password
	}
}

// WithSuppressHTTPError включает режим подавления: неуспешный HTTP статус
// возвращает пустой результат и nil вместо ошибки.
func WithSuppressHTTPError(suppress bool) ClientOption {
	return func(s *clientSettings) { s.suppress = suppress }
}

// WithSudo задаёт пользователя для заголовка SUDO по умолчанию.
func WithSudo(user string) ClientOption {
	return func(s *clientSettings) { s.sudo = user }
}

// WithUserAgent переопределяет заголовок User-Agent.
func WithUserAgent(ua string) ClientOption {
	return func(s *clientSettings) { s.userAgent = ua }
}

// WithLogger задаёт логгер. По умолчанию logging.NopLogger.
func WithLogger(l logging.Logger) ClientOption {
	return func(s *clientSettings) { s.logger = l }
}

// WithMetrics задаёт коллектор метрик. По умолчанию metrics.NopCollector.
func WithMetrics(m metrics.Collector) ClientOption {
	return func(s *clientSettings) { s.metrics = m }
}

// WithTracerProvider задаёт TracerProvider. По умолчанию глобальный otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(s *clientSettings) { s.tracerProvider = tp }
}

// requestConfig — параметры одного вызова.
type requestConfig struct {
	sudo     string
	suppress bool
	noAuth   bool
	headers  http.Header
	statuses []int
	response *http.Header
}

// RequestOption переопределяет настройки клиента для одного вызова.
type RequestOption func(*requestConfig)

// AsUser выполняет вызов от имени user через заголовок SUDO.
func AsUser(user string) RequestOption {
	return func(c *requestConfig) { c.sudo = user }
}

// WithoutSudo отправляет вызов без заголовка SUDO, даже если он задан клиенту.
func WithoutSudo() RequestOption {
	return func(c *requestConfig) { c.sudo = "" }
}

// SuppressHTTPError переопределяет режим подавления для вызова.
func SuppressHTTPError(suppress bool) RequestOption {
	return func(c *requestConfig) { c.suppress = suppress }
}

// WithHeader добавляет заголовок к вызову.
func WithHeader(key, value string) RequestOption {
	return func(c *requestConfig) {
		if c.headers == nil {
			c.headers = make(http.Header)
		}
		c.headers.Add(key, value)
	}
}

// AcceptStatus заменяет список HTTP статусов, считающихся успешными.
func AcceptStatus(codes ...int) RequestOption {
	return func(c *requestConfig) { c.statuses = codes }
}

// withoutAuth отправляет вызов без учётных данных (используется Login).
func withoutAuth() RequestOption {
	return func(c *requestConfig) { c.noAuth = true }
}

// captureHeader сохраняет заголовки ответа в h.
func captureHeader(h *http.Header) RequestOption {
	return func(c *requestConfig) { c.response = h }
}

// Ptr возвращает указатель на v. Удобен для заполнения опций:
//
//	&gitlab.EditUserOptions{Name: gitlab.Ptr("John")}
func Ptr[T any](v T) *T {
	return &v
}
