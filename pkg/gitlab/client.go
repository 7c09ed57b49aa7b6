package gitlab

import (
	"crypto/tls"
	"net/http"
	"strings"
	"sync"

	"github.com/Kargones/gitlab-client/internal/constants"
	"github.com/Kargones/gitlab-client/internal/urlutil"
	"github.com/Kargones/gitlab-client/pkg/config"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
	"github.com/Kargones/gitlab-client/pkg/tracing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

// Compile-time проверка реализации интерфейса.
var _ API = (*Client)(nil)

// Client — клиент GitLab API v3.
type Client struct {
	host       string
	apiURL     string
	httpClient *http.Client

	basicUser     string
	basicPassword string
	userAgent     string
	suppress      bool

	logger  logging.Logger
	metrics metrics.Collector
	tracer  trace.Tracer

	// mu защищает учётные данные и sudo: Login и SetSudo меняют их
	// во время работы клиента.
	mu           sync.RWMutex
	privateToken string
	tokenSource  oauth2.TokenSource
	sudo         string
}

// NewClient создаёт клиент для host.
//
// Пустой host — ошибка. Завершающий "/" отбрасывается, при отсутствии схемы
// подставляется https://. Базовый URL API: host + "/api/v3".
// WithPrivateToken и WithOAuthToken/WithTokenSource взаимоисключающие.
func NewClient(host string, opts ...ClientOption) (*Client, error) {
	s := &clientSettings{timeout: constants.DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}

	normalized, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	if s.oauthToken != "" && s.tokenSource == nil {
		s.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.oauthToken})
	}
	if s.privateToken != "" && s.tokenSource != nil {
		return nil, NewValidationError("token", "private token и OAuth токен нельзя задавать одновременно")
	}

	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNopCollector()
	}
	if s.tracerProvider == nil {
		s.tracerProvider = otel.GetTracerProvider()
	}
	if s.userAgent == "" {
		s.userAgent = constants.DefaultUserAgent
	}

	c := &Client{
		host:          normalized,
		apiURL:        normalized + constants.APIPathPrefix,
		httpClient:    buildHTTPClient(s),
		basicUser:     s.basicUser,
		basicPassword: s.basicPassword,
		userAgent:     s.userAgent,
		suppress:      s.suppress,
		logger:        s.logger.With("gitlab_host", urlutil.MaskURL(normalized)),
		metrics:       s.metrics,
		tracer:        s.tracerProvider.Tracer(tracing.InstrumentationName),
		privateToken:  s.privateToken,
		tokenSource:   s.tokenSource,
		sudo:          s.sudo,
	}

	c.logger.Debug("gitlab: клиент создан",
		"api_url", urlutil.MaskURL(c.apiURL),
		"auth", c.authKind(),
		"suppress_http_error", c.suppress,
	)
	return c, nil
}

// NewClientFromConfig создаёт клиент по config.GitLabConfig.
func NewClientFromConfig(cfg config.GitLabConfig, logger logging.Logger, collector metrics.Collector) (*Client, error) {
	opts := []ClientOption{
		WithTimeout(cfg.Timeout),
		WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		WithSuppressHTTPError(cfg.SuppressHTTPError),
		WithSudo(cfg.Sudo),
		WithUserAgent(cfg.UserAgent),
		WithLogger(logger),
		WithMetrics(collector),
	}
	if cfg.PrivateToken != "" {
		opts = append(opts, WithPrivateToken(cfg.PrivateToken))
	}
	if cfg.OAuthToken != "" {
		opts = append(opts, WithOAuthToken(cfg.OAuthToken))
	}
	if cfg.BasicAuthUser != "" {
		opts = append(opts, WithBasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPassword))
	}
	return NewClient(cfg.Host, opts...)
}

// normalizeHost приводит host к виду scheme://host без завершающего "/".
func normalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", NewValidationError("host", "не может быть пустым")
	}
	host = strings.TrimRight(host, "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = constants.DefaultScheme + host
	}
	return host, nil
}

func buildHTTPClient(s *clientSettings) *http.Client {
	if s.httpClient != nil {
		hc := *s.httpClient
		if s.timeoutSet {
			hc.Timeout = s.timeout
		}
		return &hc
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // включается явно пользователем
	}
	return &http.Client{Timeout: s.timeout, Transport: transport}
}

// Host возвращает нормализованный адрес сервера.
func (c *Client) Host() string { return c.host }

// APIURL возвращает базовый URL API, например "https://gitlab.example.com/api/v3".
func (c *Client) APIURL() string { return c.apiURL }

// Token возвращает текущий private token (после Login — полученный от сервера).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.privateToken
}

// Sudo возвращает пользователя, заданного для заголовка SUDO.
func (c *Client) Sudo() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sudo
}

// SetSudo задаёт пользователя для заголовка SUDO последующих вызовов.
// Пустая строка убирает заголовок.
func (c *Client) SetSudo(user string) {
	c.mu.Lock()
	c.sudo = user
	c.mu.Unlock()
}

func (c *Client) setPrivateToken(token string) {
	c.mu.Lock()
	c.privateToken = token
	c.tokenSource = nil
	c.mu.Unlock()
}

func (c *Client) authKind() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.tokenSource != nil:
		return "oauth"
	case c.privateToken != "":
		return "private_token"
	default:
		return "none"
	}
}
