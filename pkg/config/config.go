// Package config загружает настройки клиента GitLab из YAML файла и
// переменных окружения.
//
// Порядок применения: значения из файла, затем переменные окружения
// (GITLAB_*, GL_LOG_*, GL_METRICS_*, GL_TRACING_*), затем env-default для
// оставшихся пустыми полей.
package config

import (
	"os"
	"time"

	"github.com/Kargones/gitlab-client/internal/constants"
	"github.com/Kargones/gitlab-client/pkg/apperrors"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
	"github.com/Kargones/gitlab-client/pkg/tracing"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config — корневая конфигурация.
type Config struct {
	GitLab  GitLabConfig  `yaml:"gitlab"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// GitLabConfig описывает подключение к серверу GitLab.
type GitLabConfig struct {
	// Host — адрес сервера, например "https://gitlab.example.com".
	// Без схемы подставляется https://.
	Host string `yaml:"host" env:"GITLAB_HOST"`

	// PrivateToken и OAuthToken взаимоисключающие.
	PrivateToken string `yaml:"privateToken" env:"GITLAB_PRIVATE_TOKEN"`
	OAuthToken   string `yaml:"oauthToken" env:"GITLAB_OAUTH_TOKEN"`

	// Sudo — пользователь, от имени которого выполняются запросы.
	Sudo string `yaml:"sudo" env:"GITLAB_SUDO"`

	// InsecureSkipVerify отключает проверку TLS сертификата сервера.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify" env:"GITLAB_INSECURE_SKIP_VERIFY"`

	// Timeout ограничивает один HTTP запрос.
	Timeout time.Duration `yaml:"timeout" env:"GITLAB_TIMEOUT" env-default:"30s"`

	// SuppressHTTPError превращает ошибочные HTTP статусы в пустой результат без ошибки.
	SuppressHTTPError bool `yaml:"suppressHttpError" env:"GITLAB_SUPPRESS_HTTP_ERROR"`

	// BasicAuthUser и BasicAuthPassword нужны, если сервер закрыт прокси с basic auth.
	BasicAuthUser     string `yaml:"basicAuthUser" env:"GITLAB_BASIC_AUTH_USER"`
	BasicAuthPassword string `yaml:"basicAuthPassword" env:"GITLAB_BASIC_AUTH_PASSWORD"`

	UserAgent string `yaml:"userAgent" env:"GITLAB_USER_AGENT"`
}

// LoggingConfig — настройки логирования.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"GL_LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"GL_LOG_FORMAT" env-default:"text"`
	Output     string `yaml:"output" env:"GL_LOG_OUTPUT" env-default:"stderr"`
	FilePath   string `yaml:"filePath" env:"GL_LOG_FILE_PATH" env-default:"/var/log/gitlab-client.log"`
	MaxSize    int    `yaml:"maxSize" env:"GL_LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"maxBackups" env:"GL_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"maxAge" env:"GL_LOG_MAX_AGE" env-default:"7"`
	// Compress: env-default:"true" перекрывает явное compress: false из YAML,
	// отключить сжатие можно только через GL_LOG_COMPRESS=false.
	Compress bool `yaml:"compress" env:"GL_LOG_COMPRESS" env-default:"true"`
}

// MetricsConfig — настройки Prometheus метрик.
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"GL_METRICS_ENABLED"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"GL_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"GL_METRICS_JOB_NAME" env-default:"gitlab-client"`
	Timeout        time.Duration `yaml:"timeout" env:"GL_METRICS_TIMEOUT" env-default:"10s"`
	InstanceLabel  string        `yaml:"instanceLabel" env:"GL_METRICS_INSTANCE_LABEL"`
}

// TracingConfig — настройки OpenTelemetry.
type TracingConfig struct {
	Enabled      bool          `yaml:"enabled" env:"GL_TRACING_ENABLED"`
	Endpoint     string        `yaml:"endpoint" env:"GL_TRACING_ENDPOINT"`
	ServiceName  string        `yaml:"serviceName" env:"GL_TRACING_SERVICE_NAME" env-default:"gitlab-client"`
	Environment  string        `yaml:"environment" env:"GL_TRACING_ENVIRONMENT" env-default:"production"`
	Insecure     bool          `yaml:"insecure" env:"GL_TRACING_INSECURE"`
	Timeout      time.Duration `yaml:"timeout" env:"GL_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `yaml:"samplingRate" env:"GL_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// Load читает YAML файл path и применяет переменные окружения.
// Пустой path эквивалентен LoadFromEnv.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromEnv()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось прочитать файл конфигурации", err)
	}
	return Parse(data)
}

// LoadFromEnv собирает конфигурацию только из переменных окружения.
func LoadFromEnv() (*Config, error) {
	return Parse(nil)
}

// Parse разбирает YAML и применяет переменные окружения, затем валидирует результат.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigParse, "некорректный YAML конфигурации", err)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse, "некорректные переменные окружения", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля и согласованность настроек.
func (c *Config) Validate() error {
	if c.GitLab.Host == "" {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "не указан host сервера GitLab", nil)
	}
	if c.GitLab.PrivateToken != "" && c.GitLab.OAuthToken != "" {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"privateToken и oauthToken нельзя указывать одновременно", nil)
	}
	if c.GitLab.Timeout < 0 {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "timeout не может быть отрицательным", nil)
	}
	m := c.Metrics.ToMetrics()
	if err := m.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "некорректная конфигурация метрик", err)
	}
	tr := c.Tracing.ToTracing()
	if err := tr.Validate(); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate, "некорректная конфигурация трейсинга", err)
	}
	return nil
}

// ToLogging конвертирует настройки в logging.Config, подставляя значения
// по умолчанию вместо пустых.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	if l.Level != "" {
		cfg.Level = l.Level
	}
	if l.Format != "" {
		cfg.Format = l.Format
	}
	if l.Output != "" {
		cfg.Output = l.Output
	}
	if l.FilePath != "" {
		cfg.FilePath = l.FilePath
	}
	if l.MaxSize > 0 {
		cfg.MaxSize = l.MaxSize
	}
	if l.MaxBackups > 0 {
		cfg.MaxBackups = l.MaxBackups
	}
	if l.MaxAge > 0 {
		cfg.MaxAge = l.MaxAge
	}
	cfg.Compress = l.Compress
	return cfg
}

// ToMetrics конвертирует настройки в metrics.Config.
func (m MetricsConfig) ToMetrics() metrics.Config {
	return metrics.Config{
		Enabled:        m.Enabled,
		PushgatewayURL: m.PushgatewayURL,
		JobName:        m.JobName,
		Timeout:        m.Timeout,
		InstanceLabel:  m.InstanceLabel,
	}
}

// ToTracing конвертирует настройки в tracing.Config.
func (t TracingConfig) ToTracing() tracing.Config {
	return tracing.Config{
		Enabled:      t.Enabled,
		Endpoint:     t.Endpoint,
		ServiceName:  t.ServiceName,
		Version:      constants.Version,
		Environment:  t.Environment,
		Insecure:     t.Insecure,
		Timeout:      t.Timeout,
		SamplingRate: t.SamplingRate,
	}
}
