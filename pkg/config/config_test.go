package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kargones/gitlab-client/pkg/apperrors"
	"github.com/Kargones/gitlab-client/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные, которые могут прийти из окружения CI.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GITLAB_HOST", "GITLAB_PRIVATE_TOKEN", "GITLAB_OAUTH_TOKEN", "GITLAB_SUDO",
		"GITLAB_TIMEOUT", "GITLAB_SUPPRESS_HTTP_ERROR", "GITLAB_INSECURE_SKIP_VERIFY",
		"GL_LOG_LEVEL", "GL_METRICS_ENABLED", "GL_TRACING_ENABLED",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

const sampleYAML = `
gitlab:
  host: gitlab.example.com
  privateToken: yaml-token
  timeout: 45s
  sudo: root
logging:
  level: debug
  format: json
metrics:
  enabled: true
  pushgatewayUrl: http://pushgateway:9091
`

func TestParse_YAMLWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "gitlab.example.com", cfg.GitLab.Host)
	assert.Equal(t, "yaml-token", cfg.GitLab.PrivateToken)
	assert.Equal(t, 45*time.Second, cfg.GitLab.Timeout)
	assert.Equal(t, "root", cfg.GitLab.Sudo)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, 100, cfg.Logging.MaxSize)
	assert.Equal(t, "gitlab-client", cfg.Metrics.JobName)
	assert.Equal(t, 10*time.Second, cfg.Metrics.Timeout)
	assert.False(t, cfg.Tracing.Enabled)
	assert.InDelta(t, 1.0, cfg.Tracing.SamplingRate, 0)
}

func TestParse_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITLAB_PRIVATE_TOKEN", "env-token")
	t.Setenv("GITLAB_SUPPRESS_HTTP_ERROR", "true")
	t.Setenv("GL_LOG_LEVEL", "warn")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.GitLab.PrivateToken)
	assert.True(t, cfg.GitLab.SuppressHTTPError)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITLAB_HOST", "https://gitlab.local")
	t.Setenv("GITLAB_OAUTH_TOKEN", "oauth")
	t.Setenv("GITLAB_TIMEOUT", "5s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.local", cfg.GitLab.Host)
	assert.Equal(t, "oauth", cfg.GitLab.OAuthToken)
	assert.Equal(t, 5*time.Second, cfg.GitLab.Timeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gitlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gitlab.example.com", cfg.GitLab.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigLoad, apperrors.CodeOf(err))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"битый YAML", "gitlab: [", apperrors.ErrConfigParse},
		{"без host", "gitlab:\n  privateToken: x\n", apperrors.ErrConfigValidate},
		{"оба токена", "gitlab:\n  host: h\n  privateToken: a\n  oauthToken: b\n", apperrors.ErrConfigValidate},
		{"метрики без URL", "gitlab:\n  host: h\nmetrics:\n  enabled: true\n", apperrors.ErrConfigValidate},
		{"трейсинг без endpoint", "gitlab:\n  host: h\ntracing:\n  enabled: true\n", apperrors.ErrConfigValidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}

func TestLoggingConfig_ToLogging(t *testing.T) {
	cfg := LoggingConfig{Level: "debug", MaxSize: 0, Compress: false}.ToLogging()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, logging.DefaultFormat, cfg.Format)
	assert.Equal(t, logging.DefaultMaxSize, cfg.MaxSize)
	assert.False(t, cfg.Compress)
}

func TestTracingConfig_ToTracing(t *testing.T) {
	tr := TracingConfig{Enabled: true, Endpoint: "http://jaeger:4318", ServiceName: "svc", Timeout: time.Second, SamplingRate: 0.25}.ToTracing()
	assert.NoError(t, tr.Validate())
	assert.NotEmpty(t, tr.Version)
}
