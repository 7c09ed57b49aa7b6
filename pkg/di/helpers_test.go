package di

import (
	"fmt"
	"os"
	"testing"

	"github.com/Kargones/gitlab-client/pkg/config"
)

// unsetEnv удаляет переменную окружения на время теста.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	_ = os.Unsetenv(key)
	t.Cleanup(func() { _ = os.Setenv(key, old) })
}

// parseTestConfig собирает конфигурацию из YAML с заданным host.
func parseTestConfig(t *testing.T, host string) (*config.Config, error) {
	t.Helper()
	for _, key := range []string{
		"GITLAB_HOST", "GITLAB_PRIVATE_TOKEN", "GITLAB_OAUTH_TOKEN", "GITLAB_SUDO",
		"GL_METRICS_ENABLED", "GL_TRACING_ENABLED",
	} {
		unsetEnv(t, key)
	}

	data := fmt.Sprintf(`
gitlab:
  host: %q
  privateToken: token
logging:
  level: debug
`, host)
	return config.Parse([]byte(data))
}
