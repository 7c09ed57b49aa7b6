package gitlab_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/Kargones/gitlab-client/pkg/config"
	"github.com/Kargones/gitlab-client/pkg/gitlab"
	"github.com/Kargones/gitlab-client/pkg/logging"
	"github.com/Kargones/gitlab-client/pkg/metrics"
)

func TestNewClient_HostNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		host     string
		wantHost string
	}{
		{name: "без схемы", host: "gitlab.example.com", wantHost: "https://gitlab.example.com"},
		{name: "завершающий слэш", host: "https://gitlab.example.com/", wantHost: "https://gitlab.example.com"},
		{name: "http сохраняется", host: "http://localhost:8080", wantHost: "http://localhost:8080"},
		{name: "пробелы", host: "  gitlab.local//  ", wantHost: "https://gitlab.local"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := gitlab.NewClient(tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, c.Host())
			assert.Equal(t, tt.wantHost+"/api/v3", c.APIURL())
		})
	}
}

func TestNewClient_EmptyHost(t *testing.T) {
	t.Parallel()

	c, err := gitlab.NewClient("   ")
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, gitlab.IsValidationError(err))
}

func TestNewClient_BothTokens(t *testing.T) {
	t.Parallel()

	_, err := gitlab.NewClient("gitlab.local",
		gitlab.WithPrivateToken("private"),
		gitlab.WithOAuthToken("oauth"),
	)
	require.Error(t, err)
	assert.True(t, gitlab.IsValidationError(err))
}

func TestClient_PrivateTokenHeader(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/user", http.StatusOK, `{"id":1,"username":"root"}`)
	c := newTestClient(t, srv)

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "root", user.Username)

	req := srv.last(t)
	assert.Equal(t, "secret", req.Header.Get("PRIVATE-TOKEN"))
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("SUDO"))
	assert.Contains(t, req.Header.Get("User-Agent"), "gitlab-client/")
}

func TestClient_OAuthHeader(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/user", http.StatusOK, `{"id":1}`)

	c, err := gitlab.NewClient(srv.URL, gitlab.WithOAuthToken("oauth-token"))
	require.NoError(t, err)

	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)

	req := srv.last(t)
	assert.Equal(t, "Bearer oauth-token", req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("PRIVATE-TOKEN"))
}

func TestClient_TokenSource(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/user", http.StatusOK, `{"id":1}`)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source", TokenType: "Bearer"})
	c, err := gitlab.NewClient(srv.URL, gitlab.WithTokenSource(ts))
	require.NoError(t, err)

	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer from-source", srv.last(t).Header.Get("Authorization"))
}

func TestClient_Sudo(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/user", http.StatusOK, `{"id":1}`)
	c := newTestClient(t, srv, gitlab.WithSudo("alice"))
	ctx := context.Background()

	_, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", srv.last(t).Header.Get("SUDO"))

	_, err = c.CurrentUser(ctx, gitlab.AsUser("bob"))
	require.NoError(t, err)
	assert.Equal(t, "bob", srv.last(t).Header.Get("SUDO"))

	_, err = c.CurrentUser(ctx, gitlab.WithoutSudo())
	require.NoError(t, err)
	assert.Empty(t, srv.last(t).Header.Get("SUDO"))

	c.SetSudo("")
	assert.Empty(t, c.Sudo())
	_, err = c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, srv.last(t).Header.Get("SUDO"))

	c.SetSudo("carol")
	_, err = c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "carol", srv.last(t).Header.Get("SUDO"))
}

func TestClient_BasicAuthAndHeaders(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/user", http.StatusOK, `{"id":1}`)
	c := newTestClient(t, srv,
		gitlab.WithBasicAuth("proxy", "pass"),
		gitlab.WithUserAgent("custom-agent/1.0"),
	)

	_, err := c.CurrentUser(context.Background(), gitlab.WithHeader("X-Request-ID", "req-1"))
	require.NoError(t, err)

	req := srv.last(t)
	assert.Contains(t, req.Header.Get("Authorization"), "Basic ")
	assert.Equal(t, "secret", req.Header.Get("PRIVATE-TOKEN"))
	assert.Equal(t, "custom-agent/1.0", req.Header.Get("User-Agent"))
	assert.Equal(t, "req-1", req.Header.Get("X-Request-ID"))
}

func TestNewClientFromConfig(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodDelete, "/users/14", http.StatusNotFound, `{"message":"not found"}`)

	cfg := config.GitLabConfig{
		Host:              srv.URL,
		PrivateToken:      "from-config",
		Sudo:              "admin",
		Timeout:           5 * time.Second,
		SuppressHTTPError: true,
	}
	c, err := gitlab.NewClientFromConfig(cfg, logging.NewNopLogger(), metrics.NewNopCollector())
	require.NoError(t, err)
	assert.Equal(t, "from-config", c.Token())
	assert.Equal(t, "admin", c.Sudo())

	ok, err := c.DeleteUser(context.Background(), 14)
	require.NoError(t, err)
	assert.False(t, ok)

	req := srv.last(t)
	assert.Equal(t, "from-config", req.Header.Get("PRIVATE-TOKEN"))
	assert.Equal(t, "admin", req.Header.Get("SUDO"))
}

func TestClient_ImplementsAPI(t *testing.T) {
	t.Parallel()

	c, err := gitlab.NewClient("gitlab.local")
	require.NoError(t, err)

	var api gitlab.API = c
	var _ gitlab.BranchService = api
	var _ gitlab.ProjectService = api
}
