package gitlab_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Kargones/gitlab-client/pkg/apperrors"
	"github.com/Kargones/gitlab-client/pkg/gitlab"
	"github.com/Kargones/gitlab-client/pkg/logging"
)

func TestGetUsers_ExactList(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/users", http.StatusOK, `[{"id": 1, "username": "root"}]`)
	c := newTestClient(t, srv)

	users, err := c.GetUsers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "root", users[0].Username)
}

func TestGetUsers_EmptyListIsNotNil(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/users", http.StatusOK, `[]`)
	c := newTestClient(t, srv)

	users, err := c.GetUsers(context.Background(), &gitlab.ListUsersOptions{
		ListOptions: gitlab.ListOptions{Page: 2, PerPage: 50},
		Search:      gitlab.Ptr("jo"),
	})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	q := srv.last(t).Query
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("per_page"))
	assert.Equal(t, "jo", q.Get("search"))
	assert.False(t, q.Has("username"))
}

func TestDeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodDelete, "/users/14", http.StatusNotFound, `{"message": "not found"}`)
	ctx := context.Background()

	t.Run("ошибка без подавления", func(t *testing.T) {
		c := newTestClient(t, srv)

		ok, err := c.DeleteUser(ctx, 14)
		require.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "not found")
		assert.True(t, gitlab.IsNotFoundError(err))
		assert.Equal(t, http.StatusNotFound, gitlab.StatusCode(err))

		var glErr *gitlab.GitLabError
		require.ErrorAs(t, err, &glErr)
		assert.Equal(t, "not found", glErr.Message)
		assert.Equal(t, http.MethodDelete, glErr.Method)
		assert.Equal(t, "/users/14", glErr.Path)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrGitLabNotFound, appErr.Code)
	})

	t.Run("false при подавлении клиента", func(t *testing.T) {
		c := newTestClient(t, srv, gitlab.WithSuppressHTTPError(true))

		ok, err := c.DeleteUser(ctx, 14)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("подавление на вызов", func(t *testing.T) {
		c := newTestClient(t, srv)

		ok, err := c.DeleteUser(ctx, 14, gitlab.SuppressHTTPError(true))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("вызов отменяет подавление клиента", func(t *testing.T) {
		c := newTestClient(t, srv, gitlab.WithSuppressHTTPError(true))

		_, err := c.DeleteUser(ctx, 14, gitlab.SuppressHTTPError(false))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSuppressedFetchReturnsNil(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	c := newTestClient(t, srv, gitlab.WithSuppressHTTPError(true))
	ctx := context.Background()

	project, err := c.GetProject(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, project)

	projects, err := c.GetProjects(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, projects)

	raw, err := c.GetRawBlob(ctx, 1, "abc")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
		want   string
	}{
		{"401", http.StatusUnauthorized, `{"message":"401 Unauthorized"}`, gitlab.IsAuthError, "401 Unauthorized"},
		{"403", http.StatusForbidden, `{"message":"403 Forbidden"}`, gitlab.IsAuthError, "403 Forbidden"},
		{"400 с полями", http.StatusBadRequest, `{"message":{"name":["can't be blank"]}}`, gitlab.IsValidationError, "can't be blank"},
		{"409", http.StatusConflict, `{"message":"Email has already been taken"}`, gitlab.IsValidationError, "already been taken"},
		{"500 без тела", http.StatusInternalServerError, ``, gitlab.IsAPIError, "500 Internal Server Error"},
		{"error поле", http.StatusUnprocessableEntity, `{"error":"invalid_grant"}`, gitlab.IsValidationError, "invalid_grant"},
		{"504", http.StatusGatewayTimeout, `not json`, gitlab.IsTimeoutError, "504 Gateway Timeout"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newFakeGitLab(t)
			srv.on(http.MethodPost, "/users", tt.status, tt.body)
			c := newTestClient(t, srv)

			user, err := c.CreateUser(context.Background(), &gitlab.CreateUserOptions{})
			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, tt.check(err), "неверная классификация: %v", err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.status, gitlab.StatusCode(err))
		})
	}
}

func TestAcceptStatus(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/projects/1", http.StatusAccepted, `{"id":1}`)
	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.GetProject(ctx, 1)
	require.Error(t, err)

	project, err := c.GetProject(ctx, 1, gitlab.AcceptStatus(http.StatusOK, http.StatusAccepted))
	require.NoError(t, err)
	assert.Equal(t, int64(1), project.ID)
}

func TestNonJSONSuccessKeepsDefault(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodDelete, "/projects/1", http.StatusNoContent, ``)
	srv.on(http.MethodGet, "/projects/2", http.StatusOK, `<html>`)
	c := newTestClient(t, srv)
	ctx := context.Background()

	ok, err := c.DeleteProject(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	v := map[string]any{"default": true}
	ok, err = c.Get(ctx, "/projects/2", nil, &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"default": true}, v)
}

func TestTransportHelpers_Params(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/version", http.StatusOK, `{"version":"8.0.0"}`)
	srv.on(http.MethodPost, "/projects/1/labels", http.StatusCreated, `{}`)
	srv.on(http.MethodPut, "/projects/1/labels", http.StatusOK, `{}`)
	c := newTestClient(t, srv)
	ctx := context.Background()

	var version struct {
		Version string `json:"version"`
	}
	ok, err := c.Get(ctx, "/version", url.Values{"detail": {"1"}}, &version)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "8.0.0", version.Version)
	assert.Equal(t, "1", srv.last(t).Query.Get("detail"))

	ok, err = c.Post(ctx, "/projects/1/labels", map[string]string{"name": "bug"}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	req := srv.last(t)
	assert.Equal(t, "bug", req.Form.Get("name"))
	assert.Empty(t, req.Query)

	var raw string
	ok, err = c.Put(ctx, "/projects/1/labels", struct {
		Name  string  `url:"name"`
		Color *string `url:"color,omitempty"`
	}{Name: "bug"}, &raw)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", raw)
	assert.False(t, srv.last(t).Form.Has("color"))
}

func TestPathEscaping(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/projects/group%2Fapp", http.StatusOK, `{"id":7,"path_with_namespace":"group/app"}`)
	c := newTestClient(t, srv)

	project, err := c.GetProject(context.Background(), "group/app")
	require.NoError(t, err)
	assert.Equal(t, "group/app", project.PathWithNamespace)
	assert.Equal(t, "/projects/group%2Fapp", srv.last(t).Path)
}

func TestTransportError_NotSuppressed(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	c := newTestClient(t, srv, gitlab.WithSuppressHTTPError(true))
	srv.Close()

	ok, err := c.DeleteUser(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, gitlab.IsConnectionError(err))
	assert.Zero(t, gitlab.StatusCode(err))
}

func TestTransportError_Timeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := newFakeGitLab(t)
	srv.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(block) })
	c := newTestClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.CurrentUser(ctx)
	require.Error(t, err)
	assert.True(t, gitlab.IsTimeoutError(err), "ожидалась ошибка таймаута: %v", err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestMetricsRecorded(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/projects/5", http.StatusOK, `{"id":5}`)
	collector := &fakeCollector{}
	c := newTestClient(t, srv, gitlab.WithMetrics(collector), gitlab.WithSuppressHTTPError(true))
	ctx := context.Background()

	_, err := c.GetProject(ctx, 5)
	require.NoError(t, err)
	_, err = c.DeleteUser(ctx, 14)
	require.NoError(t, err)

	collector.mu.Lock()
	defer collector.mu.Unlock()
	require.Len(t, collector.records, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/projects/5", http.StatusOK, true}, collector.records[0])
	assert.Equal(t, recordedRequest{http.MethodDelete, "/users/14", http.StatusNotFound, false}, collector.records[1])
}

func TestTracingSpans(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	srv.on(http.MethodGet, "/projects/5", http.StatusOK, `{"id":5}`)
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	c := newTestClient(t, srv, gitlab.WithTracerProvider(tp))
	ctx := context.Background()

	_, err := c.GetProject(ctx, 5)
	require.NoError(t, err)
	_, err = c.DeleteUser(ctx, 14)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "gitlab GET /projects/:id", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "gitlab DELETE /users/:id", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var status int64
	for _, kv := range spans[1].Attributes() {
		if kv.Key == "http.response.status_code" {
			status = kv.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(http.StatusNotFound), status)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	srv := newFakeGitLab(t)
	var buf bytes.Buffer
	logger := logging.NewLoggerWithWriter(logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}, &buf)
	c := newTestClient(t, srv, gitlab.WithLogger(logger))

	_, err := c.DeleteUser(context.Background(), 14)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"method":"DELETE"`)
	assert.Contains(t, out, `"endpoint":"/users/:id"`)
	assert.Contains(t, out, `"status":404`)
	assert.NotContains(t, out, "secret")
}
