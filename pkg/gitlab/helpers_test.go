package gitlab_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitlab-client/pkg/gitlab"
)

// capturedRequest — запрос, полученный тестовым сервером.
type capturedRequest struct {
	Method string
	// Path — экранированный путь без префикса /api/v3.
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

type cannedResponse struct {
	status int
	body   string
	header http.Header
}

// fakeGitLab — тестовый сервер GitLab API v3 с заранее заданными ответами.
type fakeGitLab struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []capturedRequest
}

func newFakeGitLab(t *testing.T) *fakeGitLab {
	t.Helper()

	f := &fakeGitLab{responses: make(map[string]cannedResponse)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// on задаёт ответ на method path. path указывается относительно /api/v3
// в экранированном виде, например "/projects/group%2Fapp".
func (f *fakeGitLab) on(method, path string, status int, body string) {
	f.onWithHeader(method, path, status, body, nil)
}

func (f *fakeGitLab) onWithHeader(method, path string, status int, body string, header http.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = cannedResponse{status: status, body: body, header: header}
}

func (f *fakeGitLab) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(body))
	path := strings.TrimPrefix(r.URL.EscapedPath(), "/api/v3")

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Form:   form,
		Header: r.Header.Clone(),
	})
	resp, ok := f.responses[r.Method+" "+path]
	f.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusNotFound, body: `{"message":"404 Not found"}`}
	}
	for k, vs := range resp.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

// last возвращает последний полученный запрос.
func (f *fakeGitLab) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "сервер не получил ни одного запроса")
	return f.requests[len(f.requests)-1]
}

func (f *fakeGitLab) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// newTestClient создаёт клиент с private token "secret" для сервера f.
func newTestClient(t *testing.T, f *fakeGitLab, opts ...gitlab.ClientOption) *gitlab.Client {
	t.Helper()
	opts = append([]gitlab.ClientOption{gitlab.WithPrivateToken("secret")}, opts...)
	c, err := gitlab.NewClient(f.URL, opts...)
	require.NoError(t, err)
	return c
}

// recordedRequest — вызов Collector.RecordRequest.
type recordedRequest struct {
	method   string
	endpoint string
	status   int
	success  bool
}

// fakeCollector запоминает вызовы RecordRequest.
type fakeCollector struct {
	mu      sync.Mutex
	records []recordedRequest
}

func (c *fakeCollector) RecordRequest(method, endpoint string, status int, _ time.Duration, success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, recordedRequest{method, endpoint, status, success})
}

func (c *fakeCollector) Push(_ context.Context) error { return nil }
