package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kargones/gitlab-client/pkg/logging"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{
		Enabled:        true,
		PushgatewayURL: url,
		JobName:        "test-job",
		Timeout:        5 * time.Second,
		InstanceLabel:  "test-host",
	}
}

func TestPrometheusCollector_RecordRequest(t *testing.T) {
	collector, err := NewPrometheusCollector(testConfig("http://localhost:9091"), logging.NewNopLogger())
	require.NoError(t, err)

	collector.RecordRequest("GET", "/projects/12/repository/branches", 200, 120*time.Millisecond, true)
	collector.RecordRequest("GET", "/projects/13/repository/branches", 200, 80*time.Millisecond, true)
	collector.RecordRequest("DELETE", "/users/14", 404, 10*time.Millisecond, false)

	families, err := collector.Registry().Gather()
	require.NoError(t, err)
	names := make(map[string]*dto.MetricFamily)
	for _, f := range families {
		names[f.GetName()] = f
	}

	total := names["gitlab_client_requests_total"]
	require.NotNil(t, total)
	counts := make(map[string]float64)
	for _, m := range total.GetMetric() {
		labels := make(map[string]string)
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		counts[labels["method"]+" "+labels["endpoint"]+" "+labels["status"]] = m.GetCounter().GetValue()
	}
	assert.InDelta(t, 2, counts["GET /projects/:id/repository/branches 200"], 0)
	assert.InDelta(t, 1, counts["DELETE /users/:id 404"], 0)

	assert.Contains(t, names, "gitlab_client_request_duration_seconds")
	assert.Contains(t, names, "gitlab_client_request_errors_total")
}

func TestEndpointLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/users", "/users"},
		{"/users/14", "/users/:id"},
		{"/projects/group%2Fapp/issues?page=2", "/projects/:id/issues"},
		{"/projects/1/repository/commits/abc123", "/projects/:id/repository/commits/abc123"},
		{"/groups/5/members/7", "/groups/:id/members/:id"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EndpointLabel(tt.in))
		})
	}
}

func TestPrometheusCollector_Push(t *testing.T) {
	var calls atomic.Int32
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(testConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)
	collector.RecordRequest("GET", "/users", 200, time.Millisecond, true)

	require.NoError(t, collector.Push(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/test-job/instance/test-host", path)
}

func TestPrometheusCollector_PushErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(testConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)
	assert.NoError(t, collector.Push(context.Background()))
}

func TestPrometheusCollector_PushCancelled(t *testing.T) {
	collector, err := NewPrometheusCollector(testConfig("http://127.0.0.1:1"), logging.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, collector.Push(ctx))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"выключено", Config{}, nil},
		{"без URL", Config{Enabled: true, JobName: "j", Timeout: time.Second}, ErrPushgatewayURLRequired},
		{"кривой URL", Config{Enabled: true, PushgatewayURL: "pushgateway", JobName: "j", Timeout: time.Second}, ErrPushgatewayURLInvalid},
		{"без job", Config{Enabled: true, PushgatewayURL: "http://p:9091", Timeout: time.Second}, ErrJobNameRequired},
		{"нулевой таймаут", Config{Enabled: true, PushgatewayURL: "http://p:9091", JobName: "j"}, ErrInvalidTimeout},
		{"валидно", testConfig("http://p:9091"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCollector(t *testing.T) {
	c, err := NewCollector(DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	assert.IsType(t, &NopCollector{}, c)

	c, err = NewCollector(testConfig("http://p:9091"), logging.NewNopLogger())
	require.NoError(t, err)
	assert.IsType(t, &PrometheusCollector{}, c)

	_, err = NewCollector(Config{Enabled: true}, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrPushgatewayURLRequired)
}
