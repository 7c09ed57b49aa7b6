package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitLabError_Error(t *testing.T) {
	err := &GitLabError{
		Code:       ErrGitLabNotFound,
		Message:    "404 Project Not Found",
		StatusCode: http.StatusNotFound,
		Method:     http.MethodGet,
		Path:       "/projects/1",
	}
	assert.Equal(t, "[GITLAB.NOT_FOUND] GET /projects/1 (404): 404 Project Not Found", err.Error())

	cause := errors.New("dial tcp: connection refused")
	wrapped := NewGitLabError(ErrGitLabConnect, "ошибка при выполнении запроса", cause)
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.ErrorIs(t, wrapped, cause)
}

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"строка", 404, `{"message":"404 Not found"}`, "404 Not found"},
		{"объект", 400, `{"message":{"path":["has already been taken"]}}`, `{"path":["has already been taken"]}`},
		{"поле error", 401, `{"error":"invalid_token"}`, "invalid_token"},
		{"null", 500, `{"message":null}`, "500 Internal Server Error"},
		{"не JSON", 502, `<html>Bad Gateway</html>`, "502 Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serverMessage(tt.status, []byte(tt.body)))
		})
	}
}

func TestNewTransportError(t *testing.T) {
	timeout := newTransportError(http.MethodGet, "/users", fmt.Errorf("fetch: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrGitLabTimeout, timeout.Code)

	canceled := newTransportError(http.MethodGet, "/users", context.Canceled)
	assert.Equal(t, ErrGitLabConnect, canceled.Code)
	assert.Equal(t, "запрос отменён", canceled.Message)

	refused := newTransportError(http.MethodGet, "/users", errors.New("connection refused"))
	assert.True(t, IsConnectionError(refused))
}

func TestPathEscape(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1, "1"},
		{int64(42), "42"},
		{int32(7), "7"},
		{"group/app", "group%2Fapp"},
		{"feature/a b", "feature%2Fa%20b"},
		{"v1.0", "v1.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pathEscape(tt.in), "pathEscape(%v)", tt.in)
	}
}

func TestEncodeParams(t *testing.T) {
	values, err := encodeParams(nil)
	require.NoError(t, err)
	assert.Nil(t, values)

	values, err = encodeParams(map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"a": {"1"}}, values)

	values, err = encodeParams(&EditUserOptions{Name: Ptr("n"), Admin: Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"name": {"n"}, "admin": {"true"}}, values)

	values, err = encodeParams(&memberOptions{UserID: 3, AccessLevel: ParseAccessLevel("Owner")})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"user_id": {"3"}, "access_level": {"50"}}, values)

	_, err = encodeParams(42)
	assert.Error(t, err)
}

func TestDecodeBody(t *testing.T) {
	var raw []byte
	require.NoError(t, decodeBody([]byte("bytes"), &raw))
	assert.Equal(t, "bytes", string(raw))

	var user User
	require.NoError(t, decodeBody(nil, &user))
	require.NoError(t, decodeBody([]byte(`{"id":3}`), &user))
	assert.Equal(t, int64(3), user.ID)

	assert.Error(t, decodeBody([]byte("null?"), &user))
	assert.NoError(t, decodeBody([]byte("x"), nil))
}

func TestArchiveFileName(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{`attachment; filename="app-master.tar.gz"`, "app-master.tar.gz"},
		{`attachment; filename=app.zip`, "app.zip"},
		{`attachment; filename="/etc/passwd"`, "passwd"},
		{`attachment; filename=".."`, ""},
		{`attachment`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		h := http.Header{}
		if tt.header != "" {
			h.Set("Content-Disposition", tt.header)
		}
		assert.Equal(t, tt.want, archiveFileName(h), "Content-Disposition: %q", tt.header)
	}
}
