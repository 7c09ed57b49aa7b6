package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "с причиной",
			err:  NewAppError(ErrConfigLoad, "не удалось прочитать файл", errors.New("permission denied")),
			want: "CONFIG.LOAD_FAILED: не удалось прочитать файл (permission denied)",
		},
		{
			name: "без причины",
			err:  NewAppError(ErrGitLabNotFound, "404 Not found", nil),
			want: "GITLAB.NOT_FOUND: 404 Not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("исходная ошибка")
	err := fmt.Errorf("обёртка: %w", NewAppError(ErrGitLabConnect, "нет соединения", cause))

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrGitLabConnect, appErr.Code)
}

func TestAppError_JSONOmitsCause(t *testing.T) {
	data, err := json.Marshal(NewAppError(ErrGitLabAuth, "401 Unauthorized", errors.New("token=secret")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"GITLAB.AUTH_FAILED","message":"401 Unauthorized"}`, string(data))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrConfigValidate, CodeOf(fmt.Errorf("x: %w", NewAppError(ErrConfigValidate, "m", nil))))
	assert.Empty(t, CodeOf(errors.New("plain")))
	assert.Empty(t, CodeOf(nil))
}
