package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Kargones/gitlab-client/pkg/apperrors"
)

// Коды ошибок GitLab операций.
const (
	ErrGitLabConnect    = apperrors.ErrGitLabConnect
	ErrGitLabAPI        = apperrors.ErrGitLabAPI
	ErrGitLabAuth       = apperrors.ErrGitLabAuth
	ErrGitLabTimeout    = apperrors.ErrGitLabTimeout
	ErrGitLabNotFound   = apperrors.ErrGitLabNotFound
	ErrGitLabValidation = apperrors.ErrGitLabValidation
)

// GitLabError — ошибка обращения к GitLab API.
//
// Для ответов с неуспешным статусом Message содержит поле "message"
// (или "error") из тела ответа, а если его нет, текст статуса.
type GitLabError struct {
	// Code — одна из констант ErrGitLab*.
	Code string
	// Message — сообщение сервера или описание ошибки транспорта.
	Message string
	// Cause — исходная ошибка транспорта, если есть.
	Cause error
	// StatusCode — HTTP статус ответа, 0 если ответ не получен.
	StatusCode int
	// Method и Path — запрос, который завершился ошибкой.
	Method string
	Path   string
}

// Error реализует интерфейс error.
func (e *GitLabError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.Code)
	if e.Method != "" {
		fmt.Fprintf(&b, " %s %s", e.Method, e.Path)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap возвращает исходную ошибку.
func (e *GitLabError) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает машиночитаемый код.
func (e *GitLabError) ErrorCode() string {
	return e.Code
}

// As позволяет получить *apperrors.AppError через errors.As.
func (e *GitLabError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = apperrors.NewAppError(e.Code, e.Message, e.Cause)
		return true
	}
	return false
}

// NewGitLabError создаёт GitLabError без HTTP статуса.
func NewGitLabError(code, message string, cause error) *GitLabError {
	return &GitLabError{Code: code, Message: message, Cause: cause}
}

// ValidationError — некорректные аргументы вызова; запрос к серверу не отправлялся.
type ValidationError struct {
	Field   string
	Message string
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] поле '%s': %s", ErrGitLabValidation, e.Field, e.Message)
}

// ErrorCode возвращает машиночитаемый код.
func (e *ValidationError) ErrorCode() string {
	return ErrGitLabValidation
}

// As позволяет получить *apperrors.AppError через errors.As.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = apperrors.NewAppError(ErrGitLabValidation, fmt.Sprintf("поле '%s': %s", e.Field, e.Message), nil)
		return true
	}
	return false
}

// NewValidationError создаёт ошибку валидации.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func hasCode(err error, code string) bool {
	var glErr *GitLabError
	if errors.As(err, &glErr) {
		return glErr.Code == code
	}
	return false
}

// IsNotFoundError сообщает, что сервер ответил 404.
func IsNotFoundError(err error) bool { return hasCode(err, ErrGitLabNotFound) }

// IsAuthError сообщает, что сервер ответил 401 или 403.
func IsAuthError(err error) bool { return hasCode(err, ErrGitLabAuth) }

// IsTimeoutError сообщает о превышении таймаута запроса.
func IsTimeoutError(err error) bool { return hasCode(err, ErrGitLabTimeout) }

// IsConnectionError сообщает, что ответ от сервера не получен.
func IsConnectionError(err error) bool { return hasCode(err, ErrGitLabConnect) }

// IsAPIError сообщает о прочих неуспешных ответах сервера.
func IsAPIError(err error) bool { return hasCode(err, ErrGitLabAPI) }

// IsValidationError сообщает об ошибке валидации: локальной или ответе 400/409/422.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return true
	}
	return hasCode(err, ErrGitLabValidation)
}

// StatusCode возвращает HTTP статус из GitLabError в цепочке err, иначе 0.
func StatusCode(err error) int {
	var glErr *GitLabError
	if errors.As(err, &glErr) {
		return glErr.StatusCode
	}
	return 0
}

// codeForStatus сопоставляет HTTP статус коду ошибки.
func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrGitLabAuth
	case http.StatusNotFound:
		return ErrGitLabNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrGitLabValidation
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrGitLabTimeout
	default:
		return ErrGitLabAPI
	}
}

// newStatusError строит GitLabError из неуспешного ответа.
func newStatusError(method, path string, status int, body []byte) *GitLabError {
	return &GitLabError{
		Code:       codeForStatus(status),
		Message:    serverMessage(status, body),
		StatusCode: status,
		Method:     method,
		Path:       path,
	}
}

// newTransportError классифицирует ошибку, при которой ответ не получен.
func newTransportError(method, path string, err error) *GitLabError {
	code := ErrGitLabConnect
	msg := "ошибка при выполнении запроса"

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		code = ErrGitLabTimeout
		msg = "превышено время ожидания ответа"
	case errors.Is(err, context.Canceled):
		msg = "запрос отменён"
	}

	return &GitLabError{Code: code, Message: msg, Cause: err, Method: method, Path: path}
}

// serverMessage извлекает текст ошибки из тела ответа.
// GitLab отдаёт {"message": "..."}, {"message": {"field": ["..."]}} или {"error": "..."}.
func serverMessage(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Message) > 0 && string(payload.Message) != "null" {
			var s string
			if json.Unmarshal(payload.Message, &s) == nil {
				return s
			}
			return string(payload.Message)
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
