// Package apperrors предоставляет структурированные ошибки с иерархическими кодами.
package apperrors

import (
	"errors"
	"fmt"
)

// Коды ошибок в формате CATEGORY.SPECIFIC.
const (
	// CONFIG — загрузка и валидация конфигурации.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigParse    = "CONFIG.PARSE_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// GITLAB — обращения к GitLab API.
	ErrGitLabConnect    = "GITLAB.CONNECT_FAILED"
	ErrGitLabAPI        = "GITLAB.API_FAILED"
	ErrGitLabAuth       = "GITLAB.AUTH_FAILED"
	ErrGitLabTimeout    = "GITLAB.TIMEOUT"
	ErrGitLabNotFound   = "GITLAB.NOT_FOUND"
	ErrGitLabValidation = "GITLAB.VALIDATION_FAILED"
)

// AppError представляет структурированную ошибку.
//
// Message НЕ ДОЛЖЕН содержать токены и пароли.
type AppError struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание.
	Message string `json:"message"`

	// Cause — исходная ошибка; в JSON не попадает.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает исходную ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError создаёт AppError.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf возвращает код первой AppError в цепочке err или пустую строку.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
