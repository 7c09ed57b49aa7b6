package gitlab

import (
	"context"
	"net/http"
	"net/url"
)

// LoginOptions — учётные данные для Login. Нужен Login или Email;
// если заданы оба, отправляется Login.
type LoginOptions struct {
	Login    string
	Email    string
	Password string
}

// Login получает private token по логину (или email) и паролю через
// POST /session. При успехе клиент переключается на заголовок PRIVATE-TOKEN
// с полученным токеном, в том числе если до этого использовал OAuth.
//
// Запрос отправляется без учётных данных и без SUDO.
func (c *Client) Login(ctx context.Context, opts LoginOptions, ro ...RequestOption) (*Session, error) {
	params := url.Values{"password": {opts.Password}}
	switch {
	case opts.Login != "":
		params.Set("login", opts.Login)
	case opts.Email != "":
		params.Set("email", opts.Email)
	default:
		return nil, NewValidationError("login", "не указан ни login, ни email")
	}

	ro = append([]RequestOption{withoutAuth(), WithoutSudo()}, ro...)
	session, err := fetchOne[Session](ctx, c, http.MethodPost, "/session", params, ro)
	if err != nil || session == nil {
		return nil, err
	}
	if session.PrivateToken == "" {
		return nil, &GitLabError{
			Code:    ErrGitLabAuth,
			Message: "ответ сервера не содержит private_token",
			Method:  http.MethodPost,
			Path:    "/session",
		}
	}

	c.setPrivateToken(session.PrivateToken)
	c.logger.Info("gitlab: вход выполнен", "username", session.Username)
	return session, nil
}
