package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsersOptions — фильтры GetUsers.
type ListUsersOptions struct {
	ListOptions
	Search   *string `url:"search,omitempty"`
	Username *string `url:"username,omitempty"`
	Active   *bool   `url:"active,omitempty"`
	Blocked  *bool   `url:"blocked,omitempty"`
}

// CreateUserOptions — параметры CreateUser. Email, Password, Username и Name обязательны.
type CreateUserOptions struct {
	Email          string  `url:"email"`
	Password       string  `url:"password"`
	Username       string  `url:"username"`
	Name           string  `url:"name"`
	Skype          *string `url:"skype,omitempty"`
	Linkedin       *string `url:"linkedin,omitempty"`
	Twitter        *string `url:"twitter,omitempty"`
	WebsiteURL     *string `url:"website_url,omitempty"`
	ProjectsLimit  *int    `url:"projects_limit,omitempty"`
	ExternUID      *string `url:"extern_uid,omitempty"`
	Provider       *string `url:"provider,omitempty"`
	Bio            *string `url:"bio,omitempty"`
	Admin          *bool   `url:"admin,omitempty"`
	CanCreateGroup *bool   `url:"can_create_group,omitempty"`
	Confirm        *bool   `url:"confirm,omitempty"`
}

// EditUserOptions — параметры EditUser. Отправляются только заданные поля.
type EditUserOptions struct {
	Email          *string `url:"email,omitempty"`
	Password       *string `url:"password,omitempty"`
	Username       *string `url:"username,omitempty"`
	Name           *string `url:"name,omitempty"`
	Skype          *string `url:"skype,omitempty"`
	Linkedin       *string `url:"linkedin,omitempty"`
	Twitter        *string `url:"twitter,omitempty"`
	WebsiteURL     *string `url:"website_url,omitempty"`
	ProjectsLimit  *int    `url:"projects_limit,omitempty"`
	ExternUID      *string `url:"extern_uid,omitempty"`
	Provider       *string `url:"provider,omitempty"`
	Bio            *string `url:"bio,omitempty"`
	Admin          *bool   `url:"admin,omitempty"`
	CanCreateGroup *bool   `url:"can_create_group,omitempty"`
}

// GetUsers возвращает список пользователей.
func (c *Client) GetUsers(ctx context.Context, opts *ListUsersOptions, ro ...RequestOption) ([]User, error) {
	return fetchList[User](ctx, c, http.MethodGet, "/users", opts, ro)
}

// GetUser возвращает пользователя по id.
func (c *Client) GetUser(ctx context.Context, uid int64, ro ...RequestOption) (*User, error) {
	return fetchOne[User](ctx, c, http.MethodGet, fmt.Sprintf("/users/%d", uid), nil, ro)
}

// CurrentUser возвращает пользователя, которому принадлежит токен.
func (c *Client) CurrentUser(ctx context.Context, ro ...RequestOption) (*User, error) {
	return fetchOne[User](ctx, c, http.MethodGet, "/user", nil, ro)
}

// CreateUser создаёт пользователя. Требует прав администратора.
func (c *Client) CreateUser(ctx context.Context, opts *CreateUserOptions, ro ...RequestOption) (*User, error) {
	return fetchOne[User](ctx, c, http.MethodPost, "/users", opts, ro)
}

// EditUser изменяет пользователя.
//
// Старые версии GitLab отвечают 404 независимо от результата, поэтому 404
// считается успехом; тело такого ответа не описывает пользователя, и
// возвращается *User с нулевыми полями.
func (c *Client) EditUser(ctx context.Context, uid int64, opts *EditUserOptions, ro ...RequestOption) (*User, error) {
	ro = append([]RequestOption{AcceptStatus(http.StatusOK, http.StatusNotFound)}, ro...)
	return fetchOne[User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d", uid), opts, ro)
}

// DeleteUser удаляет пользователя.
func (c *Client) DeleteUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/users/%d", uid), nil, ro)
}

// BlockUser блокирует пользователя.
func (c *Client) BlockUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, fmt.Sprintf("/users/%d/block", uid), nil, ro)
}

// UnblockUser разблокирует пользователя.
func (c *Client) UnblockUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, fmt.Sprintf("/users/%d/unblock", uid), nil, ro)
}
