package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListMembersOptions — фильтры списков участников.
type ListMembersOptions struct {
	ListOptions
	Query *string `url:"query,omitempty"`
}

type memberOptions struct {
	UserID      int64       `url:"user_id,omitempty"`
	AccessLevel AccessLevel `url:"access_level"`
}

// -------------------------------------------------------------------
// Участники проекта
// -------------------------------------------------------------------

// GetProjectMembers возвращает участников проекта.
func (c *Client) GetProjectMembers(ctx context.Context, pid any, opts *ListMembersOptions, ro ...RequestOption) ([]Member, error) {
	return fetchList[Member](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/members", pathEscape(pid)), opts, ro)
}

// AddProjectMember добавляет пользователя в проект. Уровень из строки
// получается через ParseAccessLevel: ParseAccessLevel("Reporter") → 20.
func (c *Client) AddProjectMember(ctx context.Context, pid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/members", pathEscape(pid)),
		&memberOptions{UserID: uid, AccessLevel: access}, ro)
}

// EditProjectMember меняет уровень доступа участника проекта.
func (c *Client) EditProjectMember(ctx context.Context, pid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, fmt.Sprintf("/projects/%s/members/%d", pathEscape(pid), uid),
		&memberOptions{AccessLevel: access}, ro)
}

// DeleteProjectMember удаляет участника проекта. Сервер отвечает 200,
// даже если пользователь не был участником.
func (c *Client) DeleteProjectMember(ctx context.Context, pid any, uid int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/projects/%s/members/%d", pathEscape(pid), uid), nil, ro)
}

// -------------------------------------------------------------------
// Участники группы
// -------------------------------------------------------------------

// GetGroupMembers возвращает участников группы.
func (c *Client) GetGroupMembers(ctx context.Context, gid any, opts *ListMembersOptions, ro ...RequestOption) ([]Member, error) {
	return fetchList[Member](ctx, c, http.MethodGet, fmt.Sprintf("/groups/%s/members", pathEscape(gid)), opts, ro)
}

// AddGroupMember добавляет пользователя в группу.
func (c *Client) AddGroupMember(ctx context.Context, gid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/groups/%s/members", pathEscape(gid)),
		&memberOptions{UserID: uid, AccessLevel: access}, ro)
}

// EditGroupMember меняет уровень доступа участника группы.
func (c *Client) EditGroupMember(ctx context.Context, gid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, fmt.Sprintf("/groups/%s/members/%d", pathEscape(gid), uid),
		&memberOptions{AccessLevel: access}, ro)
}

// DeleteGroupMember удаляет участника группы.
func (c *Client) DeleteGroupMember(ctx context.Context, gid any, uid int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/groups/%s/members/%d", pathEscape(gid), uid), nil, ro)
}
