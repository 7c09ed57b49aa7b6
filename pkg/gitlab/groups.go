package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListGroupsOptions — фильтры GetGroups.
type ListGroupsOptions struct {
	ListOptions
	Search *string `url:"search,omitempty"`
}

// CreateGroupOptions — параметры CreateGroup.
type CreateGroupOptions struct {
	Name            string  `url:"name"`
	Path            string  `url:"path"`
	Description     *string `url:"description,omitempty"`
	VisibilityLevel *int    `url:"visibility_level,omitempty"`
}

// GetGroups возвращает группы, доступные текущему пользователю.
func (c *Client) GetGroups(ctx context.Context, opts *ListGroupsOptions, ro ...RequestOption) ([]Group, error) {
	return fetchList[Group](ctx, c, http.MethodGet, "/groups", opts, ro)
}

// GetGroup возвращает группу вместе с её проектами.
func (c *Client) GetGroup(ctx context.Context, gid any, ro ...RequestOption) (*Group, error) {
	return fetchOne[Group](ctx, c, http.MethodGet, "/groups/"+pathEscape(gid), nil, ro)
}

// SearchGroups ищет группы по имени или пути.
func (c *Client) SearchGroups(ctx context.Context, search string, opts *ListOptions, ro ...RequestOption) ([]Group, error) {
	params := &ListGroupsOptions{Search: &search}
	if opts != nil {
		params.ListOptions = *opts
	}
	return c.GetGroups(ctx, params, ro...)
}

// CreateGroup создаёт группу.
func (c *Client) CreateGroup(ctx context.Context, opts *CreateGroupOptions, ro ...RequestOption) (*Group, error) {
	return fetchOne[Group](ctx, c, http.MethodPost, "/groups", opts, ro)
}

// DeleteGroup удаляет группу.
func (c *Client) DeleteGroup(ctx context.Context, gid any, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, "/groups/"+pathEscape(gid), nil, ro)
}

// MoveProject переносит проект в группу. Только для администраторов.
func (c *Client) MoveProject(ctx context.Context, gid any, pid any, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/groups/%s/projects/%s", pathEscape(gid), pathEscape(pid)), nil, ro)
}
