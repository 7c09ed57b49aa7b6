package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListProjectsOptions — фильтры списков проектов.
type ListProjectsOptions struct {
	ListOptions
	Archived   *bool   `url:"archived,omitempty"`
	Visibility *string `url:"visibility,omitempty"`
	OrderBy    *string `url:"order_by,omitempty"`
	Sort       *string `url:"sort,omitempty"`
	Search     *string `url:"search,omitempty"`
	Simple     *bool   `url:"simple,omitempty"`
}

// CreateProjectOptions — параметры CreateProject и CreateProjectUser.
// Name обязателен, остальные поля отправляются только если заданы.
type CreateProjectOptions struct {
	Name                 string  `url:"name"`
	Path                 *string `url:"path,omitempty"`
	NamespaceID          *int64  `url:"namespace_id,omitempty"`
	Description          *string `url:"description,omitempty"`
	DefaultBranch        *string `url:"default_branch,omitempty"`
	IssuesEnabled        *bool   `url:"issues_enabled,omitempty"`
	MergeRequestsEnabled *bool   `url:"merge_requests_enabled,omitempty"`
	WikiEnabled          *bool   `url:"wiki_enabled,omitempty"`
	SnippetsEnabled      *bool   `url:"snippets_enabled,omitempty"`
	BuildsEnabled        *bool   `url:"builds_enabled,omitempty"`
	Public               *bool   `url:"public,omitempty"`
	VisibilityLevel      *int    `url:"visibility_level,omitempty"`
	ImportURL            *string `url:"import_url,omitempty"`
}

// EditProjectOptions — параметры EditProject. Отправляются только заданные поля.
type EditProjectOptions struct {
	Name                 *string `url:"name,omitempty"`
	Path                 *string `url:"path,omitempty"`
	Description          *string `url:"description,omitempty"`
	DefaultBranch        *string `url:"default_branch,omitempty"`
	IssuesEnabled        *bool   `url:"issues_enabled,omitempty"`
	MergeRequestsEnabled *bool   `url:"merge_requests_enabled,omitempty"`
	WikiEnabled          *bool   `url:"wiki_enabled,omitempty"`
	SnippetsEnabled      *bool   `url:"snippets_enabled,omitempty"`
	BuildsEnabled        *bool   `url:"builds_enabled,omitempty"`
	Public               *bool   `url:"public,omitempty"`
	VisibilityLevel      *int    `url:"visibility_level,omitempty"`
}

// GetProjects возвращает проекты, доступные текущему пользователю.
func (c *Client) GetProjects(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error) {
	return fetchList[Project](ctx, c, http.MethodGet, "/projects", opts, ro)
}

// GetProjectsAll возвращает все проекты сервера. Только для администраторов.
func (c *Client) GetProjectsAll(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error) {
	return fetchList[Project](ctx, c, http.MethodGet, "/projects/all", opts, ro)
}

// GetProjectsOwned возвращает проекты, которыми владеет текущий пользователь.
func (c *Client) GetProjectsOwned(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error) {
	return fetchList[Project](ctx, c, http.MethodGet, "/projects/owned", opts, ro)
}

// GetProject возвращает проект по id или пути "namespace/name".
func (c *Client) GetProject(ctx context.Context, pid any, ro ...RequestOption) (*Project, error) {
	return fetchOne[Project](ctx, c, http.MethodGet, "/projects/"+pathEscape(pid), nil, ro)
}

// GetProjectEvents возвращает ленту событий проекта.
func (c *Client) GetProjectEvents(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Event, error) {
	return fetchList[Event](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/events", pathEscape(pid)), opts, ro)
}

// CreateProject создаёт проект текущего пользователя.
func (c *Client) CreateProject(ctx context.Context, opts *CreateProjectOptions, ro ...RequestOption) (*Project, error) {
	return fetchOne[Project](ctx, c, http.MethodPost, "/projects", opts, ro)
}

// CreateProjectUser создаёт проект для пользователя uid. Только для администраторов.
func (c *Client) CreateProjectUser(ctx context.Context, uid int64, opts *CreateProjectOptions, ro ...RequestOption) (*Project, error) {
	return fetchOne[Project](ctx, c, http.MethodPost, fmt.Sprintf("/projects/user/%d", uid), opts, ro)
}

// EditProject изменяет проект.
func (c *Client) EditProject(ctx context.Context, pid any, opts *EditProjectOptions, ro ...RequestOption) (*Project, error) {
	return fetchOne[Project](ctx, c, http.MethodPut, "/projects/"+pathEscape(pid), opts, ro)
}

// DeleteProject удаляет проект.
func (c *Client) DeleteProject(ctx context.Context, pid any, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, "/projects/"+pathEscape(pid), nil, ro)
}

// SearchProject ищет проекты по имени.
func (c *Client) SearchProject(ctx context.Context, search string, opts *ListOptions, ro ...RequestOption) ([]Project, error) {
	return fetchList[Project](ctx, c, http.MethodGet, "/projects/search/"+pathEscape(search), opts, ro)
}

// CreateFork создаёт форк проекта в пространстве имён текущего пользователя.
func (c *Client) CreateFork(ctx context.Context, pid any, ro ...RequestOption) (*Project, error) {
	return fetchOne[Project](ctx, c, http.MethodPost, "/projects/fork/"+pathEscape(pid), nil, ro)
}

// CreateForkRelation отмечает проект pid форком проекта forkedFromID.
func (c *Client) CreateForkRelation(ctx context.Context, pid any, forkedFromID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/fork/%d", pathEscape(pid), forkedFromID), nil, ro)
}

// RemoveForkRelation удаляет связь форка.
func (c *Client) RemoveForkRelation(ctx context.Context, pid any, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/projects/%s/fork", pathEscape(pid)), nil, ro)
}

// ShareProject открывает доступ к проекту группе groupID с уровнем access.
func (c *Client) ShareProject(ctx context.Context, pid any, groupID int64, access AccessLevel, ro ...RequestOption) (bool, error) {
	params := struct {
		GroupID     int64       `url:"group_id"`
		GroupAccess AccessLevel `url:"group_access"`
	}{groupID, access}
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/share", pathEscape(pid)), params, ro)
}
