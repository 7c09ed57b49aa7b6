package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// HookOptions — параметры AddProjectHook и EditProjectHook.
type HookOptions struct {
	URL                   string `url:"url"`
	PushEvents            *bool  `url:"push_events,omitempty"`
	IssuesEvents          *bool  `url:"issues_events,omitempty"`
	MergeRequestsEvents   *bool  `url:"merge_requests_events,omitempty"`
	TagPushEvents         *bool  `url:"tag_push_events,omitempty"`
	NoteEvents            *bool  `url:"note_events,omitempty"`
	EnableSSLVerification *bool  `url:"enable_ssl_verification,omitempty"`
}

// GetProjectHooks возвращает webhooks проекта.
func (c *Client) GetProjectHooks(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Hook, error) {
	return fetchList[Hook](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/hooks", pathEscape(pid)), opts, ro)
}

// GetProjectHook возвращает webhook проекта.
func (c *Client) GetProjectHook(ctx context.Context, pid any, hookID int64, ro ...RequestOption) (*Hook, error) {
	return fetchOne[Hook](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/hooks/%d", pathEscape(pid), hookID), nil, ro)
}

// AddProjectHook добавляет webhook проекта.
func (c *Client) AddProjectHook(ctx context.Context, pid any, opts *HookOptions, ro ...RequestOption) (*Hook, error) {
	return fetchOne[Hook](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/hooks", pathEscape(pid)), opts, ro)
}

// EditProjectHook изменяет webhook проекта.
func (c *Client) EditProjectHook(ctx context.Context, pid any, hookID int64, opts *HookOptions, ro ...RequestOption) (*Hook, error) {
	return fetchOne[Hook](ctx, c, http.MethodPut, fmt.Sprintf("/projects/%s/hooks/%d", pathEscape(pid), hookID), opts, ro)
}

// DeleteProjectHook удаляет webhook проекта.
func (c *Client) DeleteProjectHook(ctx context.Context, pid any, hookID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/projects/%s/hooks/%d", pathEscape(pid), hookID), nil, ro)
}

// GetSystemHooks возвращает системные webhooks. Только для администраторов.
func (c *Client) GetSystemHooks(ctx context.Context, opts *ListOptions, ro ...RequestOption) ([]SystemHook, error) {
	return fetchList[SystemHook](ctx, c, http.MethodGet, "/hooks", opts, ro)
}

// AddSystemHook добавляет системный webhook.
func (c *Client) AddSystemHook(ctx context.Context, hookURL string, ro ...RequestOption) (*SystemHook, error) {
	return fetchOne[SystemHook](ctx, c, http.MethodPost, "/hooks", map[string]string{"url": hookURL}, ro)
}

// TestSystemHook отправляет тестовое событие системному webhook.
func (c *Client) TestSystemHook(ctx context.Context, hookID int64, ro ...RequestOption) (*SystemHookEvent, error) {
	return fetchOne[SystemHookEvent](ctx, c, http.MethodGet, fmt.Sprintf("/hooks/%d", hookID), nil, ro)
}

// DeleteSystemHook удаляет системный webhook.
func (c *Client) DeleteSystemHook(ctx context.Context, hookID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/hooks/%d", hookID), nil, ro)
}
