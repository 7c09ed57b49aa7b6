package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListIssuesOptions — фильтры списков задач.
type ListIssuesOptions struct {
	ListOptions
	State     *string `url:"state,omitempty"`
	Labels    *string `url:"labels,omitempty"`
	Milestone *string `url:"milestone,omitempty"`
	IIDs      []int64 `url:"iid,omitempty,brackets"`
	OrderBy   *string `url:"order_by,omitempty"`
	Sort      *string `url:"sort,omitempty"`
}

// IssueOptions — параметры CreateIssue и EditIssue.
// Labels — имена меток через запятую. StateEvent: "close" или "reopen".
type IssueOptions struct {
	Title        *string `url:"title,omitempty"`
	Description  *string `url:"description,omitempty"`
	AssigneeID   *int64  `url:"assignee_id,omitempty"`
	MilestoneID  *int64  `url:"milestone_id,omitempty"`
	Labels       *string `url:"labels,omitempty"`
	Confidential *bool   `url:"confidential,omitempty"`
	DueDate      *string `url:"due_date,omitempty"`
	StateEvent   *string `url:"state_event,omitempty"`
}

// GetIssues возвращает задачи текущего пользователя.
func (c *Client) GetIssues(ctx context.Context, opts *ListIssuesOptions, ro ...RequestOption) ([]Issue, error) {
	return fetchList[Issue](ctx, c, http.MethodGet, "/issues", opts, ro)
}

// GetProjectIssues возвращает задачи проекта.
func (c *Client) GetProjectIssues(ctx context.Context, pid any, opts *ListIssuesOptions, ro ...RequestOption) ([]Issue, error) {
	return fetchList[Issue](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/issues", pathEscape(pid)), opts, ro)
}

// GetProjectIssue возвращает задачу проекта по её id.
func (c *Client) GetProjectIssue(ctx context.Context, pid any, issueID int64, ro ...RequestOption) (*Issue, error) {
	return fetchOne[Issue](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/issues/%d", pathEscape(pid), issueID), nil, ro)
}

// CreateIssue создаёт задачу. Title обязателен.
func (c *Client) CreateIssue(ctx context.Context, pid any, opts *IssueOptions, ro ...RequestOption) (*Issue, error) {
	if opts == nil || opts.Title == nil || *opts.Title == "" {
		return nil, NewValidationError("title", "заголовок задачи обязателен")
	}
	return fetchOne[Issue](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/issues", pathEscape(pid)), opts, ro)
}

// EditIssue изменяет задачу. Отправляются только заданные поля.
func (c *Client) EditIssue(ctx context.Context, pid any, issueID int64, opts *IssueOptions, ro ...RequestOption) (*Issue, error) {
	return fetchOne[Issue](ctx, c, http.MethodPut, fmt.Sprintf("/projects/%s/issues/%d", pathEscape(pid), issueID), opts, ro)
}
