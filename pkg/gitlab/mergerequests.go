package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListMergeRequestsOptions — фильтры GetMergeRequests.
type ListMergeRequestsOptions struct {
	ListOptions
	State   *string `url:"state,omitempty"`
	OrderBy *string `url:"order_by,omitempty"`
	Sort    *string `url:"sort,omitempty"`
}

// CreateMergeRequestOptions — параметры CreateMergeRequest.
type CreateMergeRequestOptions struct {
	SourceBranch    string  `url:"source_branch"`
	TargetBranch    string  `url:"target_branch"`
	Title           string  `url:"title"`
	Description     *string `url:"description,omitempty"`
	AssigneeID      *int64  `url:"assignee_id,omitempty"`
	TargetProjectID *int64  `url:"target_project_id,omitempty"`
	MilestoneID     *int64  `url:"milestone_id,omitempty"`
	Labels          *string `url:"labels,omitempty"`
}

// UpdateMergeRequestOptions — параметры UpdateMergeRequest.
// StateEvent: "close" или "reopen".
type UpdateMergeRequestOptions struct {
	SourceBranch *string `url:"source_branch,omitempty"`
	TargetBranch *string `url:"target_branch,omitempty"`
	Title        *string `url:"title,omitempty"`
	Description  *string `url:"description,omitempty"`
	AssigneeID   *int64  `url:"assignee_id,omitempty"`
	MilestoneID  *int64  `url:"milestone_id,omitempty"`
	Labels       *string `url:"labels,omitempty"`
	StateEvent   *string `url:"state_event,omitempty"`
}

// AcceptMergeRequestOptions — параметры AcceptMergeRequest.
type AcceptMergeRequestOptions struct {
	MergeCommitMessage       *string `url:"merge_commit_message,omitempty"`
	ShouldRemoveSourceBranch *bool   `url:"should_remove_source_branch,omitempty"`
	MergeWhenBuildSucceeds   *bool   `url:"merged_when_build_succeeds,omitempty"`
	SHA                      *string `url:"sha,omitempty"`
}

func mergeRequestPath(pid any, mrID int64) string {
	return fmt.Sprintf("/projects/%s/merge_request/%d", pathEscape(pid), mrID)
}

// GetMergeRequests возвращает merge requests проекта.
func (c *Client) GetMergeRequests(ctx context.Context, pid any, opts *ListMergeRequestsOptions, ro ...RequestOption) ([]MergeRequest, error) {
	return fetchList[MergeRequest](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/merge_requests", pathEscape(pid)), opts, ro)
}

// GetMergeRequest возвращает merge request по id.
func (c *Client) GetMergeRequest(ctx context.Context, pid any, mrID int64, ro ...RequestOption) (*MergeRequest, error) {
	return fetchOne[MergeRequest](ctx, c, http.MethodGet, mergeRequestPath(pid, mrID), nil, ro)
}

// GetMergeRequestChanges возвращает merge request вместе с изменёнными файлами.
func (c *Client) GetMergeRequestChanges(ctx context.Context, pid any, mrID int64, ro ...RequestOption) (*MergeRequest, error) {
	return fetchOne[MergeRequest](ctx, c, http.MethodGet, mergeRequestPath(pid, mrID)+"/changes", nil, ro)
}

// CreateMergeRequest создаёт merge request.
func (c *Client) CreateMergeRequest(ctx context.Context, pid any, opts *CreateMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error) {
	return fetchOne[MergeRequest](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/merge_requests", pathEscape(pid)), opts, ro)
}

// UpdateMergeRequest изменяет merge request.
func (c *Client) UpdateMergeRequest(ctx context.Context, pid any, mrID int64, opts *UpdateMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error) {
	return fetchOne[MergeRequest](ctx, c, http.MethodPut, mergeRequestPath(pid, mrID), opts, ro)
}

// AcceptMergeRequest выполняет слияние merge request.
func (c *Client) AcceptMergeRequest(ctx context.Context, pid any, mrID int64, opts *AcceptMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error) {
	return fetchOne[MergeRequest](ctx, c, http.MethodPut, mergeRequestPath(pid, mrID)+"/merge", opts, ro)
}

// GetMergeRequestComments возвращает комментарии к merge request.
func (c *Client) GetMergeRequestComments(ctx context.Context, pid any, mrID int64, opts *ListOptions, ro ...RequestOption) ([]MergeRequestComment, error) {
	return fetchList[MergeRequestComment](ctx, c, http.MethodGet, mergeRequestPath(pid, mrID)+"/comments", opts, ro)
}

// AddCommentToMergeRequest добавляет комментарий к merge request.
func (c *Client) AddCommentToMergeRequest(ctx context.Context, pid any, mrID int64, note string, ro ...RequestOption) (*MergeRequestComment, error) {
	return fetchOne[MergeRequestComment](ctx, c, http.MethodPost, mergeRequestPath(pid, mrID)+"/comments",
		map[string]string{"note": note}, ro)
}
