package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// MilestoneOptions — параметры CreateMilestone и EditMilestone.
// StateEvent: "close" или "activate".
type MilestoneOptions struct {
	Title       *string `url:"title,omitempty"`
	Description *string `url:"description,omitempty"`
	DueDate     *string `url:"due_date,omitempty"`
	StateEvent  *string `url:"state_event,omitempty"`
}

// GetMilestones возвращает этапы проекта.
func (c *Client) GetMilestones(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Milestone, error) {
	return fetchList[Milestone](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/milestones", pathEscape(pid)), opts, ro)
}

// GetMilestone возвращает этап проекта.
func (c *Client) GetMilestone(ctx context.Context, pid any, milestoneID int64, ro ...RequestOption) (*Milestone, error) {
	return fetchOne[Milestone](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/milestones/%d", pathEscape(pid), milestoneID), nil, ro)
}

// CreateMilestone создаёт этап. Title обязателен.
func (c *Client) CreateMilestone(ctx context.Context, pid any, opts *MilestoneOptions, ro ...RequestOption) (*Milestone, error) {
	if opts == nil || opts.Title == nil || *opts.Title == "" {
		return nil, NewValidationError("title", "название этапа обязательно")
	}
	return fetchOne[Milestone](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/milestones", pathEscape(pid)), opts, ro)
}

// EditMilestone изменяет этап.
func (c *Client) EditMilestone(ctx context.Context, pid any, milestoneID int64, opts *MilestoneOptions, ro ...RequestOption) (*Milestone, error) {
	return fetchOne[Milestone](ctx, c, http.MethodPut, fmt.Sprintf("/projects/%s/milestones/%d", pathEscape(pid), milestoneID), opts, ro)
}
