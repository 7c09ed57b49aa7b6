package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

func branchPath(pid any, branch string) string {
	return fmt.Sprintf("/projects/%s/repository/branches/%s", pathEscape(pid), pathEscape(branch))
}

// GetBranches возвращает ветки репозитория.
func (c *Client) GetBranches(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Branch, error) {
	return fetchList[Branch](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/repository/branches", pathEscape(pid)), opts, ro)
}

// GetBranch возвращает ветку репозитория.
func (c *Client) GetBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (*Branch, error) {
	return fetchOne[Branch](ctx, c, http.MethodGet, branchPath(pid, branch), nil, ro)
}

// CreateBranch создаёт ветку branch от ref (имя ветки, тега или SHA).
func (c *Client) CreateBranch(ctx context.Context, pid any, branch, ref string, ro ...RequestOption) (*Branch, error) {
	params := map[string]string{"branch_name": branch, "ref": ref}
	return fetchOne[Branch](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/repository/branches", pathEscape(pid)), params, ro)
}

// DeleteBranch удаляет ветку.
func (c *Client) DeleteBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, branchPath(pid, branch), nil, ro)
}

// ProtectBranch защищает ветку от push и удаления.
func (c *Client) ProtectBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, branchPath(pid, branch)+"/protect", nil, ro)
}

// UnprotectBranch снимает защиту с ветки.
func (c *Client) UnprotectBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPut, branchPath(pid, branch)+"/unprotect", nil, ro)
}

// GetRepositoryBranch возвращает ветку репозитория.
//
// Deprecated: используйте GetBranch.
func (c *Client) GetRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (*Branch, error) {
	c.deprecated("GetRepositoryBranch", "GetBranch")
	return c.GetBranch(ctx, pid, branch, ro...)
}

// ProtectRepositoryBranch защищает ветку.
//
// Deprecated: используйте ProtectBranch.
func (c *Client) ProtectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error) {
	c.deprecated("ProtectRepositoryBranch", "ProtectBranch")
	return c.ProtectBranch(ctx, pid, branch, ro...)
}

// UnprotectRepositoryBranch снимает защиту с ветки.
//
// Deprecated: используйте UnprotectBranch.
func (c *Client) UnprotectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error) {
	c.deprecated("UnprotectRepositoryBranch", "UnprotectBranch")
	return c.UnprotectBranch(ctx, pid, branch, ro...)
}

func (c *Client) deprecated(name, replacement string) {
	c.logger.Warn("gitlab: вызван устаревший метод", "method", name, "replacement", replacement)
}
