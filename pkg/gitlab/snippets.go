package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// SnippetOptions — параметры CreateSnippet.
type SnippetOptions struct {
	Title           string  `url:"title"`
	FileName        string  `url:"file_name"`
	Code            string  `url:"code"`
	VisibilityLevel *int    `url:"visibility_level,omitempty"`
	Lifetime        *string `url:"lifetime,omitempty"`
}

func snippetPath(pid any, snippetID int64) string {
	return fmt.Sprintf("/projects/%s/snippets/%d", pathEscape(pid), snippetID)
}

// GetSnippets возвращает сниппеты проекта.
func (c *Client) GetSnippets(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Snippet, error) {
	return fetchList[Snippet](ctx, c, http.MethodGet, fmt.Sprintf("/projects/%s/snippets", pathEscape(pid)), opts, ro)
}

// GetSnippet возвращает сниппет проекта.
func (c *Client) GetSnippet(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) (*Snippet, error) {
	return fetchOne[Snippet](ctx, c, http.MethodGet, snippetPath(pid, snippetID), nil, ro)
}

// GetSnippetContent возвращает содержимое сниппета как есть.
func (c *Client) GetSnippetContent(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) ([]byte, error) {
	return fetchRaw(ctx, c, snippetPath(pid, snippetID)+"/raw", nil, ro)
}

// CreateSnippet создаёт сниппет проекта.
func (c *Client) CreateSnippet(ctx context.Context, pid any, opts *SnippetOptions, ro ...RequestOption) (*Snippet, error) {
	return fetchOne[Snippet](ctx, c, http.MethodPost, fmt.Sprintf("/projects/%s/snippets", pathEscape(pid)), opts, ro)
}

// DeleteSnippet удаляет сниппет проекта.
func (c *Client) DeleteSnippet(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, snippetPath(pid, snippetID), nil, ro)
}
