package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTagOptions — параметры CreateRepositoryTag.
type CreateTagOptions struct {
	TagName            string  `url:"tag_name"`
	Ref                string  `url:"ref"`
	Message            *string `url:"message,omitempty"`
	ReleaseDescription *string `url:"release_description,omitempty"`
}

// GetRepositoryTags возвращает теги репозитория.
func (c *Client) GetRepositoryTags(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Tag, error) {
	return fetchList[Tag](ctx, c, http.MethodGet, repoPath(pid, "tags"), opts, ro)
}

// CreateRepositoryTag создаёт тег. Заданный Message делает тег аннотированным.
func (c *Client) CreateRepositoryTag(ctx context.Context, pid any, opts *CreateTagOptions, ro ...RequestOption) (*Tag, error) {
	return fetchOne[Tag](ctx, c, http.MethodPost, repoPath(pid, "tags"), opts, ro)
}

// DeleteRepositoryTag удаляет тег.
func (c *Client) DeleteRepositoryTag(ctx context.Context, pid any, tag string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, repoPath(pid, "tags/"+pathEscape(tag)), nil, ro)
}

// SetTagRelease добавляет release notes к тегу.
func (c *Client) SetTagRelease(ctx context.Context, pid any, tag, description string, ro ...RequestOption) (*TagRelease, error) {
	return fetchOne[TagRelease](ctx, c, http.MethodPost,
		fmt.Sprintf("/projects/%s/repository/tags/%s/release", pathEscape(pid), pathEscape(tag)),
		map[string]string{"description": description}, ro)
}
