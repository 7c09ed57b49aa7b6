package gitlab

import (
	"context"
	"net/http"
)

// ListNamespacesOptions — фильтры GetNamespaces.
type ListNamespacesOptions struct {
	ListOptions
	Search *string `url:"search,omitempty"`
}

// GetNamespaces возвращает пространства имён: пользователей и группы.
func (c *Client) GetNamespaces(ctx context.Context, opts *ListNamespacesOptions, ro ...RequestOption) ([]Namespace, error) {
	return fetchList[Namespace](ctx, c, http.MethodGet, "/namespaces", opts, ro)
}
