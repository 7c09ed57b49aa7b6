package gitlab

import (
	"context"
	"net/http"
)

// ListOptions — параметры пагинации списочных методов.
type ListOptions struct {
	Page    int `url:"page,omitempty"`
	PerPage int `url:"per_page,omitempty"`
}

// fetchOne выполняет запрос и декодирует ответ в новый *T.
// При неуспехе в режиме подавления возвращает (nil, nil).
func fetchOne[T any](ctx context.Context, c *Client, method, path string, params any, opts []RequestOption) (*T, error) {
	v := new(T)
	ok, err := c.do(ctx, method, path, params, v, opts)
	if !ok {
		return nil, err
	}
	return v, nil
}

// fetchList выполняет запрос и декодирует ответ в []T.
func fetchList[T any](ctx context.Context, c *Client, method, path string, params any, opts []RequestOption) ([]T, error) {
	var v []T
	ok, err := c.do(ctx, method, path, params, &v, opts)
	if !ok {
		return nil, err
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}

// fetchRaw возвращает тело ответа без декодирования.
func fetchRaw(ctx context.Context, c *Client, path string, params any, opts []RequestOption) ([]byte, error) {
	var body []byte
	ok, err := c.do(ctx, http.MethodGet, path, params, &body, opts)
	if !ok {
		return nil, err
	}
	return body, nil
}

// action выполняет запрос, результат которого — только факт успеха.
func action(ctx context.Context, c *Client, method, path string, params any, opts []RequestOption) (bool, error) {
	return c.do(ctx, method, path, params, nil, opts)
}
