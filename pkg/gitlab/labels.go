package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// EditLabelOptions — параметры EditLabel. Нужно задать NewName или Color.
type EditLabelOptions struct {
	Name        string  `url:"name"`
	NewName     *string `url:"new_name,omitempty"`
	Color       *string `url:"color,omitempty"`
	Description *string `url:"description,omitempty"`
}

func labelsPath(pid any) string {
	return fmt.Sprintf("/projects/%s/labels", pathEscape(pid))
}

// GetLabels возвращает метки проекта.
func (c *Client) GetLabels(ctx context.Context, pid any, ro ...RequestOption) ([]Label, error) {
	return fetchList[Label](ctx, c, http.MethodGet, labelsPath(pid), nil, ro)
}

// CreateLabel создаёт метку. color задаётся в формате "#RRGGBB".
func (c *Client) CreateLabel(ctx context.Context, pid any, name, color string, ro ...RequestOption) (*Label, error) {
	return fetchOne[Label](ctx, c, http.MethodPost, labelsPath(pid), map[string]string{"name": name, "color": color}, ro)
}

// EditLabel изменяет метку.
func (c *Client) EditLabel(ctx context.Context, pid any, opts *EditLabelOptions, ro ...RequestOption) (*Label, error) {
	if opts == nil || (opts.NewName == nil && opts.Color == nil) {
		return nil, NewValidationError("new_name", "нужно задать новое имя или цвет метки")
	}
	return fetchOne[Label](ctx, c, http.MethodPut, labelsPath(pid), opts, ro)
}

// DeleteLabel удаляет метку по имени.
func (c *Client) DeleteLabel(ctx context.Context, pid any, name string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, labelsPath(pid), map[string]string{"name": name}, ro)
}
