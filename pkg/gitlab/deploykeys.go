package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

func deployKeysPath(pid any) string {
	return fmt.Sprintf("/projects/%s/keys", pathEscape(pid))
}

// GetDeployKeys возвращает deploy ключи проекта.
func (c *Client) GetDeployKeys(ctx context.Context, pid any, ro ...RequestOption) ([]DeployKey, error) {
	return fetchList[DeployKey](ctx, c, http.MethodGet, deployKeysPath(pid), nil, ro)
}

// GetDeployKey возвращает deploy ключ проекта.
func (c *Client) GetDeployKey(ctx context.Context, pid any, keyID int64, ro ...RequestOption) (*DeployKey, error) {
	return fetchOne[DeployKey](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", deployKeysPath(pid), keyID), nil, ro)
}

// AddDeployKey добавляет deploy ключ проекту.
func (c *Client) AddDeployKey(ctx context.Context, pid any, title, key string, ro ...RequestOption) (*DeployKey, error) {
	return fetchOne[DeployKey](ctx, c, http.MethodPost, deployKeysPath(pid), map[string]string{"title": title, "key": key}, ro)
}

// DeleteDeployKey удаляет deploy ключ проекта.
func (c *Client) DeleteDeployKey(ctx context.Context, pid any, keyID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", deployKeysPath(pid), keyID), nil, ro)
}

// GetAllDeployKeys возвращает все deploy ключи сервера. Только для администраторов.
func (c *Client) GetAllDeployKeys(ctx context.Context, ro ...RequestOption) ([]DeployKey, error) {
	return fetchList[DeployKey](ctx, c, http.MethodGet, "/deploy_keys", nil, ro)
}
