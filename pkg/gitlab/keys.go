package gitlab

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// AddSSHKeyOptions — параметры AddSSHKey и AddSSHKeyUser.
type AddSSHKeyOptions struct {
	Title string `url:"title"`
	Key   string `url:"key"`
}

// GetSSHKeys возвращает SSH ключи текущего пользователя.
func (c *Client) GetSSHKeys(ctx context.Context, ro ...RequestOption) ([]SSHKey, error) {
	return fetchList[SSHKey](ctx, c, http.MethodGet, "/user/keys", nil, ro)
}

// GetUserSSHKeys возвращает SSH ключи пользователя uid.
func (c *Client) GetUserSSHKeys(ctx context.Context, uid int64, ro ...RequestOption) ([]SSHKey, error) {
	return fetchList[SSHKey](ctx, c, http.MethodGet, fmt.Sprintf("/users/%d/keys", uid), nil, ro)
}

// Key возвращает SSH ключ вместе с владельцем по id ключа. Только для администраторов.
func (c *Client) Key(ctx context.Context, id int64, ro ...RequestOption) (*SSHKey, error) {
	return fetchOne[SSHKey](ctx, c, http.MethodGet, fmt.Sprintf("/keys/%d", id), nil, ro)
}

// GetSSHKey возвращает SSH ключ текущего пользователя по id.
//
// Deprecated: используйте Key, который возвращает ключ вместе с владельцем.
func (c *Client) GetSSHKey(ctx context.Context, id int64, ro ...RequestOption) (*SSHKey, error) {
	c.deprecated("GetSSHKey", "Key")
	return fetchOne[SSHKey](ctx, c, http.MethodGet, fmt.Sprintf("/user/keys/%d", id), nil, ro)
}

// AddSSHKey добавляет SSH ключ текущему пользователю.
func (c *Client) AddSSHKey(ctx context.Context, title, key string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, "/user/keys", &AddSSHKeyOptions{Title: title, Key: key}, ro)
}

// AddSSHKeyUser добавляет SSH ключ пользователю uid.
func (c *Client) AddSSHKeyUser(ctx context.Context, uid int64, title, key string, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodPost, fmt.Sprintf("/users/%d/keys", uid),
		&AddSSHKeyOptions{Title: title, Key: key}, ro)
}

// DeleteSSHKey удаляет SSH ключ текущего пользователя.
//
// Сервер отвечает 200 и при неудаче, отличая её только телом "null":
// в этом случае возвращается false.
func (c *Client) DeleteSSHKey(ctx context.Context, id int64, ro ...RequestOption) (bool, error) {
	var body []byte
	ok, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/keys/%d", id), nil, &body, ro)
	if !ok {
		return false, err
	}
	return !bytes.Equal(bytes.TrimSpace(body), []byte("null")), nil
}

// DeleteSSHKeyUser удаляет SSH ключ keyID пользователя uid.
func (c *Client) DeleteSSHKeyUser(ctx context.Context, uid, keyID int64, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, fmt.Sprintf("/users/%d/keys/%d", uid, keyID), nil, ro)
}
