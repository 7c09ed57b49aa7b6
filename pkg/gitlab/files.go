package gitlab

import (
	"context"
	"net/http"
)

// FileOptions — параметры CreateFile и UpdateFile.
type FileOptions struct {
	FilePath      string  `url:"file_path"`
	BranchName    string  `url:"branch_name"`
	Content       string  `url:"content"`
	CommitMessage string  `url:"commit_message"`
	Encoding      *string `url:"encoding,omitempty"`
	AuthorEmail   *string `url:"author_email,omitempty"`
	AuthorName    *string `url:"author_name,omitempty"`
}

// DeleteFileOptions — параметры DeleteFile.
type DeleteFileOptions struct {
	FilePath      string `url:"file_path"`
	BranchName    string `url:"branch_name"`
	CommitMessage string `url:"commit_message"`
}

// GetFile возвращает файл filePath в ревизии ref с содержимым и метаданными.
func (c *Client) GetFile(ctx context.Context, pid any, filePath, ref string, ro ...RequestOption) (*File, error) {
	params := map[string]string{"file_path": filePath, "ref": ref}
	return fetchOne[File](ctx, c, http.MethodGet, repoPath(pid, "files"), params, ro)
}

// CreateFile создаёт файл коммитом в ветку.
func (c *Client) CreateFile(ctx context.Context, pid any, opts *FileOptions, ro ...RequestOption) (*FileInfo, error) {
	return fetchOne[FileInfo](ctx, c, http.MethodPost, repoPath(pid, "files"), opts, ro)
}

// UpdateFile изменяет файл коммитом в ветку.
func (c *Client) UpdateFile(ctx context.Context, pid any, opts *FileOptions, ro ...RequestOption) (*FileInfo, error) {
	return fetchOne[FileInfo](ctx, c, http.MethodPut, repoPath(pid, "files"), opts, ro)
}

// DeleteFile удаляет файл коммитом в ветку.
func (c *Client) DeleteFile(ctx context.Context, pid any, opts *DeleteFileOptions, ro ...RequestOption) (bool, error) {
	return action(ctx, c, http.MethodDelete, repoPath(pid, "files"), opts, ro)
}
