package gitlab

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Kargones/gitlab-client/internal/constants"
)

// ListCommitsOptions — фильтры GetRepositoryCommits.
type ListCommitsOptions struct {
	ListOptions
	RefName *string `url:"ref_name,omitempty"`
	Since   *string `url:"since,omitempty"`
	Until   *string `url:"until,omitempty"`
}

// ListTreeOptions — параметры GetRepositoryTree.
type ListTreeOptions struct {
	ListOptions
	Path      *string `url:"path,omitempty"`
	RefName   *string `url:"ref_name,omitempty"`
	Recursive *bool   `url:"recursive,omitempty"`
}

func repoPath(pid any, suffix string) string {
	return fmt.Sprintf("/projects/%s/repository/%s", pathEscape(pid), suffix)
}

// GetRepositoryCommits возвращает коммиты репозитория.
func (c *Client) GetRepositoryCommits(ctx context.Context, pid any, opts *ListCommitsOptions, ro ...RequestOption) ([]Commit, error) {
	return fetchList[Commit](ctx, c, http.MethodGet, repoPath(pid, "commits"), opts, ro)
}

// GetRepositoryCommit возвращает коммит по SHA или имени ref.
func (c *Client) GetRepositoryCommit(ctx context.Context, pid any, sha string, ro ...RequestOption) (*Commit, error) {
	return fetchOne[Commit](ctx, c, http.MethodGet, repoPath(pid, "commits/"+pathEscape(sha)), nil, ro)
}

// GetRepositoryCommitDiff возвращает diff коммита. Сервер отдаёт массив
// из одного элемента, метод возвращает этот элемент.
func (c *Client) GetRepositoryCommitDiff(ctx context.Context, pid any, sha string, ro ...RequestOption) (*Diff, error) {
	diffs, err := fetchList[Diff](ctx, c, http.MethodGet, repoPath(pid, "commits/"+pathEscape(sha)+"/diff"), nil, ro)
	if err != nil || len(diffs) == 0 {
		return nil, err
	}
	return &diffs[0], nil
}

// GetRepositoryTree возвращает содержимое каталога репозитория.
func (c *Client) GetRepositoryTree(ctx context.Context, pid any, opts *ListTreeOptions, ro ...RequestOption) ([]TreeNode, error) {
	return fetchList[TreeNode](ctx, c, http.MethodGet, repoPath(pid, "tree"), opts, ro)
}

// GetRawFile возвращает содержимое файла filePath в ревизии sha.
func (c *Client) GetRawFile(ctx context.Context, pid any, sha, filePath string, ro ...RequestOption) ([]byte, error) {
	params := map[string]string{"filepath": filePath}
	return fetchRaw(ctx, c, repoPath(pid, "blobs/"+pathEscape(sha)), params, ro)
}

// GetRawBlob возвращает содержимое blob по его SHA.
func (c *Client) GetRawBlob(ctx context.Context, pid any, sha string, ro ...RequestOption) ([]byte, error) {
	return fetchRaw(ctx, c, repoPath(pid, "raw_blobs/"+pathEscape(sha)), nil, ro)
}

// CompareBranchesTagsCommits сравнивает две ревизии: ветки, теги или коммиты.
func (c *Client) CompareBranchesTagsCommits(ctx context.Context, pid any, from, to string, ro ...RequestOption) (*Compare, error) {
	params := map[string]string{"from": from, "to": to}
	return fetchOne[Compare](ctx, c, http.MethodGet, repoPath(pid, "compare"), params, ro)
}

// GetContributors возвращает статистику авторов репозитория.
func (c *Client) GetContributors(ctx context.Context, pid any, ro ...RequestOption) ([]Contributor, error) {
	return fetchList[Contributor](ctx, c, http.MethodGet, repoPath(pid, "contributors"), nil, ro)
}

// GetFileArchive скачивает архив репозитория в ревизии sha (пустая строка —
// ветка по умолчанию) и записывает его на диск.
//
// dest — путь файла или существующий каталог. Если dest пуст или указывает
// на каталог, имя файла берётся из заголовка Content-Disposition ответа.
// Возвращает путь записанного файла. В режиме подавления неуспешный ответ
// даёт ("", nil) и файл не создаётся.
func (c *Client) GetFileArchive(ctx context.Context, pid any, sha, dest string, ro ...RequestOption) (string, error) {
	var params map[string]string
	if sha != "" {
		params = map[string]string{"sha": sha}
	}

	var header http.Header
	ro = append(ro, captureHeader(&header))
	body, err := fetchRaw(ctx, c, repoPath(pid, "archive"), params, ro)
	if err != nil || body == nil {
		return "", err
	}

	target, err := archiveTarget(dest, header)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", fmt.Errorf("запись архива %s: %w", target, err)
	}
	c.logger.Debug("gitlab: архив репозитория сохранён", "path", target, "size", len(body))
	return target, nil
}

func archiveTarget(dest string, header http.Header) (string, error) {
	if dest != "" {
		info, err := os.Stat(dest)
		if err != nil || !info.IsDir() {
			return dest, nil
		}
	}

	name := archiveFileName(header)
	if name == "" {
		return "", NewValidationError("dest", "не задан путь файла и ответ не содержит Content-Disposition")
	}
	return filepath.Join(dest, name), nil
}

// archiveFileName извлекает имя файла из Content-Disposition без компонентов пути.
func archiveFileName(header http.Header) string {
	_, params, err := mime.ParseMediaType(header.Get(constants.HeaderContentDisp))
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
