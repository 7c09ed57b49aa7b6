package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// Объекты, к которым GitLab принимает заметки.
const (
	notesIssues        = "issues"
	notesSnippets      = "snippets"
	notesMergeRequests = "merge_requests"
)

func notesPath(pid any, kind string, objectID int64) string {
	return fmt.Sprintf("/projects/%s/%s/%d/notes", pathEscape(pid), kind, objectID)
}

func (c *Client) listNotes(ctx context.Context, pid any, kind string, objectID int64, opts *ListOptions, ro []RequestOption) ([]Note, error) {
	return fetchList[Note](ctx, c, http.MethodGet, notesPath(pid, kind, objectID), opts, ro)
}

func (c *Client) getNote(ctx context.Context, pid any, kind string, objectID, noteID int64, ro []RequestOption) (*Note, error) {
	return fetchOne[Note](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", notesPath(pid, kind, objectID), noteID), nil, ro)
}

func (c *Client) createNote(ctx context.Context, pid any, kind string, objectID int64, body string, ro []RequestOption) (*Note, error) {
	if body == "" {
		return nil, NewValidationError("body", "текст заметки обязателен")
	}
	return fetchOne[Note](ctx, c, http.MethodPost, notesPath(pid, kind, objectID), map[string]string{"body": body}, ro)
}

// GetIssueNotes возвращает заметки задачи.
func (c *Client) GetIssueNotes(ctx context.Context, pid any, issueID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error) {
	return c.listNotes(ctx, pid, notesIssues, issueID, opts, ro)
}

// GetIssueNote возвращает заметку задачи.
func (c *Client) GetIssueNote(ctx context.Context, pid any, issueID, noteID int64, ro ...RequestOption) (*Note, error) {
	return c.getNote(ctx, pid, notesIssues, issueID, noteID, ro)
}

// CreateIssueNote добавляет заметку к задаче.
func (c *Client) CreateIssueNote(ctx context.Context, pid any, issueID int64, body string, ro ...RequestOption) (*Note, error) {
	return c.createNote(ctx, pid, notesIssues, issueID, body, ro)
}

// GetSnippetNotes возвращает заметки сниппета.
func (c *Client) GetSnippetNotes(ctx context.Context, pid any, snippetID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error) {
	return c.listNotes(ctx, pid, notesSnippets, snippetID, opts, ro)
}

// GetSnippetNote возвращает заметку сниппета.
func (c *Client) GetSnippetNote(ctx context.Context, pid any, snippetID, noteID int64, ro ...RequestOption) (*Note, error) {
	return c.getNote(ctx, pid, notesSnippets, snippetID, noteID, ro)
}

// CreateSnippetNote добавляет заметку к сниппету.
func (c *Client) CreateSnippetNote(ctx context.Context, pid any, snippetID int64, body string, ro ...RequestOption) (*Note, error) {
	return c.createNote(ctx, pid, notesSnippets, snippetID, body, ro)
}

// GetMergeRequestNotes возвращает заметки merge request.
func (c *Client) GetMergeRequestNotes(ctx context.Context, pid any, mrID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error) {
	return c.listNotes(ctx, pid, notesMergeRequests, mrID, opts, ro)
}

// GetMergeRequestNote возвращает заметку merge request.
func (c *Client) GetMergeRequestNote(ctx context.Context, pid any, mrID, noteID int64, ro ...RequestOption) (*Note, error) {
	return c.getNote(ctx, pid, notesMergeRequests, mrID, noteID, ro)
}

// CreateMergeRequestNote добавляет заметку к merge request.
func (c *Client) CreateMergeRequestNote(ctx context.Context, pid any, mrID int64, body string, ro ...RequestOption) (*Note, error) {
	return c.createNote(ctx, pid, notesMergeRequests, mrID, body, ro)
}
