package gitlab

import (
	"context"
)

// Интерфейсы сгруппированы по ресурсам API. Потребители зависят от
// минимального нужного набора, *Client реализует все.

// SessionManager — аутентификация и контекст sudo.
type SessionManager interface {
	Login(ctx context.Context, opts LoginOptions, ro ...RequestOption) (*Session, error)
	SetSudo(user string)
	Sudo() string
}

// Transport — низкоуровневые вызовы произвольных эндпоинтов.
type Transport interface {
	Get(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error)
	Post(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error)
	Put(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error)
	Delete(ctx context.Context, path string, params, v any, opts ...RequestOption) (bool, error)
}

// UserService — управление пользователями.
type UserService interface {
	GetUsers(ctx context.Context, opts *ListUsersOptions, ro ...RequestOption) ([]User, error)
	GetUser(ctx context.Context, uid int64, ro ...RequestOption) (*User, error)
	CurrentUser(ctx context.Context, ro ...RequestOption) (*User, error)
	CreateUser(ctx context.Context, opts *CreateUserOptions, ro ...RequestOption) (*User, error)
	EditUser(ctx context.Context, uid int64, opts *EditUserOptions, ro ...RequestOption) (*User, error)
	DeleteUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error)
	BlockUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error)
	UnblockUser(ctx context.Context, uid int64, ro ...RequestOption) (bool, error)
}

// KeyService — SSH ключи пользователей.
type KeyService interface {
	GetSSHKeys(ctx context.Context, ro ...RequestOption) ([]SSHKey, error)
	GetUserSSHKeys(ctx context.Context, uid int64, ro ...RequestOption) ([]SSHKey, error)
	Key(ctx context.Context, id int64, ro ...RequestOption) (*SSHKey, error)
	GetSSHKey(ctx context.Context, id int64, ro ...RequestOption) (*SSHKey, error)
	AddSSHKey(ctx context.Context, title, key string, ro ...RequestOption) (bool, error)
	AddSSHKeyUser(ctx context.Context, uid int64, title, key string, ro ...RequestOption) (bool, error)
	DeleteSSHKey(ctx context.Context, id int64, ro ...RequestOption) (bool, error)
	DeleteSSHKeyUser(ctx context.Context, uid, keyID int64, ro ...RequestOption) (bool, error)
}

// DeployKeyService — deploy ключи проектов.
type DeployKeyService interface {
	GetDeployKeys(ctx context.Context, pid any, ro ...RequestOption) ([]DeployKey, error)
	GetDeployKey(ctx context.Context, pid any, keyID int64, ro ...RequestOption) (*DeployKey, error)
	AddDeployKey(ctx context.Context, pid any, title, key string, ro ...RequestOption) (*DeployKey, error)
	DeleteDeployKey(ctx context.Context, pid any, keyID int64, ro ...RequestOption) (bool, error)
	GetAllDeployKeys(ctx context.Context, ro ...RequestOption) ([]DeployKey, error)
}

// ProjectService — проекты, форки и участники проектов.
type ProjectService interface {
	GetProjects(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error)
	GetProjectsAll(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error)
	GetProjectsOwned(ctx context.Context, opts *ListProjectsOptions, ro ...RequestOption) ([]Project, error)
	GetProject(ctx context.Context, pid any, ro ...RequestOption) (*Project, error)
	GetProjectEvents(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Event, error)
	CreateProject(ctx context.Context, opts *CreateProjectOptions, ro ...RequestOption) (*Project, error)
	CreateProjectUser(ctx context.Context, uid int64, opts *CreateProjectOptions, ro ...RequestOption) (*Project, error)
	EditProject(ctx context.Context, pid any, opts *EditProjectOptions, ro ...RequestOption) (*Project, error)
	DeleteProject(ctx context.Context, pid any, ro ...RequestOption) (bool, error)
	SearchProject(ctx context.Context, search string, opts *ListOptions, ro ...RequestOption) ([]Project, error)
	CreateFork(ctx context.Context, pid any, ro ...RequestOption) (*Project, error)
	CreateForkRelation(ctx context.Context, pid any, forkedFromID int64, ro ...RequestOption) (bool, error)
	RemoveForkRelation(ctx context.Context, pid any, ro ...RequestOption) (bool, error)
	ShareProject(ctx context.Context, pid any, groupID int64, access AccessLevel, ro ...RequestOption) (bool, error)
	GetProjectMembers(ctx context.Context, pid any, opts *ListMembersOptions, ro ...RequestOption) ([]Member, error)
	AddProjectMember(ctx context.Context, pid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error)
	EditProjectMember(ctx context.Context, pid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error)
	DeleteProjectMember(ctx context.Context, pid any, uid int64, ro ...RequestOption) (bool, error)
}

// HookService — webhooks проектов и системные webhooks.
type HookService interface {
	GetProjectHooks(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Hook, error)
	GetProjectHook(ctx context.Context, pid any, hookID int64, ro ...RequestOption) (*Hook, error)
	AddProjectHook(ctx context.Context, pid any, opts *HookOptions, ro ...RequestOption) (*Hook, error)
	EditProjectHook(ctx context.Context, pid any, hookID int64, opts *HookOptions, ro ...RequestOption) (*Hook, error)
	DeleteProjectHook(ctx context.Context, pid any, hookID int64, ro ...RequestOption) (bool, error)
	GetSystemHooks(ctx context.Context, opts *ListOptions, ro ...RequestOption) ([]SystemHook, error)
	AddSystemHook(ctx context.Context, hookURL string, ro ...RequestOption) (*SystemHook, error)
	TestSystemHook(ctx context.Context, hookID int64, ro ...RequestOption) (*SystemHookEvent, error)
	DeleteSystemHook(ctx context.Context, hookID int64, ro ...RequestOption) (bool, error)
}

// BranchService — ветки репозитория.
type BranchService interface {
	GetBranches(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Branch, error)
	GetBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (*Branch, error)
	CreateBranch(ctx context.Context, pid any, branch, ref string, ro ...RequestOption) (*Branch, error)
	DeleteBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error)
	ProtectBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error)
	UnprotectBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error)
	GetRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (*Branch, error)
	ProtectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error)
	UnprotectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...RequestOption) (bool, error)
}

// RepositoryReader — чтение коммитов, дерева и содержимого репозитория.
type RepositoryReader interface {
	GetRepositoryCommits(ctx context.Context, pid any, opts *ListCommitsOptions, ro ...RequestOption) ([]Commit, error)
	GetRepositoryCommit(ctx context.Context, pid any, sha string, ro ...RequestOption) (*Commit, error)
	GetRepositoryCommitDiff(ctx context.Context, pid any, sha string, ro ...RequestOption) (*Diff, error)
	GetRepositoryTree(ctx context.Context, pid any, opts *ListTreeOptions, ro ...RequestOption) ([]TreeNode, error)
	GetRawFile(ctx context.Context, pid any, sha, filePath string, ro ...RequestOption) ([]byte, error)
	GetRawBlob(ctx context.Context, pid any, sha string, ro ...RequestOption) ([]byte, error)
	CompareBranchesTagsCommits(ctx context.Context, pid any, from, to string, ro ...RequestOption) (*Compare, error)
	GetContributors(ctx context.Context, pid any, ro ...RequestOption) ([]Contributor, error)
	GetFileArchive(ctx context.Context, pid any, sha, dest string, ro ...RequestOption) (string, error)
}

// TagService — теги репозитория.
type TagService interface {
	GetRepositoryTags(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Tag, error)
	CreateRepositoryTag(ctx context.Context, pid any, opts *CreateTagOptions, ro ...RequestOption) (*Tag, error)
	DeleteRepositoryTag(ctx context.Context, pid any, tag string, ro ...RequestOption) (bool, error)
	SetTagRelease(ctx context.Context, pid any, tag, description string, ro ...RequestOption) (*TagRelease, error)
}

// FileService — файлы репозитория.
type FileService interface {
	GetFile(ctx context.Context, pid any, filePath, ref string, ro ...RequestOption) (*File, error)
	CreateFile(ctx context.Context, pid any, opts *FileOptions, ro ...RequestOption) (*FileInfo, error)
	UpdateFile(ctx context.Context, pid any, opts *FileOptions, ro ...RequestOption) (*FileInfo, error)
	DeleteFile(ctx context.Context, pid any, opts *DeleteFileOptions, ro ...RequestOption) (bool, error)
}

// IssueService — задачи.
type IssueService interface {
	GetIssues(ctx context.Context, opts *ListIssuesOptions, ro ...RequestOption) ([]Issue, error)
	GetProjectIssues(ctx context.Context, pid any, opts *ListIssuesOptions, ro ...RequestOption) ([]Issue, error)
	GetProjectIssue(ctx context.Context, pid any, issueID int64, ro ...RequestOption) (*Issue, error)
	CreateIssue(ctx context.Context, pid any, opts *IssueOptions, ro ...RequestOption) (*Issue, error)
	EditIssue(ctx context.Context, pid any, issueID int64, opts *IssueOptions, ro ...RequestOption) (*Issue, error)
}

// MilestoneService — этапы проектов.
type MilestoneService interface {
	GetMilestones(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Milestone, error)
	GetMilestone(ctx context.Context, pid any, milestoneID int64, ro ...RequestOption) (*Milestone, error)
	CreateMilestone(ctx context.Context, pid any, opts *MilestoneOptions, ro ...RequestOption) (*Milestone, error)
	EditMilestone(ctx context.Context, pid any, milestoneID int64, opts *MilestoneOptions, ro ...RequestOption) (*Milestone, error)
}

// MergeRequestService — merge requests.
type MergeRequestService interface {
	GetMergeRequests(ctx context.Context, pid any, opts *ListMergeRequestsOptions, ro ...RequestOption) ([]MergeRequest, error)
	GetMergeRequest(ctx context.Context, pid any, mrID int64, ro ...RequestOption) (*MergeRequest, error)
	GetMergeRequestChanges(ctx context.Context, pid any, mrID int64, ro ...RequestOption) (*MergeRequest, error)
	CreateMergeRequest(ctx context.Context, pid any, opts *CreateMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error)
	UpdateMergeRequest(ctx context.Context, pid any, mrID int64, opts *UpdateMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error)
	AcceptMergeRequest(ctx context.Context, pid any, mrID int64, opts *AcceptMergeRequestOptions, ro ...RequestOption) (*MergeRequest, error)
	GetMergeRequestComments(ctx context.Context, pid any, mrID int64, opts *ListOptions, ro ...RequestOption) ([]MergeRequestComment, error)
	AddCommentToMergeRequest(ctx context.Context, pid any, mrID int64, note string, ro ...RequestOption) (*MergeRequestComment, error)
}

// SnippetService — сниппеты проектов.
type SnippetService interface {
	GetSnippets(ctx context.Context, pid any, opts *ListOptions, ro ...RequestOption) ([]Snippet, error)
	GetSnippet(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) (*Snippet, error)
	GetSnippetContent(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) ([]byte, error)
	CreateSnippet(ctx context.Context, pid any, opts *SnippetOptions, ro ...RequestOption) (*Snippet, error)
	DeleteSnippet(ctx context.Context, pid any, snippetID int64, ro ...RequestOption) (bool, error)
}

// NoteService — заметки к задачам, сниппетам и merge requests.
type NoteService interface {
	GetIssueNotes(ctx context.Context, pid any, issueID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error)
	GetIssueNote(ctx context.Context, pid any, issueID, noteID int64, ro ...RequestOption) (*Note, error)
	CreateIssueNote(ctx context.Context, pid any, issueID int64, body string, ro ...RequestOption) (*Note, error)
	GetSnippetNotes(ctx context.Context, pid any, snippetID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error)
	GetSnippetNote(ctx context.Context, pid any, snippetID, noteID int64, ro ...RequestOption) (*Note, error)
	CreateSnippetNote(ctx context.Context, pid any, snippetID int64, body string, ro ...RequestOption) (*Note, error)
	GetMergeRequestNotes(ctx context.Context, pid any, mrID int64, opts *ListOptions, ro ...RequestOption) ([]Note, error)
	GetMergeRequestNote(ctx context.Context, pid any, mrID, noteID int64, ro ...RequestOption) (*Note, error)
	CreateMergeRequestNote(ctx context.Context, pid any, mrID int64, body string, ro ...RequestOption) (*Note, error)
}

// GroupService — группы и их участники.
type GroupService interface {
	GetGroups(ctx context.Context, opts *ListGroupsOptions, ro ...RequestOption) ([]Group, error)
	GetGroup(ctx context.Context, gid any, ro ...RequestOption) (*Group, error)
	SearchGroups(ctx context.Context, search string, opts *ListOptions, ro ...RequestOption) ([]Group, error)
	CreateGroup(ctx context.Context, opts *CreateGroupOptions, ro ...RequestOption) (*Group, error)
	DeleteGroup(ctx context.Context, gid any, ro ...RequestOption) (bool, error)
	MoveProject(ctx context.Context, gid any, pid any, ro ...RequestOption) (bool, error)
	GetGroupMembers(ctx context.Context, gid any, opts *ListMembersOptions, ro ...RequestOption) ([]Member, error)
	AddGroupMember(ctx context.Context, gid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error)
	EditGroupMember(ctx context.Context, gid any, uid int64, access AccessLevel, ro ...RequestOption) (bool, error)
	DeleteGroupMember(ctx context.Context, gid any, uid int64, ro ...RequestOption) (bool, error)
}

// LabelService — метки проектов.
type LabelService interface {
	GetLabels(ctx context.Context, pid any, ro ...RequestOption) ([]Label, error)
	CreateLabel(ctx context.Context, pid any, name, color string, ro ...RequestOption) (*Label, error)
	EditLabel(ctx context.Context, pid any, opts *EditLabelOptions, ro ...RequestOption) (*Label, error)
	DeleteLabel(ctx context.Context, pid any, name string, ro ...RequestOption) (bool, error)
}

// NamespaceService — пространства имён.
type NamespaceService interface {
	GetNamespaces(ctx context.Context, opts *ListNamespacesOptions, ro ...RequestOption) ([]Namespace, error)
}

// API — полный набор операций клиента GitLab.
type API interface {
	SessionManager
	Transport
	UserService
	KeyService
	DeployKeyService
	ProjectService
	HookService
	BranchService
	RepositoryReader
	TagService
	FileService
	IssueService
	MilestoneService
	MergeRequestService
	SnippetService
	NoteService
	GroupService
	LabelService
	NamespaceService
}
