package gitlabtest

import (
	"context"

	"github.com/Kargones/gitlab-client/pkg/gitlab"
)

// Compile-time проверки реализации интерфейсов
var (
	_ gitlab.API                 = (*MockClient)(nil)
	_ gitlab.SessionManager      = (*MockClient)(nil)
	_ gitlab.Transport           = (*MockClient)(nil)
	_ gitlab.UserService         = (*MockClient)(nil)
	_ gitlab.KeyService          = (*MockClient)(nil)
	_ gitlab.DeployKeyService    = (*MockClient)(nil)
	_ gitlab.ProjectService      = (*MockClient)(nil)
	_ gitlab.HookService         = (*MockClient)(nil)
	_ gitlab.BranchService       = (*MockClient)(nil)
	_ gitlab.RepositoryReader    = (*MockClient)(nil)
	_ gitlab.TagService          = (*MockClient)(nil)
	_ gitlab.FileService         = (*MockClient)(nil)
	_ gitlab.IssueService        = (*MockClient)(nil)
	_ gitlab.MilestoneService    = (*MockClient)(nil)
	_ gitlab.MergeRequestService = (*MockClient)(nil)
	_ gitlab.SnippetService      = (*MockClient)(nil)
	_ gitlab.NoteService         = (*MockClient)(nil)
	_ gitlab.GroupService        = (*MockClient)(nil)
	_ gitlab.LabelService        = (*MockClient)(nil)
	_ gitlab.NamespaceService    = (*MockClient)(nil)
)

// MockClient — мок-реализация gitlab.API для тестирования.
// Незаданная функция возвращает пустой успешный результат.
type MockClient struct {
	sudo string

	// SessionManager
	LoginFunc   func(ctx context.Context, opts gitlab.LoginOptions, ro ...gitlab.RequestOption) (*gitlab.Session, error)
	SetSudoFunc func(user string)
	SudoFunc    func() string

	// Transport
	GetFunc    func(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error)
	PostFunc   func(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error)
	PutFunc    func(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error)
	DeleteFunc func(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error)

	// UserService
	GetUsersFunc    func(ctx context.Context, opts *gitlab.ListUsersOptions, ro ...gitlab.RequestOption) ([]gitlab.User, error)
	GetUserFunc     func(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (*gitlab.User, error)
	CurrentUserFunc func(ctx context.Context, ro ...gitlab.RequestOption) (*gitlab.User, error)
	CreateUserFunc  func(ctx context.Context, opts *gitlab.CreateUserOptions, ro ...gitlab.RequestOption) (*gitlab.User, error)
	EditUserFunc    func(ctx context.Context, uid int64, opts *gitlab.EditUserOptions, ro ...gitlab.RequestOption) (*gitlab.User, error)
	DeleteUserFunc  func(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error)
	BlockUserFunc   func(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error)
	UnblockUserFunc func(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error)

	// KeyService
	GetSSHKeysFunc       func(ctx context.Context, ro ...gitlab.RequestOption) ([]gitlab.SSHKey, error)
	GetUserSSHKeysFunc   func(ctx context.Context, uid int64, ro ...gitlab.RequestOption) ([]gitlab.SSHKey, error)
	KeyFunc              func(ctx context.Context, id int64, ro ...gitlab.RequestOption) (*gitlab.SSHKey, error)
	GetSSHKeyFunc        func(ctx context.Context, id int64, ro ...gitlab.RequestOption) (*gitlab.SSHKey, error)
	AddSSHKeyFunc        func(ctx context.Context, title, key string, ro ...gitlab.RequestOption) (bool, error)
	AddSSHKeyUserFunc    func(ctx context.Context, uid int64, title, key string, ro ...gitlab.RequestOption) (bool, error)
	DeleteSSHKeyFunc     func(ctx context.Context, id int64, ro ...gitlab.RequestOption) (bool, error)
	DeleteSSHKeyUserFunc func(ctx context.Context, uid, keyID int64, ro ...gitlab.RequestOption) (bool, error)

	// DeployKeyService
	GetDeployKeysFunc    func(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.DeployKey, error)
	GetDeployKeyFunc     func(ctx context.Context, pid any, keyID int64, ro ...gitlab.RequestOption) (*gitlab.DeployKey, error)
	AddDeployKeyFunc     func(ctx context.Context, pid any, title, key string, ro ...gitlab.RequestOption) (*gitlab.DeployKey, error)
	DeleteDeployKeyFunc  func(ctx context.Context, pid any, keyID int64, ro ...gitlab.RequestOption) (bool, error)
	GetAllDeployKeysFunc func(ctx context.Context, ro ...gitlab.RequestOption) ([]gitlab.DeployKey, error)

	// ProjectService
	GetProjectsFunc         func(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error)
	GetProjectsAllFunc      func(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error)
	GetProjectsOwnedFunc    func(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error)
	GetProjectFunc          func(ctx context.Context, pid any, ro ...gitlab.RequestOption) (*gitlab.Project, error)
	GetProjectEventsFunc    func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Event, error)
	CreateProjectFunc       func(ctx context.Context, opts *gitlab.CreateProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error)
	CreateProjectUserFunc   func(ctx context.Context, uid int64, opts *gitlab.CreateProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error)
	EditProjectFunc         func(ctx context.Context, pid any, opts *gitlab.EditProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error)
	DeleteProjectFunc       func(ctx context.Context, pid any, ro ...gitlab.RequestOption) (bool, error)
	SearchProjectFunc       func(ctx context.Context, search string, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error)
	CreateForkFunc          func(ctx context.Context, pid any, ro ...gitlab.RequestOption) (*gitlab.Project, error)
	CreateForkRelationFunc  func(ctx context.Context, pid any, forkedFromID int64, ro ...gitlab.RequestOption) (bool, error)
	RemoveForkRelationFunc  func(ctx context.Context, pid any, ro ...gitlab.RequestOption) (bool, error)
	ShareProjectFunc        func(ctx context.Context, pid any, groupID int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error)
	GetProjectMembersFunc   func(ctx context.Context, pid any, opts *gitlab.ListMembersOptions, ro ...gitlab.RequestOption) ([]gitlab.Member, error)
	AddProjectMemberFunc    func(ctx context.Context, pid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error)
	EditProjectMemberFunc   func(ctx context.Context, pid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error)
	DeleteProjectMemberFunc func(ctx context.Context, pid any, uid int64, ro ...gitlab.RequestOption) (bool, error)

	// HookService
	GetProjectHooksFunc   func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Hook, error)
	GetProjectHookFunc    func(ctx context.Context, pid any, hookID int64, ro ...gitlab.RequestOption) (*gitlab.Hook, error)
	AddProjectHookFunc    func(ctx context.Context, pid any, opts *gitlab.HookOptions, ro ...gitlab.RequestOption) (*gitlab.Hook, error)
	EditProjectHookFunc   func(ctx context.Context, pid any, hookID int64, opts *gitlab.HookOptions, ro ...gitlab.RequestOption) (*gitlab.Hook, error)
	DeleteProjectHookFunc func(ctx context.Context, pid any, hookID int64, ro ...gitlab.RequestOption) (bool, error)
	GetSystemHooksFunc    func(ctx context.Context, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.SystemHook, error)
	AddSystemHookFunc     func(ctx context.Context, hookURL string, ro ...gitlab.RequestOption) (*gitlab.SystemHook, error)
	TestSystemHookFunc    func(ctx context.Context, hookID int64, ro ...gitlab.RequestOption) (*gitlab.SystemHookEvent, error)
	DeleteSystemHookFunc  func(ctx context.Context, hookID int64, ro ...gitlab.RequestOption) (bool, error)

	// BranchService
	GetBranchesFunc               func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Branch, error)
	GetBranchFunc                 func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (*gitlab.Branch, error)
	CreateBranchFunc              func(ctx context.Context, pid any, branch, ref string, ro ...gitlab.RequestOption) (*gitlab.Branch, error)
	DeleteBranchFunc              func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error)
	ProtectBranchFunc             func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error)
	UnprotectBranchFunc           func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error)
	GetRepositoryBranchFunc       func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (*gitlab.Branch, error)
	ProtectRepositoryBranchFunc   func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error)
	UnprotectRepositoryBranchFunc func(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error)

	// RepositoryReader
	GetRepositoryCommitsFunc       func(ctx context.Context, pid any, opts *gitlab.ListCommitsOptions, ro ...gitlab.RequestOption) ([]gitlab.Commit, error)
	GetRepositoryCommitFunc        func(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) (*gitlab.Commit, error)
	GetRepositoryCommitDiffFunc    func(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) (*gitlab.Diff, error)
	GetRepositoryTreeFunc          func(ctx context.Context, pid any, opts *gitlab.ListTreeOptions, ro ...gitlab.RequestOption) ([]gitlab.TreeNode, error)
	GetRawFileFunc                 func(ctx context.Context, pid any, sha, filePath string, ro ...gitlab.RequestOption) ([]byte, error)
	GetRawBlobFunc                 func(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) ([]byte, error)
	CompareBranchesTagsCommitsFunc func(ctx context.Context, pid any, from, to string, ro ...gitlab.RequestOption) (*gitlab.Compare, error)
	GetContributorsFunc            func(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.Contributor, error)
	GetFileArchiveFunc             func(ctx context.Context, pid any, sha, dest string, ro ...gitlab.RequestOption) (string, error)

	// TagService
	GetRepositoryTagsFunc   func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Tag, error)
	CreateRepositoryTagFunc func(ctx context.Context, pid any, opts *gitlab.CreateTagOptions, ro ...gitlab.RequestOption) (*gitlab.Tag, error)
	DeleteRepositoryTagFunc func(ctx context.Context, pid any, tag string, ro ...gitlab.RequestOption) (bool, error)
	SetTagReleaseFunc       func(ctx context.Context, pid any, tag, description string, ro ...gitlab.RequestOption) (*gitlab.TagRelease, error)

	// FileService
	GetFileFunc    func(ctx context.Context, pid any, filePath, ref string, ro ...gitlab.RequestOption) (*gitlab.File, error)
	CreateFileFunc func(ctx context.Context, pid any, opts *gitlab.FileOptions, ro ...gitlab.RequestOption) (*gitlab.FileInfo, error)
	UpdateFileFunc func(ctx context.Context, pid any, opts *gitlab.FileOptions, ro ...gitlab.RequestOption) (*gitlab.FileInfo, error)
	DeleteFileFunc func(ctx context.Context, pid any, opts *gitlab.DeleteFileOptions, ro ...gitlab.RequestOption) (bool, error)

	// IssueService
	GetIssuesFunc        func(ctx context.Context, opts *gitlab.ListIssuesOptions, ro ...gitlab.RequestOption) ([]gitlab.Issue, error)
	GetProjectIssuesFunc func(ctx context.Context, pid any, opts *gitlab.ListIssuesOptions, ro ...gitlab.RequestOption) ([]gitlab.Issue, error)
	GetProjectIssueFunc  func(ctx context.Context, pid any, issueID int64, ro ...gitlab.RequestOption) (*gitlab.Issue, error)
	CreateIssueFunc      func(ctx context.Context, pid any, opts *gitlab.IssueOptions, ro ...gitlab.RequestOption) (*gitlab.Issue, error)
	EditIssueFunc        func(ctx context.Context, pid any, issueID int64, opts *gitlab.IssueOptions, ro ...gitlab.RequestOption) (*gitlab.Issue, error)

	// MilestoneService
	GetMilestonesFunc   func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Milestone, error)
	GetMilestoneFunc    func(ctx context.Context, pid any, milestoneID int64, ro ...gitlab.RequestOption) (*gitlab.Milestone, error)
	CreateMilestoneFunc func(ctx context.Context, pid any, opts *gitlab.MilestoneOptions, ro ...gitlab.RequestOption) (*gitlab.Milestone, error)
	EditMilestoneFunc   func(ctx context.Context, pid any, milestoneID int64, opts *gitlab.MilestoneOptions, ro ...gitlab.RequestOption) (*gitlab.Milestone, error)

	// MergeRequestService
	GetMergeRequestsFunc         func(ctx context.Context, pid any, opts *gitlab.ListMergeRequestsOptions, ro ...gitlab.RequestOption) ([]gitlab.MergeRequest, error)
	GetMergeRequestFunc          func(ctx context.Context, pid any, mrID int64, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error)
	GetMergeRequestChangesFunc   func(ctx context.Context, pid any, mrID int64, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error)
	CreateMergeRequestFunc       func(ctx context.Context, pid any, opts *gitlab.CreateMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error)
	UpdateMergeRequestFunc       func(ctx context.Context, pid any, mrID int64, opts *gitlab.UpdateMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error)
	AcceptMergeRequestFunc       func(ctx context.Context, pid any, mrID int64, opts *gitlab.AcceptMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error)
	GetMergeRequestCommentsFunc  func(ctx context.Context, pid any, mrID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.MergeRequestComment, error)
	AddCommentToMergeRequestFunc func(ctx context.Context, pid any, mrID int64, note string, ro ...gitlab.RequestOption) (*gitlab.MergeRequestComment, error)

	// SnippetService
	GetSnippetsFunc       func(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Snippet, error)
	GetSnippetFunc        func(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) (*gitlab.Snippet, error)
	GetSnippetContentFunc func(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) ([]byte, error)
	CreateSnippetFunc     func(ctx context.Context, pid any, opts *gitlab.SnippetOptions, ro ...gitlab.RequestOption) (*gitlab.Snippet, error)
	DeleteSnippetFunc     func(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) (bool, error)

	// NoteService
	GetIssueNotesFunc          func(ctx context.Context, pid any, issueID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error)
	GetIssueNoteFunc           func(ctx context.Context, pid any, issueID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error)
	CreateIssueNoteFunc        func(ctx context.Context, pid any, issueID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error)
	GetSnippetNotesFunc        func(ctx context.Context, pid any, snippetID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error)
	GetSnippetNoteFunc         func(ctx context.Context, pid any, snippetID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error)
	CreateSnippetNoteFunc      func(ctx context.Context, pid any, snippetID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error)
	GetMergeRequestNotesFunc   func(ctx context.Context, pid any, mrID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error)
	GetMergeRequestNoteFunc    func(ctx context.Context, pid any, mrID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error)
	CreateMergeRequestNoteFunc func(ctx context.Context, pid any, mrID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error)

	// GroupService
	GetGroupsFunc         func(ctx context.Context, opts *gitlab.ListGroupsOptions, ro ...gitlab.RequestOption) ([]gitlab.Group, error)
	GetGroupFunc          func(ctx context.Context, gid any, ro ...gitlab.RequestOption) (*gitlab.Group, error)
	SearchGroupsFunc      func(ctx context.Context, search string, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Group, error)
	CreateGroupFunc       func(ctx context.Context, opts *gitlab.CreateGroupOptions, ro ...gitlab.RequestOption) (*gitlab.Group, error)
	DeleteGroupFunc       func(ctx context.Context, gid any, ro ...gitlab.RequestOption) (bool, error)
	MoveProjectFunc       func(ctx context.Context, gid any, pid any, ro ...gitlab.RequestOption) (bool, error)
	GetGroupMembersFunc   func(ctx context.Context, gid any, opts *gitlab.ListMembersOptions, ro ...gitlab.RequestOption) ([]gitlab.Member, error)
	AddGroupMemberFunc    func(ctx context.Context, gid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error)
	EditGroupMemberFunc   func(ctx context.Context, gid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error)
	DeleteGroupMemberFunc func(ctx context.Context, gid any, uid int64, ro ...gitlab.RequestOption) (bool, error)

	// LabelService
	GetLabelsFunc   func(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.Label, error)
	CreateLabelFunc func(ctx context.Context, pid any, name, color string, ro ...gitlab.RequestOption) (*gitlab.Label, error)
	EditLabelFunc   func(ctx context.Context, pid any, opts *gitlab.EditLabelOptions, ro ...gitlab.RequestOption) (*gitlab.Label, error)
	DeleteLabelFunc func(ctx context.Context, pid any, name string, ro ...gitlab.RequestOption) (bool, error)

	// NamespaceService
	GetNamespacesFunc func(ctx context.Context, opts *gitlab.ListNamespacesOptions, ro ...gitlab.RequestOption) ([]gitlab.Namespace, error)
}

// NewMockClient создаёт MockClient без заданных функций.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// NewMockClientWithUsers создаёт MockClient, у которого GetUsers возвращает
// users, а GetUser ищет пользователя по id. Отсутствующий id даёт ошибку
// с кодом GITLAB.NOT_FOUND.
func NewMockClientWithUsers(users []gitlab.User) *MockClient {
	m := NewMockClient()
	m.GetUsersFunc = func(context.Context, *gitlab.ListUsersOptions, ...gitlab.RequestOption) ([]gitlab.User, error) {
		return users, nil
	}
	m.GetUserFunc = func(_ context.Context, uid int64, _ ...gitlab.RequestOption) (*gitlab.User, error) {
		for i := range users {
			if users[i].ID == uid {
				return &users[i], nil
			}
		}
		return nil, NotFound("/users")
	}
	return m
}

// NewMockClientWithProject создаёт MockClient, у которого GetProject
// возвращает project для любого идентификатора.
func NewMockClientWithProject(project *gitlab.Project) *MockClient {
	m := NewMockClient()
	m.GetProjectFunc = func(context.Context, any, ...gitlab.RequestOption) (*gitlab.Project, error) {
		return project, nil
	}
	return m
}

// NotFound возвращает ошибку, которую клиент выдаёт на ответ 404.
func NotFound(path string) *gitlab.GitLabError {
	return &gitlab.GitLabError{
		Code:       gitlab.ErrGitLabNotFound,
		Message:    "404 Not found",
		StatusCode: 404,
		Method:     "GET",
		Path:       path,
	}
}

// -------------------------------------------------------------------
// SessionManager
// -------------------------------------------------------------------

func (m *MockClient) Login(ctx context.Context, opts gitlab.LoginOptions, ro ...gitlab.RequestOption) (*gitlab.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, opts, ro...)
	}
	return &gitlab.Session{}, nil
}

// SetSudo вызывает SetSudoFunc или запоминает пользователя для Sudo.
func (m *MockClient) SetSudo(user string) {
	m.sudo = user
	if m.SetSudoFunc != nil {
		m.SetSudoFunc(user)
	}
}

func (m *MockClient) Sudo() string {
	if m.SudoFunc != nil {
		return m.SudoFunc()
	}
	return m.sudo
}

// -------------------------------------------------------------------
// Transport
// -------------------------------------------------------------------

func (m *MockClient) Get(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, path, params, v, opts...)
	}
	return true, nil
}

func (m *MockClient) Post(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error) {
	if m.PostFunc != nil {
		return m.PostFunc(ctx, path, params, v, opts...)
	}
	return true, nil
}

func (m *MockClient) Put(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, path, params, v, opts...)
	}
	return true, nil
}

func (m *MockClient) Delete(ctx context.Context, path string, params, v any, opts ...gitlab.RequestOption) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path, params, v, opts...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// UserService
// -------------------------------------------------------------------

func (m *MockClient) GetUsers(ctx context.Context, opts *gitlab.ListUsersOptions, ro ...gitlab.RequestOption) ([]gitlab.User, error) {
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, opts, ro...)
	}
	return []gitlab.User{}, nil
}

func (m *MockClient) GetUser(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (*gitlab.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, uid, ro...)
	}
	return &gitlab.User{}, nil
}

func (m *MockClient) CurrentUser(ctx context.Context, ro ...gitlab.RequestOption) (*gitlab.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, ro...)
	}
	return &gitlab.User{}, nil
}

func (m *MockClient) CreateUser(ctx context.Context, opts *gitlab.CreateUserOptions, ro ...gitlab.RequestOption) (*gitlab.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, opts, ro...)
	}
	return &gitlab.User{}, nil
}

func (m *MockClient) EditUser(ctx context.Context, uid int64, opts *gitlab.EditUserOptions, ro ...gitlab.RequestOption) (*gitlab.User, error) {
	if m.EditUserFunc != nil {
		return m.EditUserFunc(ctx, uid, opts, ro...)
	}
	return &gitlab.User{}, nil
}

func (m *MockClient) DeleteUser(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, uid, ro...)
	}
	return true, nil
}

func (m *MockClient) BlockUser(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.BlockUserFunc != nil {
		return m.BlockUserFunc(ctx, uid, ro...)
	}
	return true, nil
}

func (m *MockClient) UnblockUser(ctx context.Context, uid int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.UnblockUserFunc != nil {
		return m.UnblockUserFunc(ctx, uid, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// KeyService
// -------------------------------------------------------------------

func (m *MockClient) GetSSHKeys(ctx context.Context, ro ...gitlab.RequestOption) ([]gitlab.SSHKey, error) {
	if m.GetSSHKeysFunc != nil {
		return m.GetSSHKeysFunc(ctx, ro...)
	}
	return []gitlab.SSHKey{}, nil
}

func (m *MockClient) GetUserSSHKeys(ctx context.Context, uid int64, ro ...gitlab.RequestOption) ([]gitlab.SSHKey, error) {
	if m.GetUserSSHKeysFunc != nil {
		return m.GetUserSSHKeysFunc(ctx, uid, ro...)
	}
	return []gitlab.SSHKey{}, nil
}

func (m *MockClient) Key(ctx context.Context, id int64, ro ...gitlab.RequestOption) (*gitlab.SSHKey, error) {
	if m.KeyFunc != nil {
		return m.KeyFunc(ctx, id, ro...)
	}
	return &gitlab.SSHKey{}, nil
}

func (m *MockClient) GetSSHKey(ctx context.Context, id int64, ro ...gitlab.RequestOption) (*gitlab.SSHKey, error) {
	if m.GetSSHKeyFunc != nil {
		return m.GetSSHKeyFunc(ctx, id, ro...)
	}
	return &gitlab.SSHKey{}, nil
}

func (m *MockClient) AddSSHKey(ctx context.Context, title, key string, ro ...gitlab.RequestOption) (bool, error) {
	if m.AddSSHKeyFunc != nil {
		return m.AddSSHKeyFunc(ctx, title, key, ro...)
	}
	return true, nil
}

func (m *MockClient) AddSSHKeyUser(ctx context.Context, uid int64, title, key string, ro ...gitlab.RequestOption) (bool, error) {
	if m.AddSSHKeyUserFunc != nil {
		return m.AddSSHKeyUserFunc(ctx, uid, title, key, ro...)
	}
	return true, nil
}

func (m *MockClient) DeleteSSHKey(ctx context.Context, id int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteSSHKeyFunc != nil {
		return m.DeleteSSHKeyFunc(ctx, id, ro...)
	}
	return true, nil
}

func (m *MockClient) DeleteSSHKeyUser(ctx context.Context, uid, keyID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteSSHKeyUserFunc != nil {
		return m.DeleteSSHKeyUserFunc(ctx, uid, keyID, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// DeployKeyService
// -------------------------------------------------------------------

func (m *MockClient) GetDeployKeys(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.DeployKey, error) {
	if m.GetDeployKeysFunc != nil {
		return m.GetDeployKeysFunc(ctx, pid, ro...)
	}
	return []gitlab.DeployKey{}, nil
}

func (m *MockClient) GetDeployKey(ctx context.Context, pid any, keyID int64, ro ...gitlab.RequestOption) (*gitlab.DeployKey, error) {
	if m.GetDeployKeyFunc != nil {
		return m.GetDeployKeyFunc(ctx, pid, keyID, ro...)
	}
	return &gitlab.DeployKey{}, nil
}

func (m *MockClient) AddDeployKey(ctx context.Context, pid any, title, key string, ro ...gitlab.RequestOption) (*gitlab.DeployKey, error) {
	if m.AddDeployKeyFunc != nil {
		return m.AddDeployKeyFunc(ctx, pid, title, key, ro...)
	}
	return &gitlab.DeployKey{}, nil
}

func (m *MockClient) DeleteDeployKey(ctx context.Context, pid any, keyID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteDeployKeyFunc != nil {
		return m.DeleteDeployKeyFunc(ctx, pid, keyID, ro...)
	}
	return true, nil
}

func (m *MockClient) GetAllDeployKeys(ctx context.Context, ro ...gitlab.RequestOption) ([]gitlab.DeployKey, error) {
	if m.GetAllDeployKeysFunc != nil {
		return m.GetAllDeployKeysFunc(ctx, ro...)
	}
	return []gitlab.DeployKey{}, nil
}

// -------------------------------------------------------------------
// ProjectService
// -------------------------------------------------------------------

func (m *MockClient) GetProjects(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error) {
	if m.GetProjectsFunc != nil {
		return m.GetProjectsFunc(ctx, opts, ro...)
	}
	return []gitlab.Project{}, nil
}

func (m *MockClient) GetProjectsAll(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error) {
	if m.GetProjectsAllFunc != nil {
		return m.GetProjectsAllFunc(ctx, opts, ro...)
	}
	return []gitlab.Project{}, nil
}

func (m *MockClient) GetProjectsOwned(ctx context.Context, opts *gitlab.ListProjectsOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error) {
	if m.GetProjectsOwnedFunc != nil {
		return m.GetProjectsOwnedFunc(ctx, opts, ro...)
	}
	return []gitlab.Project{}, nil
}

func (m *MockClient) GetProject(ctx context.Context, pid any, ro ...gitlab.RequestOption) (*gitlab.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, pid, ro...)
	}
	return &gitlab.Project{}, nil
}

func (m *MockClient) GetProjectEvents(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Event, error) {
	if m.GetProjectEventsFunc != nil {
		return m.GetProjectEventsFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Event{}, nil
}

func (m *MockClient) CreateProject(ctx context.Context, opts *gitlab.CreateProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, opts, ro...)
	}
	return &gitlab.Project{}, nil
}

func (m *MockClient) CreateProjectUser(ctx context.Context, uid int64, opts *gitlab.CreateProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error) {
	if m.CreateProjectUserFunc != nil {
		return m.CreateProjectUserFunc(ctx, uid, opts, ro...)
	}
	return &gitlab.Project{}, nil
}

func (m *MockClient) EditProject(ctx context.Context, pid any, opts *gitlab.EditProjectOptions, ro ...gitlab.RequestOption) (*gitlab.Project, error) {
	if m.EditProjectFunc != nil {
		return m.EditProjectFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Project{}, nil
}

func (m *MockClient) DeleteProject(ctx context.Context, pid any, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, pid, ro...)
	}
	return true, nil
}

func (m *MockClient) SearchProject(ctx context.Context, search string, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Project, error) {
	if m.SearchProjectFunc != nil {
		return m.SearchProjectFunc(ctx, search, opts, ro...)
	}
	return []gitlab.Project{}, nil
}

func (m *MockClient) CreateFork(ctx context.Context, pid any, ro ...gitlab.RequestOption) (*gitlab.Project, error) {
	if m.CreateForkFunc != nil {
		return m.CreateForkFunc(ctx, pid, ro...)
	}
	return &gitlab.Project{}, nil
}

func (m *MockClient) CreateForkRelation(ctx context.Context, pid any, forkedFromID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.CreateForkRelationFunc != nil {
		return m.CreateForkRelationFunc(ctx, pid, forkedFromID, ro...)
	}
	return true, nil
}

func (m *MockClient) RemoveForkRelation(ctx context.Context, pid any, ro ...gitlab.RequestOption) (bool, error) {
	if m.RemoveForkRelationFunc != nil {
		return m.RemoveForkRelationFunc(ctx, pid, ro...)
	}
	return true, nil
}

func (m *MockClient) ShareProject(ctx context.Context, pid any, groupID int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error) {
	if m.ShareProjectFunc != nil {
		return m.ShareProjectFunc(ctx, pid, groupID, access, ro...)
	}
	return true, nil
}

func (m *MockClient) GetProjectMembers(ctx context.Context, pid any, opts *gitlab.ListMembersOptions, ro ...gitlab.RequestOption) ([]gitlab.Member, error) {
	if m.GetProjectMembersFunc != nil {
		return m.GetProjectMembersFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Member{}, nil
}

func (m *MockClient) AddProjectMember(ctx context.Context, pid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error) {
	if m.AddProjectMemberFunc != nil {
		return m.AddProjectMemberFunc(ctx, pid, uid, access, ro...)
	}
	return true, nil
}

func (m *MockClient) EditProjectMember(ctx context.Context, pid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error) {
	if m.EditProjectMemberFunc != nil {
		return m.EditProjectMemberFunc(ctx, pid, uid, access, ro...)
	}
	return true, nil
}

func (m *MockClient) DeleteProjectMember(ctx context.Context, pid any, uid int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteProjectMemberFunc != nil {
		return m.DeleteProjectMemberFunc(ctx, pid, uid, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// HookService
// -------------------------------------------------------------------

func (m *MockClient) GetProjectHooks(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Hook, error) {
	if m.GetProjectHooksFunc != nil {
		return m.GetProjectHooksFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Hook{}, nil
}

func (m *MockClient) GetProjectHook(ctx context.Context, pid any, hookID int64, ro ...gitlab.RequestOption) (*gitlab.Hook, error) {
	if m.GetProjectHookFunc != nil {
		return m.GetProjectHookFunc(ctx, pid, hookID, ro...)
	}
	return &gitlab.Hook{}, nil
}

func (m *MockClient) AddProjectHook(ctx context.Context, pid any, opts *gitlab.HookOptions, ro ...gitlab.RequestOption) (*gitlab.Hook, error) {
	if m.AddProjectHookFunc != nil {
		return m.AddProjectHookFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Hook{}, nil
}

func (m *MockClient) EditProjectHook(ctx context.Context, pid any, hookID int64, opts *gitlab.HookOptions, ro ...gitlab.RequestOption) (*gitlab.Hook, error) {
	if m.EditProjectHookFunc != nil {
		return m.EditProjectHookFunc(ctx, pid, hookID, opts, ro...)
	}
	return &gitlab.Hook{}, nil
}

func (m *MockClient) DeleteProjectHook(ctx context.Context, pid any, hookID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteProjectHookFunc != nil {
		return m.DeleteProjectHookFunc(ctx, pid, hookID, ro...)
	}
	return true, nil
}

func (m *MockClient) GetSystemHooks(ctx context.Context, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.SystemHook, error) {
	if m.GetSystemHooksFunc != nil {
		return m.GetSystemHooksFunc(ctx, opts, ro...)
	}
	return []gitlab.SystemHook{}, nil
}

func (m *MockClient) AddSystemHook(ctx context.Context, hookURL string, ro ...gitlab.RequestOption) (*gitlab.SystemHook, error) {
	if m.AddSystemHookFunc != nil {
		return m.AddSystemHookFunc(ctx, hookURL, ro...)
	}
	return &gitlab.SystemHook{}, nil
}

func (m *MockClient) TestSystemHook(ctx context.Context, hookID int64, ro ...gitlab.RequestOption) (*gitlab.SystemHookEvent, error) {
	if m.TestSystemHookFunc != nil {
		return m.TestSystemHookFunc(ctx, hookID, ro...)
	}
	return &gitlab.SystemHookEvent{}, nil
}

func (m *MockClient) DeleteSystemHook(ctx context.Context, hookID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteSystemHookFunc != nil {
		return m.DeleteSystemHookFunc(ctx, hookID, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// BranchService
// -------------------------------------------------------------------

func (m *MockClient) GetBranches(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Branch, error) {
	if m.GetBranchesFunc != nil {
		return m.GetBranchesFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Branch{}, nil
}

func (m *MockClient) GetBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (*gitlab.Branch, error) {
	if m.GetBranchFunc != nil {
		return m.GetBranchFunc(ctx, pid, branch, ro...)
	}
	return &gitlab.Branch{}, nil
}

func (m *MockClient) CreateBranch(ctx context.Context, pid any, branch, ref string, ro ...gitlab.RequestOption) (*gitlab.Branch, error) {
	if m.CreateBranchFunc != nil {
		return m.CreateBranchFunc(ctx, pid, branch, ref, ro...)
	}
	return &gitlab.Branch{}, nil
}

func (m *MockClient) DeleteBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteBranchFunc != nil {
		return m.DeleteBranchFunc(ctx, pid, branch, ro...)
	}
	return true, nil
}

func (m *MockClient) ProtectBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error) {
	if m.ProtectBranchFunc != nil {
		return m.ProtectBranchFunc(ctx, pid, branch, ro...)
	}
	return true, nil
}

func (m *MockClient) UnprotectBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error) {
	if m.UnprotectBranchFunc != nil {
		return m.UnprotectBranchFunc(ctx, pid, branch, ro...)
	}
	return true, nil
}

func (m *MockClient) GetRepositoryBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (*gitlab.Branch, error) {
	if m.GetRepositoryBranchFunc != nil {
		return m.GetRepositoryBranchFunc(ctx, pid, branch, ro...)
	}
	return &gitlab.Branch{}, nil
}

func (m *MockClient) ProtectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error) {
	if m.ProtectRepositoryBranchFunc != nil {
		return m.ProtectRepositoryBranchFunc(ctx, pid, branch, ro...)
	}
	return true, nil
}

func (m *MockClient) UnprotectRepositoryBranch(ctx context.Context, pid any, branch string, ro ...gitlab.RequestOption) (bool, error) {
	if m.UnprotectRepositoryBranchFunc != nil {
		return m.UnprotectRepositoryBranchFunc(ctx, pid, branch, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// RepositoryReader
// -------------------------------------------------------------------

func (m *MockClient) GetRepositoryCommits(ctx context.Context, pid any, opts *gitlab.ListCommitsOptions, ro ...gitlab.RequestOption) ([]gitlab.Commit, error) {
	if m.GetRepositoryCommitsFunc != nil {
		return m.GetRepositoryCommitsFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Commit{}, nil
}

func (m *MockClient) GetRepositoryCommit(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) (*gitlab.Commit, error) {
	if m.GetRepositoryCommitFunc != nil {
		return m.GetRepositoryCommitFunc(ctx, pid, sha, ro...)
	}
	return &gitlab.Commit{}, nil
}

func (m *MockClient) GetRepositoryCommitDiff(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) (*gitlab.Diff, error) {
	if m.GetRepositoryCommitDiffFunc != nil {
		return m.GetRepositoryCommitDiffFunc(ctx, pid, sha, ro...)
	}
	return &gitlab.Diff{}, nil
}

func (m *MockClient) GetRepositoryTree(ctx context.Context, pid any, opts *gitlab.ListTreeOptions, ro ...gitlab.RequestOption) ([]gitlab.TreeNode, error) {
	if m.GetRepositoryTreeFunc != nil {
		return m.GetRepositoryTreeFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.TreeNode{}, nil
}

func (m *MockClient) GetRawFile(ctx context.Context, pid any, sha, filePath string, ro ...gitlab.RequestOption) ([]byte, error) {
	if m.GetRawFileFunc != nil {
		return m.GetRawFileFunc(ctx, pid, sha, filePath, ro...)
	}
	return []byte{}, nil
}

func (m *MockClient) GetRawBlob(ctx context.Context, pid any, sha string, ro ...gitlab.RequestOption) ([]byte, error) {
	if m.GetRawBlobFunc != nil {
		return m.GetRawBlobFunc(ctx, pid, sha, ro...)
	}
	return []byte{}, nil
}

func (m *MockClient) CompareBranchesTagsCommits(ctx context.Context, pid any, from, to string, ro ...gitlab.RequestOption) (*gitlab.Compare, error) {
	if m.CompareBranchesTagsCommitsFunc != nil {
		return m.CompareBranchesTagsCommitsFunc(ctx, pid, from, to, ro...)
	}
	return &gitlab.Compare{}, nil
}

func (m *MockClient) GetContributors(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.Contributor, error) {
	if m.GetContributorsFunc != nil {
		return m.GetContributorsFunc(ctx, pid, ro...)
	}
	return []gitlab.Contributor{}, nil
}

func (m *MockClient) GetFileArchive(ctx context.Context, pid any, sha, dest string, ro ...gitlab.RequestOption) (string, error) {
	if m.GetFileArchiveFunc != nil {
		return m.GetFileArchiveFunc(ctx, pid, sha, dest, ro...)
	}
	return "", nil
}

// -------------------------------------------------------------------
// TagService
// -------------------------------------------------------------------

func (m *MockClient) GetRepositoryTags(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Tag, error) {
	if m.GetRepositoryTagsFunc != nil {
		return m.GetRepositoryTagsFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Tag{}, nil
}

func (m *MockClient) CreateRepositoryTag(ctx context.Context, pid any, opts *gitlab.CreateTagOptions, ro ...gitlab.RequestOption) (*gitlab.Tag, error) {
	if m.CreateRepositoryTagFunc != nil {
		return m.CreateRepositoryTagFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Tag{}, nil
}

func (m *MockClient) DeleteRepositoryTag(ctx context.Context, pid any, tag string, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteRepositoryTagFunc != nil {
		return m.DeleteRepositoryTagFunc(ctx, pid, tag, ro...)
	}
	return true, nil
}

func (m *MockClient) SetTagRelease(ctx context.Context, pid any, tag, description string, ro ...gitlab.RequestOption) (*gitlab.TagRelease, error) {
	if m.SetTagReleaseFunc != nil {
		return m.SetTagReleaseFunc(ctx, pid, tag, description, ro...)
	}
	return &gitlab.TagRelease{}, nil
}

// -------------------------------------------------------------------
// FileService
// -------------------------------------------------------------------

func (m *MockClient) GetFile(ctx context.Context, pid any, filePath, ref string, ro ...gitlab.RequestOption) (*gitlab.File, error) {
	if m.GetFileFunc != nil {
		return m.GetFileFunc(ctx, pid, filePath, ref, ro...)
	}
	return &gitlab.File{}, nil
}

func (m *MockClient) CreateFile(ctx context.Context, pid any, opts *gitlab.FileOptions, ro ...gitlab.RequestOption) (*gitlab.FileInfo, error) {
	if m.CreateFileFunc != nil {
		return m.CreateFileFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.FileInfo{}, nil
}

func (m *MockClient) UpdateFile(ctx context.Context, pid any, opts *gitlab.FileOptions, ro ...gitlab.RequestOption) (*gitlab.FileInfo, error) {
	if m.UpdateFileFunc != nil {
		return m.UpdateFileFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.FileInfo{}, nil
}

func (m *MockClient) DeleteFile(ctx context.Context, pid any, opts *gitlab.DeleteFileOptions, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, pid, opts, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// IssueService
// -------------------------------------------------------------------

func (m *MockClient) GetIssues(ctx context.Context, opts *gitlab.ListIssuesOptions, ro ...gitlab.RequestOption) ([]gitlab.Issue, error) {
	if m.GetIssuesFunc != nil {
		return m.GetIssuesFunc(ctx, opts, ro...)
	}
	return []gitlab.Issue{}, nil
}

func (m *MockClient) GetProjectIssues(ctx context.Context, pid any, opts *gitlab.ListIssuesOptions, ro ...gitlab.RequestOption) ([]gitlab.Issue, error) {
	if m.GetProjectIssuesFunc != nil {
		return m.GetProjectIssuesFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Issue{}, nil
}

func (m *MockClient) GetProjectIssue(ctx context.Context, pid any, issueID int64, ro ...gitlab.RequestOption) (*gitlab.Issue, error) {
	if m.GetProjectIssueFunc != nil {
		return m.GetProjectIssueFunc(ctx, pid, issueID, ro...)
	}
	return &gitlab.Issue{}, nil
}

func (m *MockClient) CreateIssue(ctx context.Context, pid any, opts *gitlab.IssueOptions, ro ...gitlab.RequestOption) (*gitlab.Issue, error) {
	if m.CreateIssueFunc != nil {
		return m.CreateIssueFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Issue{}, nil
}

func (m *MockClient) EditIssue(ctx context.Context, pid any, issueID int64, opts *gitlab.IssueOptions, ro ...gitlab.RequestOption) (*gitlab.Issue, error) {
	if m.EditIssueFunc != nil {
		return m.EditIssueFunc(ctx, pid, issueID, opts, ro...)
	}
	return &gitlab.Issue{}, nil
}

// -------------------------------------------------------------------
// MilestoneService
// -------------------------------------------------------------------

func (m *MockClient) GetMilestones(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Milestone, error) {
	if m.GetMilestonesFunc != nil {
		return m.GetMilestonesFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Milestone{}, nil
}

func (m *MockClient) GetMilestone(ctx context.Context, pid any, milestoneID int64, ro ...gitlab.RequestOption) (*gitlab.Milestone, error) {
	if m.GetMilestoneFunc != nil {
		return m.GetMilestoneFunc(ctx, pid, milestoneID, ro...)
	}
	return &gitlab.Milestone{}, nil
}

func (m *MockClient) CreateMilestone(ctx context.Context, pid any, opts *gitlab.MilestoneOptions, ro ...gitlab.RequestOption) (*gitlab.Milestone, error) {
	if m.CreateMilestoneFunc != nil {
		return m.CreateMilestoneFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Milestone{}, nil
}

func (m *MockClient) EditMilestone(ctx context.Context, pid any, milestoneID int64, opts *gitlab.MilestoneOptions, ro ...gitlab.RequestOption) (*gitlab.Milestone, error) {
	if m.EditMilestoneFunc != nil {
		return m.EditMilestoneFunc(ctx, pid, milestoneID, opts, ro...)
	}
	return &gitlab.Milestone{}, nil
}

// -------------------------------------------------------------------
// MergeRequestService
// -------------------------------------------------------------------

func (m *MockClient) GetMergeRequests(ctx context.Context, pid any, opts *gitlab.ListMergeRequestsOptions, ro ...gitlab.RequestOption) ([]gitlab.MergeRequest, error) {
	if m.GetMergeRequestsFunc != nil {
		return m.GetMergeRequestsFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.MergeRequest{}, nil
}

func (m *MockClient) GetMergeRequest(ctx context.Context, pid any, mrID int64, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error) {
	if m.GetMergeRequestFunc != nil {
		return m.GetMergeRequestFunc(ctx, pid, mrID, ro...)
	}
	return &gitlab.MergeRequest{}, nil
}

func (m *MockClient) GetMergeRequestChanges(ctx context.Context, pid any, mrID int64, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error) {
	if m.GetMergeRequestChangesFunc != nil {
		return m.GetMergeRequestChangesFunc(ctx, pid, mrID, ro...)
	}
	return &gitlab.MergeRequest{}, nil
}

func (m *MockClient) CreateMergeRequest(ctx context.Context, pid any, opts *gitlab.CreateMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error) {
	if m.CreateMergeRequestFunc != nil {
		return m.CreateMergeRequestFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.MergeRequest{}, nil
}

func (m *MockClient) UpdateMergeRequest(ctx context.Context, pid any, mrID int64, opts *gitlab.UpdateMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error) {
	if m.UpdateMergeRequestFunc != nil {
		return m.UpdateMergeRequestFunc(ctx, pid, mrID, opts, ro...)
	}
	return &gitlab.MergeRequest{}, nil
}

func (m *MockClient) AcceptMergeRequest(ctx context.Context, pid any, mrID int64, opts *gitlab.AcceptMergeRequestOptions, ro ...gitlab.RequestOption) (*gitlab.MergeRequest, error) {
	if m.AcceptMergeRequestFunc != nil {
		return m.AcceptMergeRequestFunc(ctx, pid, mrID, opts, ro...)
	}
	return &gitlab.MergeRequest{}, nil
}

func (m *MockClient) GetMergeRequestComments(ctx context.Context, pid any, mrID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.MergeRequestComment, error) {
	if m.GetMergeRequestCommentsFunc != nil {
		return m.GetMergeRequestCommentsFunc(ctx, pid, mrID, opts, ro...)
	}
	return []gitlab.MergeRequestComment{}, nil
}

func (m *MockClient) AddCommentToMergeRequest(ctx context.Context, pid any, mrID int64, note string, ro ...gitlab.RequestOption) (*gitlab.MergeRequestComment, error) {
	if m.AddCommentToMergeRequestFunc != nil {
		return m.AddCommentToMergeRequestFunc(ctx, pid, mrID, note, ro...)
	}
	return &gitlab.MergeRequestComment{}, nil
}

// -------------------------------------------------------------------
// SnippetService
// -------------------------------------------------------------------

func (m *MockClient) GetSnippets(ctx context.Context, pid any, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Snippet, error) {
	if m.GetSnippetsFunc != nil {
		return m.GetSnippetsFunc(ctx, pid, opts, ro...)
	}
	return []gitlab.Snippet{}, nil
}

func (m *MockClient) GetSnippet(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) (*gitlab.Snippet, error) {
	if m.GetSnippetFunc != nil {
		return m.GetSnippetFunc(ctx, pid, snippetID, ro...)
	}
	return &gitlab.Snippet{}, nil
}

func (m *MockClient) GetSnippetContent(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) ([]byte, error) {
	if m.GetSnippetContentFunc != nil {
		return m.GetSnippetContentFunc(ctx, pid, snippetID, ro...)
	}
	return []byte{}, nil
}

func (m *MockClient) CreateSnippet(ctx context.Context, pid any, opts *gitlab.SnippetOptions, ro ...gitlab.RequestOption) (*gitlab.Snippet, error) {
	if m.CreateSnippetFunc != nil {
		return m.CreateSnippetFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Snippet{}, nil
}

func (m *MockClient) DeleteSnippet(ctx context.Context, pid any, snippetID int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteSnippetFunc != nil {
		return m.DeleteSnippetFunc(ctx, pid, snippetID, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// NoteService
// -------------------------------------------------------------------

func (m *MockClient) GetIssueNotes(ctx context.Context, pid any, issueID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error) {
	if m.GetIssueNotesFunc != nil {
		return m.GetIssueNotesFunc(ctx, pid, issueID, opts, ro...)
	}
	return []gitlab.Note{}, nil
}

func (m *MockClient) GetIssueNote(ctx context.Context, pid any, issueID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.GetIssueNoteFunc != nil {
		return m.GetIssueNoteFunc(ctx, pid, issueID, noteID, ro...)
	}
	return &gitlab.Note{}, nil
}

func (m *MockClient) CreateIssueNote(ctx context.Context, pid any, issueID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.CreateIssueNoteFunc != nil {
		return m.CreateIssueNoteFunc(ctx, pid, issueID, body, ro...)
	}
	return &gitlab.Note{}, nil
}

func (m *MockClient) GetSnippetNotes(ctx context.Context, pid any, snippetID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error) {
	if m.GetSnippetNotesFunc != nil {
		return m.GetSnippetNotesFunc(ctx, pid, snippetID, opts, ro...)
	}
	return []gitlab.Note{}, nil
}

func (m *MockClient) GetSnippetNote(ctx context.Context, pid any, snippetID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.GetSnippetNoteFunc != nil {
		return m.GetSnippetNoteFunc(ctx, pid, snippetID, noteID, ro...)
	}
	return &gitlab.Note{}, nil
}

func (m *MockClient) CreateSnippetNote(ctx context.Context, pid any, snippetID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.CreateSnippetNoteFunc != nil {
		return m.CreateSnippetNoteFunc(ctx, pid, snippetID, body, ro...)
	}
	return &gitlab.Note{}, nil
}

func (m *MockClient) GetMergeRequestNotes(ctx context.Context, pid any, mrID int64, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Note, error) {
	if m.GetMergeRequestNotesFunc != nil {
		return m.GetMergeRequestNotesFunc(ctx, pid, mrID, opts, ro...)
	}
	return []gitlab.Note{}, nil
}

func (m *MockClient) GetMergeRequestNote(ctx context.Context, pid any, mrID, noteID int64, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.GetMergeRequestNoteFunc != nil {
		return m.GetMergeRequestNoteFunc(ctx, pid, mrID, noteID, ro...)
	}
	return &gitlab.Note{}, nil
}

func (m *MockClient) CreateMergeRequestNote(ctx context.Context, pid any, mrID int64, body string, ro ...gitlab.RequestOption) (*gitlab.Note, error) {
	if m.CreateMergeRequestNoteFunc != nil {
		return m.CreateMergeRequestNoteFunc(ctx, pid, mrID, body, ro...)
	}
	return &gitlab.Note{}, nil
}

// -------------------------------------------------------------------
// GroupService
// -------------------------------------------------------------------

func (m *MockClient) GetGroups(ctx context.Context, opts *gitlab.ListGroupsOptions, ro ...gitlab.RequestOption) ([]gitlab.Group, error) {
	if m.GetGroupsFunc != nil {
		return m.GetGroupsFunc(ctx, opts, ro...)
	}
	return []gitlab.Group{}, nil
}

func (m *MockClient) GetGroup(ctx context.Context, gid any, ro ...gitlab.RequestOption) (*gitlab.Group, error) {
	if m.GetGroupFunc != nil {
		return m.GetGroupFunc(ctx, gid, ro...)
	}
	return &gitlab.Group{}, nil
}

func (m *MockClient) SearchGroups(ctx context.Context, search string, opts *gitlab.ListOptions, ro ...gitlab.RequestOption) ([]gitlab.Group, error) {
	if m.SearchGroupsFunc != nil {
		return m.SearchGroupsFunc(ctx, search, opts, ro...)
	}
	return []gitlab.Group{}, nil
}

func (m *MockClient) CreateGroup(ctx context.Context, opts *gitlab.CreateGroupOptions, ro ...gitlab.RequestOption) (*gitlab.Group, error) {
	if m.CreateGroupFunc != nil {
		return m.CreateGroupFunc(ctx, opts, ro...)
	}
	return &gitlab.Group{}, nil
}

func (m *MockClient) DeleteGroup(ctx context.Context, gid any, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteGroupFunc != nil {
		return m.DeleteGroupFunc(ctx, gid, ro...)
	}
	return true, nil
}

func (m *MockClient) MoveProject(ctx context.Context, gid any, pid any, ro ...gitlab.RequestOption) (bool, error) {
	if m.MoveProjectFunc != nil {
		return m.MoveProjectFunc(ctx, gid, pid, ro...)
	}
	return true, nil
}

func (m *MockClient) GetGroupMembers(ctx context.Context, gid any, opts *gitlab.ListMembersOptions, ro ...gitlab.RequestOption) ([]gitlab.Member, error) {
	if m.GetGroupMembersFunc != nil {
		return m.GetGroupMembersFunc(ctx, gid, opts, ro...)
	}
	return []gitlab.Member{}, nil
}

func (m *MockClient) AddGroupMember(ctx context.Context, gid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error) {
	if m.AddGroupMemberFunc != nil {
		return m.AddGroupMemberFunc(ctx, gid, uid, access, ro...)
	}
	return true, nil
}

func (m *MockClient) EditGroupMember(ctx context.Context, gid any, uid int64, access gitlab.AccessLevel, ro ...gitlab.RequestOption) (bool, error) {
	if m.EditGroupMemberFunc != nil {
		return m.EditGroupMemberFunc(ctx, gid, uid, access, ro...)
	}
	return true, nil
}

func (m *MockClient) DeleteGroupMember(ctx context.Context, gid any, uid int64, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteGroupMemberFunc != nil {
		return m.DeleteGroupMemberFunc(ctx, gid, uid, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// LabelService
// -------------------------------------------------------------------

func (m *MockClient) GetLabels(ctx context.Context, pid any, ro ...gitlab.RequestOption) ([]gitlab.Label, error) {
	if m.GetLabelsFunc != nil {
		return m.GetLabelsFunc(ctx, pid, ro...)
	}
	return []gitlab.Label{}, nil
}

func (m *MockClient) CreateLabel(ctx context.Context, pid any, name, color string, ro ...gitlab.RequestOption) (*gitlab.Label, error) {
	if m.CreateLabelFunc != nil {
		return m.CreateLabelFunc(ctx, pid, name, color, ro...)
	}
	return &gitlab.Label{}, nil
}

func (m *MockClient) EditLabel(ctx context.Context, pid any, opts *gitlab.EditLabelOptions, ro ...gitlab.RequestOption) (*gitlab.Label, error) {
	if m.EditLabelFunc != nil {
		return m.EditLabelFunc(ctx, pid, opts, ro...)
	}
	return &gitlab.Label{}, nil
}

func (m *MockClient) DeleteLabel(ctx context.Context, pid any, name string, ro ...gitlab.RequestOption) (bool, error) {
	if m.DeleteLabelFunc != nil {
		return m.DeleteLabelFunc(ctx, pid, name, ro...)
	}
	return true, nil
}

// -------------------------------------------------------------------
// NamespaceService
// -------------------------------------------------------------------

func (m *MockClient) GetNamespaces(ctx context.Context, opts *gitlab.ListNamespacesOptions, ro ...gitlab.RequestOption) ([]gitlab.Namespace, error) {
	if m.GetNamespacesFunc != nil {
		return m.GetNamespacesFunc(ctx, opts, ro...)
	}
	return []gitlab.Namespace{}, nil
}
