package gitlab

// Даты во всех структурах — строки в формате сервера (RFC 3339 / ISO 8601),
// как их отдаёт API; разбор оставлен вызывающему.

// User — пользователь GitLab.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	State            string `json:"state"`
	CreatedAt        string `json:"created_at"`
	Bio              string `json:"bio"`
	Skype            string `json:"skype"`
	Linkedin         string `json:"linkedin"`
	Twitter          string `json:"twitter"`
	WebsiteURL       string `json:"website_url"`
	ExternUID        string `json:"extern_uid"`
	Provider         string `json:"provider"`
	ThemeID          int    `json:"theme_id"`
	ColorSchemeID    int    `json:"color_scheme_id"`
	IsAdmin          bool   `json:"is_admin"`
	CanCreateGroup   bool   `json:"can_create_group"`
	CanCreateProject bool   `json:"can_create_project"`
	ProjectsLimit    int    `json:"projects_limit"`
	AvatarURL        string `json:"avatar_url"`
	WebURL           string `json:"web_url"`
}

// BasicUser — краткое описание пользователя во вложенных объектах.
type BasicUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	State     string `json:"state"`
	AvatarURL string `json:"avatar_url"`
	WebURL    string `json:"web_url"`
}

// Session — ответ POST /session: пользователь и его private token.
type Session struct {
	User
	PrivateToken string `json:"private_token"`
	Blocked      bool   `json:"blocked"`
}

// SSHKey — SSH ключ пользователя.
type SSHKey struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Key       string `json:"key"`
	CreatedAt string `json:"created_at"`
	User      *User  `json:"user,omitempty"`
}

// DeployKey — deploy ключ проекта.
type DeployKey struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Key       string `json:"key"`
	CanPush   bool   `json:"can_push"`
	CreatedAt string `json:"created_at"`
}

// Namespace — пространство имён (пользователь или группа).
type Namespace struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Kind        string `json:"kind"`
	OwnerID     int64  `json:"owner_id"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Project — проект GitLab.
type Project struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	NameWithNamespace    string     `json:"name_with_namespace"`
	Path                 string     `json:"path"`
	PathWithNamespace    string     `json:"path_with_namespace"`
	Description          string     `json:"description"`
	DefaultBranch        string     `json:"default_branch"`
	Public               bool       `json:"public"`
	VisibilityLevel      int        `json:"visibility_level"`
	Archived             bool       `json:"archived"`
	SSHURLToRepo         string     `json:"ssh_url_to_repo"`
	HTTPURLToRepo        string     `json:"http_url_to_repo"`
	WebURL               string     `json:"web_url"`
	TagList              []string   `json:"tag_list"`
	Owner                *BasicUser `json:"owner"`
	Namespace            *Namespace `json:"namespace"`
	IssuesEnabled        bool       `json:"issues_enabled"`
	MergeRequestsEnabled bool       `json:"merge_requests_enabled"`
	WikiEnabled          bool       `json:"wiki_enabled"`
	SnippetsEnabled      bool       `json:"snippets_enabled"`
	BuildsEnabled        bool       `json:"builds_enabled"`
	CreatorID            int64      `json:"creator_id"`
	ForkedFromProject    *Project   `json:"forked_from_project,omitempty"`
	StarCount            int        `json:"star_count"`
	ForksCount           int        `json:"forks_count"`
	OpenIssuesCount      int        `json:"open_issues_count"`
	CreatedAt            string     `json:"created_at"`
	LastActivityAt       string     `json:"last_activity_at"`
}

// Event — событие в ленте проекта.
type Event struct {
	Title       string         `json:"title"`
	ProjectID   int64          `json:"project_id"`
	ActionName  string         `json:"action_name"`
	TargetID    int64          `json:"target_id"`
	TargetType  string         `json:"target_type"`
	TargetTitle string         `json:"target_title"`
	AuthorID    int64          `json:"author_id"`
	Author      *BasicUser     `json:"author"`
	Username    string         `json:"author_username"`
	Data        map[string]any `json:"data"`
	CreatedAt   string         `json:"created_at"`
}

// Member — участник проекта или группы.
type Member struct {
	BasicUser
	AccessLevel AccessLevel `json:"access_level"`
	ExpiresAt   string      `json:"expires_at"`
}

// Hook — webhook проекта.
type Hook struct {
	ID                    int64  `json:"id"`
	URL                   string `json:"url"`
	ProjectID             int64  `json:"project_id"`
	PushEvents            bool   `json:"push_events"`
	IssuesEvents          bool   `json:"issues_events"`
	MergeRequestsEvents   bool   `json:"merge_requests_events"`
	TagPushEvents         bool   `json:"tag_push_events"`
	NoteEvents            bool   `json:"note_events"`
	EnableSSLVerification bool   `json:"enable_ssl_verification"`
	CreatedAt             string `json:"created_at"`
}

// SystemHook — системный webhook.
type SystemHook struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

// SystemHookEvent — тестовое событие, которое возвращает GET /hooks/:id.
type SystemHookEvent struct {
	EventName  string `json:"event_name"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	ProjectID  int64  `json:"project_id"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

// Branch — ветка репозитория.
type Branch struct {
	Name      string  `json:"name"`
	Protected bool    `json:"protected"`
	Commit    *Commit `json:"commit"`
}

// Commit — коммит репозитория.
type Commit struct {
	ID             string   `json:"id"`
	ShortID        string   `json:"short_id"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	AuthorName     string   `json:"author_name"`
	AuthorEmail    string   `json:"author_email"`
	AuthoredDate   string   `json:"authored_date"`
	CommitterName  string   `json:"committer_name"`
	CommitterEmail string   `json:"committer_email"`
	CommittedDate  string   `json:"committed_date"`
	CreatedAt      string   `json:"created_at"`
	ParentIDs      []string `json:"parent_ids"`
}

// Diff — изменения одного файла.
type Diff struct {
	Diff        string `json:"diff"`
	NewPath     string `json:"new_path"`
	OldPath     string `json:"old_path"`
	AMode       string `json:"a_mode"`
	BMode       string `json:"b_mode"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
}

// Compare — результат сравнения двух ref.
type Compare struct {
	Commit         *Commit  `json:"commit"`
	Commits        []Commit `json:"commits"`
	Diffs          []Diff   `json:"diffs"`
	CompareTimeout bool     `json:"compare_timeout"`
	CompareSameRef bool     `json:"compare_same_ref"`
}

// Contributor — статистика автора коммитов.
type Contributor struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// TreeNode — элемент дерева репозитория.
type TreeNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
	Mode string `json:"mode"`
}

// Tag — тег репозитория.
type Tag struct {
	Name      string      `json:"name"`
	Message   string      `json:"message"`
	Protected bool        `json:"protected"`
	Commit    *Commit     `json:"commit"`
	Release   *TagRelease `json:"release"`
}

// TagRelease — release notes тега.
type TagRelease struct {
	TagName     string `json:"tag_name"`
	Description string `json:"description"`
}

// File — файл репозитория. Content закодирован согласно Encoding (обычно base64).
type File struct {
	FileName     string `json:"file_name"`
	FilePath     string `json:"file_path"`
	Size         int64  `json:"size"`
	Encoding     string `json:"encoding"`
	Content      string `json:"content"`
	Ref          string `json:"ref"`
	BlobID       string `json:"blob_id"`
	CommitID     string `json:"commit_id"`
	LastCommitID string `json:"last_commit_id"`
}

// FileInfo — ответ на создание, изменение и удаление файла.
type FileInfo struct {
	FilePath   string `json:"file_path"`
	BranchName string `json:"branch_name"`
}

// Milestone — этап проекта.
type Milestone struct {
	ID          int64  `json:"id"`
	IID         int64  `json:"iid"`
	ProjectID   int64  `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	DueDate     string `json:"due_date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Issue — задача проекта.
type Issue struct {
	ID           int64      `json:"id"`
	IID          int64      `json:"iid"`
	ProjectID    int64      `json:"project_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	State        string     `json:"state"`
	Labels       []string   `json:"labels"`
	Milestone    *Milestone `json:"milestone"`
	Assignee     *BasicUser `json:"assignee"`
	Author       *BasicUser `json:"author"`
	Confidential bool       `json:"confidential"`
	DueDate      string     `json:"due_date"`
	WebURL       string     `json:"web_url"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// MergeRequest — merge request.
type MergeRequest struct {
	ID              int64      `json:"id"`
	IID             int64      `json:"iid"`
	ProjectID       int64      `json:"project_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	State           string     `json:"state"`
	SourceBranch    string     `json:"source_branch"`
	TargetBranch    string     `json:"target_branch"`
	SourceProjectID int64      `json:"source_project_id"`
	TargetProjectID int64      `json:"target_project_id"`
	Upvotes         int        `json:"upvotes"`
	Downvotes       int        `json:"downvotes"`
	Labels          []string   `json:"labels"`
	Author          *BasicUser `json:"author"`
	Assignee        *BasicUser `json:"assignee"`
	Milestone       *Milestone `json:"milestone"`
	WorkInProgress  bool       `json:"work_in_progress"`
	MergeStatus     string     `json:"merge_status"`
	SHA             string     `json:"sha"`
	MergeCommitSHA  string     `json:"merge_commit_sha"`
	Changes         []Diff     `json:"changes,omitempty"`
	WebURL          string     `json:"web_url"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// MergeRequestComment — комментарий к merge request.
type MergeRequestComment struct {
	Note   string     `json:"note"`
	Author *BasicUser `json:"author"`
}

// Note — заметка (комментарий) к issue, snippet или merge request.
type Note struct {
	ID           int64      `json:"id"`
	Body         string     `json:"body"`
	Attachment   string     `json:"attachment"`
	Author       *BasicUser `json:"author"`
	System       bool       `json:"system"`
	NoteableID   int64      `json:"noteable_id"`
	NoteableType string     `json:"noteable_type"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// Snippet — сниппет проекта.
type Snippet struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	FileName  string     `json:"file_name"`
	Author    *BasicUser `json:"author"`
	ExpiresAt string     `json:"expires_at"`
	WebURL    string     `json:"web_url"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// Group — группа.
type Group struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Path            string    `json:"path"`
	Description     string    `json:"description"`
	VisibilityLevel int       `json:"visibility_level"`
	AvatarURL       string    `json:"avatar_url"`
	WebURL          string    `json:"web_url"`
	Projects        []Project `json:"projects,omitempty"`
}

// Label — метка проекта.
type Label struct {
	Name                   string `json:"name"`
	Color                  string `json:"color"`
	Description            string `json:"description"`
	OpenIssuesCount        int    `json:"open_issues_count"`
	ClosedIssuesCount      int    `json:"closed_issues_count"`
	OpenMergeRequestsCount int    `json:"open_merge_requests_count"`
}
