package gitlabtest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitlab-client/pkg/gitlab"
	"github.com/Kargones/gitlab-client/pkg/gitlab/gitlabtest"
)

// branchProtector — пример потребителя, зависящего от узкого интерфейса.
type branchProtector struct {
	branches gitlab.BranchService
}

func (p *branchProtector) protectAll(ctx context.Context, pid any, names ...string) (int, error) {
	n := 0
	for _, name := range names {
		ok, err := p.branches.ProtectBranch(ctx, pid, name)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func TestNewMockClient_Defaults(t *testing.T) {
	t.Parallel()

	mock := gitlabtest.NewMockClient()
	ctx := context.Background()

	users, err := mock.GetUsers(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	project, err := mock.GetProject(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, project)

	ok, err := mock.DeleteUser(ctx, 14)
	require.NoError(t, err)
	assert.True(t, ok)

	raw, err := mock.GetRawBlob(ctx, 1, "abc")
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestNewMockClientWithUsers(t *testing.T) {
	t.Parallel()

	users := []gitlab.User{{ID: 1, Username: "root"}, {ID: 2, Username: "dev"}}
	mock := gitlabtest.NewMockClientWithUsers(users)
	ctx := context.Background()

	got, err := mock.GetUsers(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, users, got)

	user, err := mock.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "dev", user.Username)

	_, err = mock.GetUser(ctx, 99)
	require.Error(t, err)
	assert.True(t, gitlab.IsNotFoundError(err))
	assert.Equal(t, 404, gitlab.StatusCode(err))
}

func TestNewMockClientWithProject(t *testing.T) {
	t.Parallel()

	project := &gitlab.Project{ID: 7, PathWithNamespace: "group/app"}
	mock := gitlabtest.NewMockClientWithProject(project)

	got, err := mock.GetProject(context.Background(), "group/app")
	require.NoError(t, err)
	assert.Same(t, project, got)
}

func TestMockClient_SudoRoundTrip(t *testing.T) {
	t.Parallel()

	mock := gitlabtest.NewMockClient()
	var seen []string
	mock.SetSudoFunc = func(user string) { seen = append(seen, user) }

	mock.SetSudo("alice")
	assert.Equal(t, "alice", mock.Sudo())
	mock.SetSudo("")
	assert.Empty(t, mock.Sudo())
	assert.Equal(t, []string{"alice", ""}, seen)
}

func TestMockClient_AsBranchService(t *testing.T) {
	t.Parallel()

	mock := gitlabtest.NewMockClient()
	var calls []string
	mock.ProtectBranchFunc = func(_ context.Context, pid any, branch string, _ ...gitlab.RequestOption) (bool, error) {
		calls = append(calls, branch)
		return branch == "develop", nil
	}

	p := &branchProtector{branches: mock}
	n, err := p.protectAll(context.Background(), 1, "develop", "feature")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"develop", "feature"}, calls)
}

func TestMockClient_ErrorPropagation(t *testing.T) {
	t.Parallel()

	mock := gitlabtest.NewMockClient()
	mock.ProtectBranchFunc = func(context.Context, any, string, ...gitlab.RequestOption) (bool, error) {
		return false, gitlabtest.NotFound("/projects/1/repository/branches/x/protect")
	}

	p := &branchProtector{branches: mock}
	_, err := p.protectAll(context.Background(), 1, "x")
	require.Error(t, err)
	assert.True(t, gitlab.IsNotFoundError(err))
}
