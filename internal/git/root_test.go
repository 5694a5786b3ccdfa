package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
)

func TestFindRoot_FromSubdirectory(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "remoteswinglibrary")
	_, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	sub := filepath.Join(repoPath, "src", "test", "robotframework")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	root, err := FindRoot(sub)
	require.NoError(t, err)
	require.Equal(t, repoPath, root.Dir)
	require.Empty(t, root.Head)
}

func TestFindRoot_ReportsHead(t *testing.T) {
	repoPath := t.TempDir()
	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "pom.xml"), []byte("<project/>"), 0o600))
	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add("pom.xml")
	require.NoError(t, err)
	commit, err := w.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	root, err := FindRoot(repoPath)
	require.NoError(t, err)
	require.Equal(t, repoPath, root.Dir)
	require.Equal(t, commit.String()[:7], root.Head)
}

func TestFindRoot_NotARepository(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	require.Error(t, err)
	require.ErrorIs(t, err, git.ErrRepositoryNotExists)
	require.True(t, derrors.IsCategory(err, derrors.CategoryGit))
}
