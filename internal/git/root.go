package git

import (
	stdErrors "errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
)

// Root describes the worktree enclosing a path.
type Root struct {
	Dir  string
	Head string // abbreviated HEAD commit, empty for an unborn branch
}

// FindRoot walks up from path to the nearest git worktree and returns its
// top-level directory.
func FindRoot(path string) (*Root, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, derrors.RepoRootNotFound(path, fmt.Errorf("get absolute path: %w", err))
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, derrors.RepoRootNotFound(abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, derrors.RepoRootNotFound(abs, fmt.Errorf("failed to get worktree: %w", err))
	}

	root := &Root{Dir: wt.Filesystem.Root()}

	head, err := repo.Head()
	switch {
	case err == nil:
		root.Head = shortHash(head.Hash())
	case stdErrors.Is(err, plumbing.ErrReferenceNotFound):
		// Fresh repository without commits.
	default:
		return nil, derrors.RepoRootNotFound(abs, fmt.Errorf("failed to resolve HEAD: %w", err))
	}

	return root, nil
}

func shortHash(h plumbing.Hash) string {
	s := h.String()
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
