package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSourceRepo creates a local repository with a single committed file
func newSourceRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	workTree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# source\n"), 0600))
	_, err = workTree.Add("README.md")
	require.NoError(t, err)
	_, err = workTree.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
		},
	})
	require.NoError(t, err)

	return dir
}

func TestGoGitCloner_Clone(t *testing.T) {
	source := newSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "github.com", "owner", "repo")

	var progress bytes.Buffer
	err := NewGoGitCloner().Clone(context.Background(), source, dest, &progress)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# source\n", string(content))

	cloned, err := gogit.PlainOpen(dest)
	require.NoError(t, err)
	remote, err := cloned.Remote("origin")
	require.NoError(t, err)
	assert.Equal(t, []string{source}, remote.Config().URLs)
}

func TestGoGitCloner_CloneIntoEmptyExistingDir(t *testing.T) {
	source := newSourceRepo(t)
	dest := t.TempDir()

	err := NewGoGitCloner().Clone(context.Background(), source, dest, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "README.md"))
}

func TestGoGitCloner_CloneIntoNonEmptyDir(t *testing.T) {
	source := newSourceRepo(t)
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "keep.txt"), []byte("mine"), 0600))

	err := NewGoGitCloner().Clone(context.Background(), source, dest, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestinationNotEmpty)

	content, readErr := os.ReadFile(filepath.Join(dest, "keep.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "mine", string(content))
}

func TestGoGitCloner_CloneMissingRemote(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-repo")
	dest := filepath.Join(t.TempDir(), "dest")

	err := NewGoGitCloner().Clone(context.Background(), missing, dest, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clone repository")
	assert.NoDirExists(t, dest)
}

func TestGoGitCloner_FailedCloneEmptiesExistingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-repo")
	dest := t.TempDir()

	err := NewGoGitCloner().Clone(context.Background(), missing, dest, nil)
	require.Error(t, err)

	assert.DirExists(t, dest)
	entries, readErr := os.ReadDir(dest)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGoGitCloner_ClientErrorIsWrapped(t *testing.T) {
	original := plainClone
	defer func() { plainClone = original }()

	clientErr := errors.New("authentication required")
	var gotURL, gotPath string
	plainClone = func(ctx context.Context, path string, isBare bool, o *gogit.CloneOptions) (*gogit.Repository, error) {
		gotURL = o.URL
		gotPath = path
		assert.False(t, isBare)
		return nil, clientErr
	}

	dest := filepath.Join(t.TempDir(), "dest")
	err := NewGoGitCloner().Clone(context.Background(), "git@github.com:owner/repo.git", dest, nil)

	assert.ErrorIs(t, err, clientErr)
	assert.Equal(t, "git@github.com:owner/repo.git", gotURL)
	assert.Equal(t, dest, gotPath)
}

func TestCheckDestination(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		assert.NoError(t, checkDestination(osfs.New(filepath.Join(t.TempDir(), "missing"))))
	})

	t.Run("empty directory", func(t *testing.T) {
		assert.NoError(t, checkDestination(osfs.New(t.TempDir())))
	})

	t.Run("non-empty directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0700))
		assert.ErrorIs(t, checkDestination(osfs.New(dir)), ErrDestinationNotEmpty)
	})
}
