package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"

	"github.com/NicabarNimble/jago/internal/log"
)

// ErrDestinationNotEmpty indicates the clone destination already holds files
var ErrDestinationNotEmpty = errors.New("destination path already exists and is not an empty directory")

// Cloner materializes a remote repository at a local path
type Cloner interface {
	// Clone clones remote into dest, writing transfer progress to progress
	Clone(ctx context.Context, remote, dest string, progress io.Writer) error
}

// GoGitCloner implements Cloner using go-git
type GoGitCloner struct{}

// NewGoGitCloner creates a new GoGitCloner
func NewGoGitCloner() *GoGitCloner {
	return &GoGitCloner{}
}

// Clone clones remote into dest.
// Authentication is whatever go-git selects by default for the remote's
// transport. On failure go-git removes what it wrote to dest.
func (*GoGitCloner) Clone(ctx context.Context, remote, dest string, progress io.Writer) error {
	if err := checkDestination(osfs.New(dest)); err != nil {
		return err
	}

	log.Log.Debugf("go-git clone %s into %s", remote, dest)
	_, err := plainClone(ctx, dest, false, &gogit.CloneOptions{
		URL:      remote,
		Progress: progress,
	})
	if err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}
	return nil
}

// plainClone is a variable so it can be mocked in tests
var plainClone = gogit.PlainCloneContext

// checkDestination refuses a destination that exists and has entries
func checkDestination(fs billy.Filesystem) error {
	entries, err := fs.ReadDir("/")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to inspect destination %s: %w", fs.Root(), err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrDestinationNotEmpty, fs.Root())
	}
	return nil
}
