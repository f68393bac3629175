// Package git provides the version-control client used to materialize
// repositories on disk.
//
// The package exposes a single operation through the Cloner interface:
// clone a remote into a destination directory. GoGitCloner implements it
// with go-git, so no git binary is required.
//
// Example Usage:
//
//	cloner := git.NewGoGitCloner()
//	err := cloner.Clone(ctx, "git@github.com:org/repo.git", "/home/me/src/github.com/org/repo", os.Stdout)
//	if err != nil {
//	    log.Fatalf("Failed to clone repository: %v", err)
//	}
//
// Error Handling:
//
// Errors from go-git are wrapped with %w and otherwise passed through
// untouched. A destination that already contains files is rejected with
// ErrDestinationNotEmpty before any network traffic. Nothing is retried.
// Cleanup after a failed clone is left to go-git, which removes the
// destination it created, or empties one that already existed.
package git
