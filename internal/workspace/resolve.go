// Package workspace maps remote repositories onto a GOPATH-style directory tree.
//
// A remote is placed at <root>/<host>/<path>, with the trailing extension of
// the last path component removed:
//
//	https://github.com/owner/repo.git -> <root>/github.com/owner/repo
//	git@github.com:owner/repo.git     -> <root>/github.com/owner/repo
package workspace

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/NicabarNimble/jago/internal/errors"
	"github.com/NicabarNimble/jago/internal/urlutils"
)

// ErrInvalidRemote indicates the remote parsed but has no host or no repository path
var ErrInvalidRemote = errors.Newf("resolve", errors.KindInvalidRemote, fmt.Errorf("invalid remote repository url"))

// DestinationDir derives the local directory for remote under root.
// It is a pure function of its inputs and never touches the filesystem.
func DestinationDir(root, remote string) (string, error) {
	u, err := urlutils.ParseRemote(remote)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", ErrInvalidRemote
	}

	// Dot segments are removed against the URL root so the result stays under <root>/<host>.
	repoPath := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if repoPath == "" {
		return "", ErrInvalidRemote
	}

	return stripExtension(filepath.Join(root, host, filepath.FromSlash(repoPath))), nil
}

// stripExtension removes the extension of the last path element.
// A name made of a single leading dot and a word has no extension.
func stripExtension(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return p
	}
	return strings.TrimSuffix(p, ext)
}
