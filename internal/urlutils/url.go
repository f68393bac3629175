// Package urlutils parses remote repository references.
// It accepts the two dialects git itself understands:
//   - standard URLs: https://github.com/owner/repo.git, ssh://git@host:22/owner/repo
//   - SCP shorthand: git@github.com:owner/repo.git
//
// SCP shorthand is not a valid URL, so it is first rewritten to an ssh://
// pseudo-URL and then handed to the same parser as the standard form.
package urlutils

import (
	"net/url"
	"strings"

	"github.com/NicabarNimble/jago/internal/errors"
)

const (
	schemeSeparator = "://"
	scpScheme       = "ssh"
)

// IsSCPShorthand reports whether remote uses the user@host:path form.
// The input must contain no scheme separator, an '@', and a ':' somewhere
// after the '@'.
func IsSCPShorthand(remote string) bool {
	if strings.Contains(remote, schemeSeparator) {
		return false
	}
	at := strings.Index(remote, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(remote[at+1:], ":")
}

// NormalizeRemote rewrites SCP shorthand into an ssh:// pseudo-URL so that it
// can be parsed like any other URL. Other inputs are returned unchanged.
//
//	git@github.com:owner/repo.git -> ssh://git@github.com/owner/repo.git
func NormalizeRemote(remote string) string {
	if !IsSCPShorthand(remote) {
		return remote
	}
	at := strings.Index(remote, "@")
	colon := at + 1 + strings.Index(remote[at+1:], ":")
	userHost := remote[:colon]
	path := strings.TrimPrefix(remote[colon+1:], "/")
	return scpScheme + schemeSeparator + userHost + "/" + path
}

// ParseRemote parses a remote reference in either dialect.
// Parser failures are returned as errors of kind errors.KindParse carrying the
// parser's message.
func ParseRemote(remote string) (*url.URL, error) {
	u, err := url.Parse(NormalizeRemote(remote))
	if err != nil {
		return nil, errors.Newf("parse remote", errors.KindParse, err)
	}
	return u, nil
}
