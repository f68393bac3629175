package urlutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicabarNimble/jago/internal/errors"
)

func TestIsSCPShorthand(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		expected bool
	}{
		{"github scp", "git@github.com:owner/repo.git", true},
		{"custom user", "deploy@git.example.com:group/sub/project", true},
		{"https url", "https://github.com/owner/repo.git", false},
		{"ssh url with user and port", "ssh://git@github.com:22/owner/repo.git", false},
		{"no at sign", "github.com:owner/repo", false},
		{"colon before at sign only", "c:foo@bar", false},
		{"bare path", "not-a-url", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSCPShorthand(tt.remote))
		})
	}
}

func TestNormalizeRemote(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		expected string
	}{
		{
			name:     "scp shorthand",
			remote:   "git@github.com:xi-editor/xi-editor.git",
			expected: "ssh://git@github.com/xi-editor/xi-editor.git",
		},
		{
			name:     "scp shorthand with absolute path",
			remote:   "git@example.com:/srv/repo.git",
			expected: "ssh://git@example.com/srv/repo.git",
		},
		{
			name:     "https left alone",
			remote:   "https://github.com/xi-editor/xi-editor.git",
			expected: "https://github.com/xi-editor/xi-editor.git",
		},
		{
			name:     "bare path left alone",
			remote:   "not-a-url",
			expected: "not-a-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRemote(tt.remote))
		})
	}
}

func TestParseRemote(t *testing.T) {
	tests := []struct {
		name         string
		remote       string
		expectedHost string
		expectedPath string
	}{
		{
			name:         "https",
			remote:       "https://github.com/owner/repo.git",
			expectedHost: "github.com",
			expectedPath: "/owner/repo.git",
		},
		{
			name:         "https with port",
			remote:       "https://git.example.com:8443/group/project",
			expectedHost: "git.example.com",
			expectedPath: "/group/project",
		},
		{
			name:         "scp shorthand",
			remote:       "git@github.com:owner/repo.git",
			expectedHost: "github.com",
			expectedPath: "/owner/repo.git",
		},
		{
			name:         "relative path has no host",
			remote:       "not-a-url",
			expectedHost: "",
			expectedPath: "not-a-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseRemote(tt.remote)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, u.Hostname())
			assert.Equal(t, tt.expectedPath, u.Path)
		})
	}
}

func TestParseRemote_Errors(t *testing.T) {
	tests := []struct {
		name   string
		remote string
	}{
		{"missing scheme", "://github.com/owner/repo"},
		{"space in host", "https://git hub.com/owner/repo"},
		{"bad escape", "https://github.com/owner/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseRemote(tt.remote)
			assert.Nil(t, u)
			require.Error(t, err)
			assert.Equal(t, errors.KindParse, errors.KindOf(err))
		})
	}
}
