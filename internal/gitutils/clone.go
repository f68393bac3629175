package gitutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/NicabarNimble/jago/internal/errors"
	"github.com/NicabarNimble/jago/internal/git"
	"github.com/NicabarNimble/jago/internal/log"
	"github.com/NicabarNimble/jago/internal/progress"
	"github.com/NicabarNimble/jago/internal/workspace"
)

// CloneOptions contains configuration for repository cloning
type CloneOptions struct {
	SourceURL string
	Root      string           // Workspace root the destination is derived under
	Context   context.Context  // Optional: defaults to context.Background()
	Out       io.Writer        // Optional: status output, defaults to os.Stdout
	Verbose   bool             // Echo remote messages that are not progress counters
	DryRun    bool             // Resolve and report the destination without cloning
	Cloner    git.Cloner       // Optional: defaults to go-git
	Progress  progress.Tracker // Optional: defaults to a console tracker on Out
}

// progressWriter turns git sideband output into tracker updates
type progressWriter struct {
	prefix  string
	w       io.Writer
	tracker progress.Tracker
	verbose bool
}

func newProgressWriter(prefix string, w io.Writer, tracker progress.Tracker, verbose bool) *progressWriter {
	return &progressWriter{prefix: prefix, w: w, tracker: tracker, verbose: verbose}
}

// Match lines like:
// Counting objects:  67% (35484/52960)
// Compressing objects: 100% (52960/52960), done.
var progressRegex = regexp.MustCompile(`^([A-Za-z][A-Za-z ]*):\s*(\d+)%\s*\((\d+)/(\d+)\)`)

func (pw *progressWriter) Write(p []byte) (n int, err error) {
	lines := strings.FieldsFunc(string(p), func(r rune) bool { return r == '\n' || r == '\r' })
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(line, "remote: "))
		if line == "" {
			continue
		}

		if matches := progressRegex.FindStringSubmatch(line); matches != nil {
			current, _ := strconv.ParseInt(matches[3], 10, 64)
			total, _ := strconv.ParseInt(matches[4], 10, 64)
			pw.tracker.Update(current, total)
			continue
		}

		log.Log.Debugf("remote: %s", line)
		if pw.verbose {
			fmt.Fprintf(pw.w, "%s%s\n", pw.prefix, line)
		}
	}
	return len(p), nil
}

// For testing purposes
var newCloner = func() git.Cloner {
	return git.NewGoGitCloner()
}

// CloneRepository clones opts.SourceURL into its workspace directory under
// opts.Root and returns that directory.
// Resolution errors are returned unchanged; client failures are returned as
// errors.KindClient wrapping the client's error. Nothing is retried and
// cleanup after a failed clone is left to the Cloner.
func CloneRepository(opts CloneOptions) (string, error) {
	if opts.SourceURL == "" {
		return "", errors.Newf("clone", errors.KindInvalidRemote, fmt.Errorf("source URL must be specified"))
	}
	if opts.Root == "" {
		return "", errors.Newf("clone", errors.KindConfig, fmt.Errorf("workspace root must be specified"))
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Cloner == nil {
		opts.Cloner = newCloner()
	}
	if opts.Progress == nil {
		opts.Progress = progress.NewConsoleTracker(opts.Out)
	}

	dest, err := workspace.DestinationDir(opts.Root, opts.SourceURL)
	if err != nil {
		log.Log.Debugf("Failed to resolve destination for %s: %v", opts.SourceURL, err)
		return "", err
	}

	fmt.Fprintf(opts.Out, "Cloning to %s...\n", log.FgCyan("%s", dest))
	if opts.DryRun {
		return dest, nil
	}

	opts.Progress.Start(fmt.Sprintf("Clone %s", opts.SourceURL))
	pw := newProgressWriter("   ", opts.Out, opts.Progress, opts.Verbose)
	if err := opts.Cloner.Clone(opts.Context, opts.SourceURL, dest, pw); err != nil {
		opts.Progress.Error(err)
		return "", errors.Newf("clone", errors.KindClient, err)
	}
	opts.Progress.Complete()

	return dest, nil
}
