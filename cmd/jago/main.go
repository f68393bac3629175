// Package main provides jago, a CLI that clones repositories into a GOPATH-style workspace
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NicabarNimble/jago/internal/config"
	"github.com/NicabarNimble/jago/internal/errors"
	"github.com/NicabarNimble/jago/internal/gitutils"
	"github.com/NicabarNimble/jago/internal/log"
)

// cloneFunc allows for mocking in tests
var cloneFunc = gitutils.CloneRepository

// cloneError carries the remote a clone failed for up to the top level
type cloneError struct {
	remote string
	err    error
}

func (e *cloneError) Error() string {
	return fmt.Sprintf("failed to clone %q: %v", e.remote, e.err)
}

func (e *cloneError) Unwrap() error {
	return e.err
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "jago <remote>",
		Short: "Clone a repository into a GOPATH-style workspace",
		Long: `Clone a remote repository into a directory derived from its URL,
under a workspace root that defaults to $HOME/src.

Both standard URLs and SCP shorthand are accepted and land in the same place:
  jago https://github.com/owner/repo.git   -> ~/src/github.com/owner/repo
  jago git@github.com:owner/repo.git       -> ~/src/github.com/owner/repo

The workspace root can be changed with --root, the JAGO_ROOT environment
variable, or a "root" key in ~/.jago.yaml.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log.InitLoggerWithOutput(cfg.Verbose, cmd.ErrOrStderr())
			log.Log.Debugf("Workspace root: %s", cfg.Root)

			return cloneRepository(cmd, cfg, args[0], dryRun)
		},
	}

	cmd.Flags().String(config.KeyRoot, "", "Workspace root (default $HOME/src)")
	cmd.Flags().BoolP(config.KeyVerbose, "v", false, "Enable debug logging and remote messages")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the destination without cloning")
	_ = v.BindPFlag(config.KeyRoot, cmd.Flags().Lookup(config.KeyRoot))
	_ = v.BindPFlag(config.KeyVerbose, cmd.Flags().Lookup(config.KeyVerbose))

	return cmd
}

func cloneRepository(cmd *cobra.Command, cfg *config.Config, remote string, dryRun bool) error {
	opts := gitutils.CloneOptions{
		SourceURL: remote,
		Root:      cfg.Root,
		Context:   cmd.Context(),
		Out:       cmd.OutOrStdout(),
		Verbose:   cfg.Verbose,
		DryRun:    dryRun,
	}

	dest, err := cloneFunc(opts)
	if err != nil {
		log.Log.Debugf("Clone of %s failed (%s error)", remote, errors.KindOf(err))
		return &cloneError{remote: remote, err: err}
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Repository would be cloned to %s\n", log.FgGreen("%s", dest))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Repository successfully cloned to %s\n", log.FgGreen("%s", dest))
	return nil
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var ce *cloneError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "Failed to clone %q. Error: %s\n", ce.remote, log.FgRed("%v", ce.err))
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
