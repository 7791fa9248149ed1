package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fs-over-http/fsh/internal/cli"
	"github.com/fs-over-http/fsh/internal/errors"

	"github.com/spf13/cobra"
)

var (
	ListFailure = errors.Wrap(HandledError, "ls failed")

	lsPattern string

	lsCmd = &cobra.Command{
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			return ListOnce(cmd.Context(), session, args[0], path, lsPattern, os.Stderr)
		},
		Short: "Print one directory listing and exit",
		Use:   "ls [flags] <host> [path]",
	}
)

// ListOnce prints a single listing of path on host. Failures are written to
// stderr as the shell would show them and ListFailure is returned.
func ListOnce(ctx context.Context, session *cli.Session, host, path, pattern string, stderr io.Writer) error {
	err := session.Connect(host)
	if err == nil && path != "" {
		err = session.ChangeDir(path)
	}
	if err == nil {
		err = session.List(ctx, pattern)
	}
	if err == nil {
		return nil
	}

	fmt.Fprintln(stderr, err.Error())
	return ListFailure
}

func init() {
	lsCmd.Flags().StringVar(&lsPattern, "match", "", "only print entries matching this glob pattern")
}
