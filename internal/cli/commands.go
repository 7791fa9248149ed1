package cli

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fs-over-http/fsh/internal/config"
	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/fs-over-http/fsh/internal/filelist"
)

// Connect points the session at host. With an empty host it falls back to the
// last host stored in HostStore.
func (s *Session) Connect(host string) error {
	host = strings.TrimSpace(host)

	if host == "" && s.HostStore != nil {
		stored, err := s.HostStore.Get(config.LastHostKey)
		if err != nil {
			s.Logger.Warnw("unable to read the last host", "error", err)
		}
		host = stored
	}

	if host == "" {
		return userError(errors.ErrUsage, "Usage: connect <host>")
	}

	s.server = host
	s.connected = true

	if s.HostStore != nil {
		if err := s.HostStore.Set(config.LastHostKey, host); err != nil {
			s.Logger.Warnw("unable to remember the host", "host", host, "error", err)
		}
	}

	s.Logger.Debugw("connected", "host", host)
	return nil
}

// ChangeDir moves the working directory. ".." at the root stays at the root.
func (s *Session) ChangeDir(arg string) error {
	switch {
	case arg == "":
		return userError(errors.ErrUsage, "Usage: cd <directory>")
	case arg == "..":
		if len(s.pathStack) > 1 {
			s.pathStack = s.pathStack[:len(s.pathStack)-1]
		}
		return nil
	case strings.HasPrefix(arg, rootSegment):
		s.pathStack = []string{rootSegment}
		arg = strings.TrimLeft(arg, rootSegment)
	}

	segment := strings.TrimRight(arg, "/")
	if segment == "" || segment == "." {
		return nil
	}

	s.pathStack = append(s.pathStack, segment)
	return nil
}

// List fetches the working directory and writes its entries to Stdout,
// directories first. When pattern is set only entries matching it are written.
func (s *Session) List(ctx context.Context, pattern string) error {
	if !s.connected {
		return userError(errors.ErrNotConnected, NotConnectedMessage)
	}

	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return userError(errors.ErrUsage, "Invalid pattern: %s", pattern)
	}

	path := s.WorkingPath()

	raw, err := s.fetch(ctx, path)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.Canceled) {
			return userError(err, "Interrupted listing %s", path)
		}
		return userError(err, "Unable to list %s: %s", path, err)
	}

	dir, err := filelist.Parse(raw)
	if err == nil && s.Strict {
		err = dir.Validate()
	}

	var protocolErr *filelist.ProtocolError
	switch {
	case filelist.IsAccessDenied(err):
		return userError(err, "Access denied: %s", path)
	case errors.As(err, &protocolErr):
		return userError(err, "Malformed response from %s: %s", s.server, protocolErr.Reason)
	case err != nil:
		return err
	}

	s.Logger.Debugw("listed directory", "path", dir.Path, "directories", dir.DirCount, "files", dir.FileCount)

	for _, entry := range filelist.Render(dir) {
		if pattern != "" {
			name := strings.TrimSuffix(entry, filelist.Separator)
			if matched, _ := doublestar.Match(pattern, name); !matched {
				continue
			}
		}

		s.println(stripansi.Strip(entry))
	}

	return nil
}

func (s *Session) fetch(ctx context.Context, path string) (string, error) {
	if s.CancelOnInterrupt {
		var stopSignals context.CancelFunc
		ctx, stopSignals = signal.NotifyContext(ctx, os.Interrupt)
		defer stopSignals()
	}

	stop := Spin("Listing "+path, s.StderrIsTTY, s.Stderr)
	defer stop()

	return s.APIClient.FetchListing(ctx, s.server, path)
}

func (s *Session) connectCommand(args []string) error {
	if len(args) > 1 {
		return userError(errors.ErrUsage, "Usage: connect <host>")
	}

	host := ""
	if len(args) == 1 {
		host = args[0]
	}

	if err := s.Connect(host); err != nil {
		return err
	}

	s.println("Connected")
	return nil
}

func (s *Session) pwdCommand(args []string) error {
	if !s.connected {
		return userError(errors.ErrNotConnected, NotConnectedMessage)
	}
	if len(args) > 0 {
		return userError(errors.ErrUsage, "Usage: pwd")
	}

	s.println(s.WorkingPath())
	return nil
}

func (s *Session) lsCommand(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return userError(errors.ErrUsage, "Usage: ls [pattern]")
	}

	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	return s.List(ctx, pattern)
}

func (s *Session) cdCommand(args []string) error {
	if len(args) != 1 {
		return userError(errors.ErrUsage, "Usage: cd <directory>")
	}

	return s.ChangeDir(args[0])
}

func (s *Session) openCommand(args []string) error {
	if !s.connected {
		return userError(errors.ErrNotConnected, NotConnectedMessage)
	}
	if len(args) > 0 {
		return userError(errors.ErrUsage, "Usage: open")
	}

	target := url.URL{Scheme: s.Scheme, Host: s.server, Path: s.WorkingPath()}
	if err := s.OpenURL(target.String()); err != nil {
		return userError(err, "Unable to open %s: %s", target.String(), err)
	}

	s.println("Opened " + target.String())
	return nil
}
