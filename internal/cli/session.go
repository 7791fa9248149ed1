package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/mattn/go-shellwords"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

const (
	rootSegment = "/"

	NotConnectedMessage = `Not connected. Use "connect <host>" first.`
)

var HandledError = errors.New("handled error")

// Session is one interactive shell: the server it is connected to and the
// working directory on that server. It starts disconnected at the root and can
// only move to connected.
type Session struct {
	Config

	server    string
	connected bool
	pathStack []string
	done      bool
	fold      cases.Caser
}

func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.OpenURL == nil {
		cfg.OpenURL = open.Run
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	return &Session{
		Config:    cfg,
		pathStack: []string{rootSegment},
		fold:      cases.Fold(),
	}, nil
}

func (s *Session) Connected() bool {
	return s.connected
}

func (s *Session) Server() string {
	return s.server
}

// Done reports whether an exit command has been executed.
func (s *Session) Done() bool {
	return s.done
}

// WorkingPath joins the path stack; the root segment contributes the leading slash.
func (s *Session) WorkingPath() string {
	return rootSegment + strings.Join(s.pathStack[1:], "/")
}

// Run reads and executes commands until the input is closed or an exit command
// is given.
func (s *Session) Run(ctx context.Context, in LineReader) error {
	for !s.done {
		line, err := in.ReadLine(s.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			s.report(userError(err, "Input line too long (limit %d bytes)", MaxLineLength))
			continue
		}
		if err != nil {
			return err
		}

		s.Execute(ctx, line)
	}

	return nil
}

// Execute runs one line of input. Every failure is written to Stdout as a
// single line; none of them end the session.
func (s *Session) Execute(ctx context.Context, line string) {
	args := tokenize(line)
	if len(args) == 0 {
		return
	}

	verb := s.fold.String(args[0])
	s.Logger.Debugw("dispatching command", "verb", verb, "args", args[1:])

	if err := s.dispatch(ctx, verb, args[1:]); err != nil {
		s.report(err)
	}
}

// tokenize splits a line on whitespace. Quotes group words only when the line
// has no backslashes and the quotes balance, so names like Bob's or a\b are
// taken as typed.
func tokenize(line string) []string {
	if strings.ContainsAny(line, `"'`) && !strings.Contains(line, `\`) {
		if args, err := shellwords.Parse(line); err == nil {
			return args
		}
	}

	return strings.Fields(line)
}

func (s *Session) dispatch(ctx context.Context, verb string, args []string) error {
	switch verb {
	case "connect":
		return s.connectCommand(args)
	case "pwd":
		return s.pwdCommand(args)
	case "ls":
		return s.lsCommand(ctx, args)
	case "cd":
		return s.cdCommand(args)
	case "open":
		return s.openCommand(args)
	case "help":
		s.printHelp()
		return nil
	case "exit", "quit":
		s.done = true
		return nil
	default:
		return userError(errors.ErrInvalidCommand, "Invalid command: %s", verb)
	}
}

func (s *Session) report(err error) {
	s.Logger.Debugw("command failed", "error", fmt.Sprintf("%+v", err))
	s.println(strings.ReplaceAll(err.Error(), "\n", " "))
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.Stdout, line)
}

// commandError carries the line shown to the user alongside its cause.
type commandError struct {
	message string
	err     error
}

func (e *commandError) Error() string {
	return e.message
}

func (e *commandError) Unwrap() error {
	return e.err
}

func userError(err error, format string, args ...any) error {
	return &commandError{message: fmt.Sprintf(format, args...), err: err}
}
