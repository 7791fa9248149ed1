package cli

import (
	"io"

	"github.com/fs-over-http/fsh/internal/config"
	"github.com/fs-over-http/fsh/internal/errors"
	"go.uber.org/zap"
)

const DefaultPrompt = "> "

type Config struct {
	APIClient APIClient

	// HostStore remembers the last host connected to. Optional.
	HostStore config.Backend

	// OpenURL opens a URL in a browser. Defaults to the system opener.
	OpenURL func(url string) error

	Logger *zap.SugaredLogger

	Stdout      io.Writer
	StdoutIsTTY bool
	Stderr      io.Writer
	StderrIsTTY bool

	// Scheme is used to build the URLs handed to OpenURL. Defaults to https.
	Scheme string
	Prompt string

	// Strict rejects listings whose summary counts disagree with their entries.
	Strict bool

	// CancelOnInterrupt cancels an in-flight fetch on an interrupt signal
	// without ending the session.
	CancelOnInterrupt bool

	// Width is the column help text is wrapped at. Zero detects it from the terminal.
	Width uint
}

func (c Config) Validate() error {
	if c.APIClient == nil {
		return errors.New("missing API client")
	}

	if c.Stdout == nil {
		return errors.New("missing Stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing Stderr")
	}

	return nil
}
