package cli

import (
	"context"

	"github.com/fs-over-http/fsh/internal/api"
)

type APIClient interface {
	FetchListing(ctx context.Context, host, path string) (string, error)
}

var _ APIClient = api.Client{}

// LineReader reads one line of user input after showing prompt. It returns
// io.EOF once the input is closed.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

var (
	_ LineReader = (*StreamReader)(nil)
	_ LineReader = (*PromptReader)(nil)
)
