package mocks

import (
	"context"

	"github.com/fs-over-http/fsh/internal/errors"
)

type API struct {
	MockFetchListing func(ctx context.Context, host, path string) (string, error)
}

func (c *API) FetchListing(ctx context.Context, host, path string) (string, error) {
	if c.MockFetchListing != nil {
		return c.MockFetchListing(ctx, host, path)
	}

	return "", errors.New("MockFetchListing was not configured")
}
