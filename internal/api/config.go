package api

import (
	"net/http"
	"time"

	"github.com/fs-over-http/fsh/internal/errors"
	"go.uber.org/zap"
)

type Config struct {
	// Scheme defaults to https.
	Scheme string

	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient overrides the client requests are sent with.
	HTTPClient *http.Client

	Logger *zap.SugaredLogger
}

func (c Config) Validate() error {
	switch c.Scheme {
	case "", "https", "http":
	default:
		return errors.Errorf("unsupported scheme %q", c.Scheme)
	}

	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	return nil
}

func (c Config) scheme() string {
	if c.Scheme != "" {
		return c.Scheme
	}
	return "https"
}
