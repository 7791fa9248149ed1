package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fs-over-http/fsh/cmd/fsh/config"
	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingMIME is the content type the server uses for directory listings.
const ListingMIME = "text/filelist"

type roundTripFunc func(*http.Request) (*http.Response, error)

func (rtf roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return rtf(r)
}

// Client fetches directory listings from fs-over-http servers.
type Client struct {
	http.RoundTripper
	scheme string
	logger *zap.SugaredLogger
}

func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return Client{}, errors.Wrap(err, "validation failed")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout > 0 {
		withTimeout := *httpClient
		withTimeout.Timeout = cfg.Timeout
		httpClient = &withTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	roundTrip := func(req *http.Request) (*http.Response, error) {
		req.Header.Set("User-Agent", fmt.Sprintf("fsh/%s", config.Version))
		req.Header.Set("Accept", ListingMIME)
		if req.Header.Get("X-Request-Id") == "" {
			req.Header.Set("X-Request-Id", uuid.NewString())
		}

		return httpClient.Do(req)
	}

	return Client{RoundTripper: roundTripFunc(roundTrip), scheme: cfg.scheme(), logger: logger}, nil
}

func NewClientWithRoundTrip(rt func(*http.Request) (*http.Response, error)) Client {
	return Client{RoundTripper: roundTripFunc(rt), scheme: "https", logger: zap.NewNop().Sugar()}
}

// FetchListing issues a GET for path against host and returns the response body.
// Forbidden responses are returned as a body so the caller can classify them from
// their content.
func (c Client) FetchListing(ctx context.Context, host, path string) (string, error) {
	if host == "" {
		return "", errors.New("missing host")
	}
	if path == "" {
		path = "/"
	}

	endpoint := url.URL{Scheme: c.scheme, Host: host, Path: path}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", errors.Wrap(err, "unable to create new HTTP request")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debugw("fetching listing", "url", endpoint.String(), "request_id", requestID)

	resp, err := c.RoundTrip(req)
	if err != nil {
		return "", &TransportError{Host: host, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debugw("received response", "status", resp.StatusCode, "request_id", requestID)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusForbidden:
		break
	case http.StatusNotFound:
		return "", errors.Wrapf(errors.ErrNotFound, "%s on %s", path, host)
	default:
		return "", errors.Errorf("unexpected response from %s: %s", host, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Host: host, Err: errors.Wrap(err, "unable to read response body")}
	}

	return string(body), nil
}
