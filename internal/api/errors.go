package api

import "fmt"

// TransportError is a failure to complete the request itself: DNS, connection,
// TLS or a cancelled context. It never carries a listing.
type TransportError struct {
	Host string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Host, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
