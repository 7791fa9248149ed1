package filelist

import (
	"fmt"

	"github.com/fs-over-http/fsh/internal/errors"
)

// ForbiddenMarker is the text the server puts in the body of a forbidden response.
const ForbiddenMarker = "403 Forbidden"

type ErrorKind int

const (
	AccessDenied ErrorKind = iota + 1
	Malformed
)

func (k ErrorKind) String() string {
	switch k {
	case AccessDenied:
		return "access denied"
	case Malformed:
		return "malformed listing"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ProtocolError is a failure signalled by the listing payload itself, as opposed
// to a failure of the request carrying it.
type ProtocolError struct {
	Kind ErrorKind

	// Reason is only set for Malformed.
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func malformed(format string, args ...any) error {
	return &ProtocolError{Kind: Malformed, Reason: fmt.Sprintf(format, args...)}
}

func kindOf(err error) ErrorKind {
	var protocolErr *ProtocolError
	if errors.As(err, &protocolErr) {
		return protocolErr.Kind
	}
	return 0
}

func IsAccessDenied(err error) bool {
	return kindOf(err) == AccessDenied
}

func IsMalformed(err error) bool {
	return kindOf(err) == Malformed
}
