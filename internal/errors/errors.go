package errors

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotFound       = New("not found")
	ErrNotConnected   = New("not connected")
	ErrInvalidCommand = New("invalid command")
	ErrUsage          = New("usage")
)

func New(msg string) error {
	return pkgerrors.New(msg)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func WithMessage(err error, msg string) error {
	return pkgerrors.WithMessage(err, msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
