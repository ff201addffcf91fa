// Package errors is the only error package the rest of this module imports.
// It combines stdlib error plumbing with call-frame annotation (via
// golang.org/x/xerrors) and the typed-sentinel helpers in sentinels.go.
package errors

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

type wrapped struct {
	inner error
	msg   string
	frame xerrors.Frame
}

// Wrap annotates err with the caller's frame. Returns nil when err is nil so
// call sites can unconditionally reassign a named return.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	return &wrapped{
		inner: err,
		frame: xerrors.Caller(1),
	}
}

// Wrapf annotates err with the caller's frame and a message prefix.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return &wrapped{
		inner: err,
		msg:   fmt.Sprintf(format, args...),
		frame: xerrors.Caller(1),
	}
}

func (err *wrapped) Error() string {
	if err.msg == "" {
		return err.inner.Error()
	}

	return err.msg + ": " + err.inner.Error()
}

func (err *wrapped) Unwrap() error {
	return err.inner
}

func (err *wrapped) Format(state fmt.State, verb rune) {
	xerrors.FormatError(err, state, verb)
}

func (err *wrapped) FormatError(printer xerrors.Printer) error {
	if err.msg != "" {
		printer.Print(err.msg)
	}

	if printer.Detail() {
		err.frame.Format(printer)
	}

	return err.inner
}
