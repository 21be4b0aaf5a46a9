package domain

import (
	"errors"
	"net/http"
)

// ErrorKind - kind of failure produced by the export pipeline
type ErrorKind int

const (
	ErrTimeout ErrorKind = iota + 1
	ErrLaunch
	ErrCrash
	ErrNonZeroExit
	ErrParse
	ErrShape
	ErrDateFormat
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTimeout:
		return "timeout"
	case ErrLaunch:
		return "launch"
	case ErrCrash:
		return "crash"
	case ErrNonZeroExit:
		return "nonzero_exit"
	case ErrParse:
		return "parse"
	case ErrShape:
		return "shape"
	case ErrDateFormat:
		return "date_format"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the status code a handler answers with for this kind.
func (k ErrorKind) HTTPStatus() int {
	if k == ErrTimeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// TaskError is the single error type of the export pipeline. Detail is the
// human readable message sent back to clients.
type TaskError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *TaskError) Error() string {
	return e.Detail
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Is matches another *TaskError of the same kind, so errors.Is(err, &TaskError{Kind: ErrShape}) works.
func (e *TaskError) Is(target error) bool {
	t, ok := target.(*TaskError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewTaskError builds a TaskError of the given kind.
func NewTaskError(kind ErrorKind, detail string, err error) *TaskError {
	return &TaskError{Kind: kind, Detail: detail, Err: err}
}

// KindOf extracts the kind from err, or 0 when err is not a TaskError.
func KindOf(err error) ErrorKind {
	var te *TaskError
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}

// StatusCode maps err to an HTTP status. Errors outside the taxonomy are 500.
func StatusCode(err error) int {
	if k := KindOf(err); k != 0 {
		return k.HTTPStatus()
	}
	return http.StatusInternalServerError
}
