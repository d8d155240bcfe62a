package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUpload
)

// Status maps a kind to its HTTP status. Conflicts answer 400, not 409.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a business failure that handlers turn into a JSON response.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) *Error {
	return newError(KindValidation, code, message)
}

func ErrUnauthenticated(code, message string) *Error {
	return newError(KindUnauthenticated, code, message)
}

func ErrForbidden(code, message string) *Error {
	return newError(KindForbidden, code, message)
}

func ErrNotFound(code, message string) *Error {
	return newError(KindNotFound, code, message)
}

func ErrConflict(code, message string) *Error {
	return newError(KindConflict, code, message)
}

func ErrUpload(err error) *Error {
	return &Error{Kind: KindUpload, Code: "upload_failed", Message: "Upload failed", Err: err}
}

// As extracts the business error from err, if any.
func As(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	be, ok := As(err)
	return ok && be.Kind == kind
}

func IsCode(err error, code string) bool {
	be, ok := As(err)
	return ok && be.Code == code
}
