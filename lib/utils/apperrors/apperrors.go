// Package apperrors carries the error taxonomy the HTTP layer maps onto
// status codes. Anything not wrapped here is treated as a storage failure and
// surfaces as a generic 500.
package apperrors

import (
	"github.com/pkg/errors"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeNotFound     Code = "not_found"
	CodeInconsistent Code = "inconsistent"
)

type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func NewValidation(msg string) error {
	return &Error{Code: CodeValidation, Msg: msg}
}

func NewNotFound(msg string) error {
	return &Error{Code: CodeNotFound, Msg: msg}
}

// NewInconsistent flags a queue entry whose target entity is gone, a
// data-integrity gap that needs manual remediation.
func NewInconsistent(msg string) error {
	return &Error{Code: CodeInconsistent, Msg: msg}
}

func CodeOf(err error) (Code, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func IsValidation(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeValidation
}

func IsNotFound(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeNotFound
}

func IsInconsistent(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeInconsistent
}
