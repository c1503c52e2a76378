package apperror

import (
	"errors"
	"net/http"
	"strings"
)

type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) *Error {
	return New(CodeBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// Validation joins several field messages into one BadRequest.
func Validation(messages ...string) *Error {
	return New(CodeBadRequest, strings.Join(messages, ", "))
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides the text of errors that were not raised on purpose.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return "Internal server error"
}
