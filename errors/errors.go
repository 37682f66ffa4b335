package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrValidation   = fmt.Errorf("validation error")
	ErrNotFound     = fmt.Errorf("not found")
	ErrUnauthorized = fmt.Errorf("not allowed to act on this resource")
	ErrSelfMessage  = fmt.Errorf("cannot send a message to yourself")
	ErrPersistence  = fmt.Errorf("persistence failure")

	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrTokenMissing       = fmt.Errorf("authorization token is missing")
	ErrTokenExpired       = fmt.Errorf("token expired")
	ErrTokenMalformed     = fmt.Errorf("token malformed")
	ErrTokenSignature     = fmt.Errorf("token signature invalid")

	ErrBackpressure     = fmt.Errorf("connection outbound buffer full")
	ErrConnectionClosed = fmt.Errorf("connection closed")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrEmptyWords       = fmt.Errorf("no words have been found")
)

// Reason is the machine-readable code sent to clients in message:error.
type Reason string

const (
	ReasonValidation   Reason = "validation_error"
	ReasonNotFound     Reason = "not_found"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonSelfMessage  Reason = "self_message"
	ReasonPersistence  Reason = "persistence_error"
	ReasonAuth         Reason = "authentication_error"
	ReasonConflict     Reason = "conflict"
	ReasonInternal     Reason = "internal_error"
)

// MapToReason resolves the wire reason of any error returned by the services.
func MapToReason(err error) Reason {
	switch {
	case stderrors.Is(err, ErrValidation), stderrors.Is(err, ErrInvalidPassword):
		return ReasonValidation
	case stderrors.Is(err, ErrNotFound):
		return ReasonNotFound
	case stderrors.Is(err, ErrUnauthorized):
		return ReasonUnauthorized
	case stderrors.Is(err, ErrSelfMessage):
		return ReasonSelfMessage
	case stderrors.Is(err, ErrPersistence):
		return ReasonPersistence
	case stderrors.Is(err, ErrUserAlreadyExists):
		return ReasonConflict
	case IsAuthError(err):
		return ReasonAuth
	default:
		return ReasonInternal
	}
}

// MapToHTTPStatus is the HTTP counterpart of MapToReason.
func MapToHTTPStatus(err error) int {
	switch MapToReason(err) {
	case ReasonValidation, ReasonSelfMessage:
		return http.StatusBadRequest
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonUnauthorized:
		return http.StatusForbidden
	case ReasonAuth:
		return http.StatusUnauthorized
	case ReasonConflict:
		return http.StatusConflict
	case ReasonPersistence:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func IsAuthError(err error) bool {
	return stderrors.Is(err, ErrInvalidCredentials) ||
		stderrors.Is(err, ErrTokenMissing) ||
		stderrors.Is(err, ErrTokenExpired) ||
		stderrors.Is(err, ErrTokenMalformed) ||
		stderrors.Is(err, ErrTokenSignature)
}

// Details returns the text after the sentinel for wrapped errors, if any.
// Persistence and internal failures never leak their cause to clients.
func Details(err error) string {
	if err == nil {
		return ""
	}
	switch MapToReason(err) {
	case ReasonPersistence, ReasonInternal:
		return ""
	}
	msg := err.Error()
	for _, sentinel := range detailed {
		if stderrors.Is(err, sentinel) {
			return strings.TrimPrefix(strings.TrimPrefix(msg, sentinel.Error()), ": ")
		}
	}
	return msg
}

var detailed = []error{
	ErrValidation, ErrNotFound, ErrUnauthorized, ErrSelfMessage,
	ErrInvalidPassword, ErrUserAlreadyExists, ErrInvalidCredentials,
	ErrTokenMissing, ErrTokenExpired, ErrTokenMalformed, ErrTokenSignature,
}
