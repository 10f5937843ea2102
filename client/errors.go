// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sgerasimov/go-tgbot/models"
)

// Sentinel errors for common Bot API failure classes. They are attached to
// the returned *APIError via errors.Is, so callers can branch without
// inspecting codes.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInvalidToken is returned by New for tokens that do not look like
	// "123456:ABC-DEF...".
	ErrInvalidToken = errors.New("invalid bot token format")
)

// APIError is a Bot API level failure: the server answered with ok=false or
// a non-2xx status.
type APIError struct {
	// Method is the Bot API method that failed, e.g. "sendMessage".
	Method      string
	Code        int
	Description string
	Parameters  *models.ResponseParameters
}

func (e *APIError) Error() string {
	text := fmt.Sprintf("%s: [%d] %s", e.Method, e.Code, e.Description)
	if e.Parameters != nil {
		if e.Parameters.RetryAfter > 0 {
			text += fmt.Sprintf(" (retry after %ds)", e.Parameters.RetryAfter)
		}
		if e.Parameters.MigrateToChatID != 0 {
			text += fmt.Sprintf(" (migrate to chat %d)", e.Parameters.MigrateToChatID)
		}
	}
	return text
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Code == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrConflict:
		return e.Code == http.StatusConflict
	case ErrTooManyRequests:
		return e.Code == http.StatusTooManyRequests
	default:
		return false
	}
}

// RetryAfter returns the flood-control wait in seconds, or 0 when the error
// carries none.
func (e *APIError) RetryAfter() int {
	if e.Parameters == nil {
		return 0
	}
	return e.Parameters.RetryAfter
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
