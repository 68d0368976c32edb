package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx answer from the profile backend. Message is the
// server's "message" field when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	}
	return e.Message
}

// UserMessage extracts the text worth showing to the user from err: the
// server message when there is one, otherwise a generic notice.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Your session is not valid, please sign in again"
	case errors.Is(err, ErrUnavailable):
		return "Server is unavailable, try again later"
	default:
		return "Something went wrong"
	}
}
