package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// genericErrorMessage is the fallback shown when a failed response does
// not carry a parsable {message} body.
const genericErrorMessage = "something went wrong"

// ErrNoToken is returned by authenticated methods when the TokenSource
// has no token. The call is never attempted.
var ErrNoToken = errors.New("no bearer token: sign in first")

// ErrNoTokenInResponse is returned when sign-in succeeds at the HTTP
// level but the response carries no identity token. This is a contract
// violation, distinct from an HTTP failure.
var ErrNoTokenInResponse = errors.New("authentication failed: no token received")

// APIError is a non-2xx response from the notes API. Message is the
// server-provided {message} body when present, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsAPIError reports whether err is an *APIError, returning it if so.
func IsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// apiErrorFromResponse decodes the error body of a failed call.
// Non-2xx responses are expected to carry {"message": "..."}; anything
// else falls back to the generic message.
func apiErrorFromResponse(resp *http.Response) *APIError {
	ae := &APIError{StatusCode: resp.StatusCode, Message: genericErrorMessage}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ae
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		ae.Message = payload.Message
	}
	return ae
}

// success reports whether the status code is in the 2xx range.
func success(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
