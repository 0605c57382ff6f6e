package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoRefreshToken is the cause passed to the session-expired callback when no refresh credential is stored.
	ErrNoRefreshToken = errors.New("no refresh token")
	// ErrRejectedAfterRefresh is the cause passed to the session-expired callback when the replayed request is still unauthorized.
	ErrRejectedAfterRefresh = errors.New("unauthorized with refreshed token")
	// ErrMissingAccessToken reports a refresh response without an access credential.
	ErrMissingAccessToken = errors.New("refresh response has no accessToken")
)

// RefreshError is returned when the refresh endpoint could not issue a new access credential.
type RefreshError struct {
	StatusCode int
	Payload    []byte
	Err        error
}

func (e *RefreshError) Error() string {
	builder := strings.Builder{}
	builder.WriteString("token refresh failed")
	if e.StatusCode != 0 {
		builder.WriteString(fmt.Sprintf(": status %d", e.StatusCode))
	}
	if message := Message(e.Payload); message != "" {
		builder.WriteString(": " + message)
	}
	if e.Err != nil {
		builder.WriteString(": " + e.Err.Error())
	}
	return builder.String()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Message extracts a server provided `message` (or `error`) field from a JSON payload.
func Message(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// Outcome classifies the result of a call made through the RoundTripper.
type Outcome int

const (
	Success Outcome = iota
	// TerminalAuthFailure means the session is gone and re-authentication is required.
	TerminalAuthFailure
	// OtherFailure covers network errors, non-401 error statuses and
	// rejected logins.
	OtherFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case TerminalAuthFailure:
		return "terminalAuthFailure"
	}
	return "otherFailure"
}

// Classify maps a response/error pair returned by the RoundTripper (directly
// or through http.Client) to an Outcome. Any 401 that reaches the caller is
// terminal because recovery has already been attempted.
func Classify(resp *http.Response, err error) Outcome {
	if err != nil {
		var refreshErr *RefreshError
		if errors.As(err, &refreshErr) || errors.Is(err, ErrNoRefreshToken) {
			return TerminalAuthFailure
		}
		return OtherFailure
	}
	if resp == nil {
		return OtherFailure
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return TerminalAuthFailure
	case resp.StatusCode >= http.StatusBadRequest:
		return OtherFailure
	}
	return Success
}
