// ABOUTME: Error taxonomy for Radarr API failures exposed to the tool layer.
// ABOUTME: Maps HTTP status and transport failures into stable error kinds.

package radarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a client failure. The tool layer reports the kind verbatim
// to callers, so values are stable wire-level identifiers.
type Kind string

const (
	// KindInvalidArgument means the caller's input was rejected before any
	// remote call was made.
	KindInvalidArgument Kind = "invalid_argument"

	// KindNotFound means the remote API has no matching entity.
	KindNotFound Kind = "not_found"

	// KindAmbiguousMatch means a lookup expected one movie and found several.
	KindAmbiguousMatch Kind = "ambiguous_match"

	// KindAuthentication means Radarr rejected the API key.
	KindAuthentication Kind = "authentication"

	// KindRemoteRejected means Radarr refused the operation on a business
	// rule, such as adding a movie that already exists.
	KindRemoteRejected Kind = "remote_rejected"

	// KindTransport covers connection failures, timeouts, undecodable
	// responses, and server-side errors. Calls are never retried.
	KindTransport Kind = "transport"
)

// Error is the only error type the client returns. Status is the HTTP status
// when the failure came from a response, zero otherwise.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("radarr: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("radarr: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, defaulting to KindTransport for errors that
// did not originate in this package.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindTransport
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func ambiguousMatch(format string, args ...any) *Error {
	return &Error{Kind: KindAmbiguousMatch, Message: fmt.Sprintf(format, args...)}
}

// transportError wraps a network-level failure. Context cancellation and
// deadline expiry both count: a timed-out call surfaces as a transport
// failure, never a hang.
func transportError(err error) *Error {
	msg := "request failed"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "request timed out"
	case errors.Is(err, context.Canceled):
		msg = "request canceled"
	case err != nil:
		msg = err.Error()
	}
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

// statusError maps a non-2xx response into a kinded error. The body, when
// decodable, supplies the message; Radarr reports validation failures as
// either a bare object or an array of {errorMessage} entries.
func statusError(status int, body []byte) *Error {
	kind := KindTransport
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuthentication
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity:
		kind = KindRemoteRejected
	}

	msg := remoteMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Kind: kind, Message: msg, Status: status}
}

// remoteMessage pulls a human-readable message out of a Radarr error body.
func remoteMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var list []struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &list); err == nil {
		var msgs []string
		for _, e := range list {
			if e.ErrorMessage != "" {
				msgs = append(msgs, e.ErrorMessage)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	var obj struct {
		Message      string `json:"message"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &obj); err == nil {
		if obj.Message != "" {
			return obj.Message
		}
		if obj.ErrorMessage != "" {
			return obj.ErrorMessage
		}
	}
	return ""
}
