package bridge

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// responseEnvelope is the helper's stdout wire format: exactly one JSON
// document, either {"status":"success","result":...} or
// {"status":"error","message":"..."}.
type responseEnvelope struct {
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// decodeResponse unwraps one helper run into a typed result or a classified
// error. invErr is the invocation-level failure from the breaker pipeline
// (spawn failure, timeout, circuit open) and short-circuits decoding.
//
// Precedence on a non-zero exit: a valid error envelope on stdout beats the
// opaque exit status, because the helper reports its own failures through
// the envelope before exiting abnormally.
func decodeResponse[T any](res invokeResult, invErr error) (T, error) {
	var zero T

	if invErr != nil {
		if _, ok := invErr.(*domain.SystemError); ok {
			return zero, invErr
		}
		return zero, domain.NewSystemError("%v", invErr)
	}

	trimmed := bytes.TrimSpace(res.Stdout)
	if len(trimmed) == 0 {
		if res.ExitErr != nil {
			return zero, exitFailure(res)
		}
		return zero, &domain.SystemError{Message: "Empty CLI output"}
	}

	var env responseEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		if res.ExitErr != nil {
			return zero, exitFailure(res)
		}
		return zero, &domain.SystemError{Message: "Invalid CLI output"}
	}

	switch env.Status {
	case statusSuccess:
		if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
			return zero, nil
		}
		var out T
		if err := json.Unmarshal(env.Result, &out); err != nil {
			return zero, &domain.SystemError{Message: "Invalid CLI output"}
		}
		return out, nil
	case statusError:
		return zero, classifyFailure(env.Message)
	default:
		return zero, &domain.SystemError{Message: "Invalid CLI output"}
	}
}

// exitFailure builds the opaque process-failure error for a non-zero exit
// that produced no usable envelope.
func exitFailure(res invokeResult) error {
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return domain.NewSystemError("%v: %s", res.ExitErr, msg)
	}
	return domain.NewSystemError("%v", res.ExitErr)
}

// userErrorMarkers identify helper error messages that describe a condition
// the caller can resolve. These are surfaced verbatim and never retried.
var userErrorMarkers = []string{
	"not found",
	"does not exist",
	"already exists",
	"invalid",
	"is required",
}

// classifyFailure turns an error envelope message into the matching typed
// error: a PermissionError when the message matches a permission pattern, a
// UserError when the caller can resolve it, and a prefixed SystemError
// otherwise.
func classifyFailure(message string) error {
	if dom, ok := ClassifyErrorMessage(message); ok {
		return &domain.PermissionError{Domain: dom, Message: message}
	}

	lower := strings.ToLower(message)
	for _, marker := range userErrorMarkers {
		if strings.Contains(lower, marker) {
			return &domain.UserError{Message: message}
		}
	}

	return domain.NewSystemError("%s", message)
}
