package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking. The bridge classifies every
// native-CLI failure into exactly one of the permission/user/system kinds;
// ErrValidation covers request-level validation before the bridge is reached.
var (
	ErrPermission = errors.New("permission denied")
	ErrUser       = errors.New("user error")
	ErrSystem     = errors.New("system error")
	ErrValidation = errors.New("validation error")
)

// RemediationText is the user-actionable instruction appended to permission
// errors that survive the bridge's single retry. It must remain visible even
// when other system detail is redacted.
const RemediationText = "Grant access in System Settings > Privacy & Security"

// PermissionError reports that the native process was denied access to a
// permission domain. Constructed at the parse/classify boundary and
// propagated unchanged.
type PermissionError struct {
	Domain  PermissionDomain
	Message string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s access not granted: %s. %s", e.Domain, e.Message, RemediationText)
}

func (e *PermissionError) Unwrap() error {
	return ErrPermission
}

// UserError carries a condition the caller can resolve (not found, invalid
// input) reported by the native process. The message is surfaced verbatim
// and never retried or generic-ized.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return ErrUser
}

// SystemError wraps opaque failures: missing binary, spawn failure,
// malformed or empty CLI output, unclassified process errors.
type SystemError struct {
	Message string
}

func (e *SystemError) Error() string {
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return ErrSystem
}

// NewSystemError creates a SystemError with the canonical native-process
// failure prefix.
func NewSystemError(format string, args ...any) *SystemError {
	return &SystemError{Message: "Native process error: " + fmt.Sprintf(format, args...)}
}

// Presentable returns the error text suitable for showing to an end user.
// In debug mode everything is shown. Otherwise system errors collapse to a
// generic message, except when the text itself is user-actionable (permission
// remediation); permission, user, and validation errors always pass through.
func Presentable(err error, debug bool) string {
	if err == nil {
		return ""
	}
	if debug {
		return err.Error()
	}
	if errors.Is(err, ErrSystem) && !strings.Contains(err.Error(), RemediationText) {
		return "An internal error occurred while accessing macOS data"
	}
	return err.Error()
}

// MsgRequired is the shared validation message for missing required fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
