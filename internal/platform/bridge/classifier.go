package bridge

import (
	"strings"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// calendarActions is the fixed set of helper actions gated by Calendar
// access. Every other action, including an unknown or missing one, falls
// under Reminders. New calendar actions must be added here alongside the
// helper, or their permission failures will prompt the wrong domain.
var calendarActions = map[string]bool{
	"list-calendars": true,
	"list-events":    true,
	"create-event":   true,
	"update-event":   true,
	"delete-event":   true,
}

// ActionFromArgs returns the value of the --action flag, or "" when the
// flag is missing or has no value. Both "--action name" and "--action=name"
// forms are accepted.
func ActionFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--action" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if v, ok := strings.CutPrefix(arg, "--action="); ok {
			return v
		}
	}
	return ""
}

// DomainForAction maps an argument list to the permission domain its action
// requires. Calendar-specific actions map to calendars; everything else,
// including a missing or malformed --action flag, defaults to reminders.
func DomainForAction(args []string) domain.PermissionDomain {
	if calendarActions[ActionFromArgs(args)] {
		return domain.DomainCalendars
	}
	return domain.DomainReminders
}

// permissionMarkers identify helper error messages caused by the operating
// system denying access, case-insensitively. The write-only variant appears
// when the user granted "Add Only" calendar access but the action needs to
// read.
var permissionMarkers = []string{
	"permission denied",
	"access denied",
	"not authorized",
	"no permission",
	"access has not been granted",
	"permission is write-only, but read access is required",
}

// ClassifyErrorMessage reports whether message describes a permission
// failure and, if so, for which domain. The domain is inferred from the
// message text: messages naming calendars classify as calendars, everything
// else as reminders (matching the action-default in DomainForAction).
// A false result means the error is not permission-related.
func ClassifyErrorMessage(message string) (domain.PermissionDomain, bool) {
	lower := strings.ToLower(message)

	matched := false
	for _, marker := range permissionMarkers {
		if strings.Contains(lower, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	if strings.Contains(lower, "calendar") || strings.Contains(lower, "event") {
		return domain.DomainCalendars, true
	}
	return domain.DomainReminders, true
}
