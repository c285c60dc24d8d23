package domain

// PermissionDomain identifies a macOS privacy category (TCC domain) that
// gates access to a data source. The set is closed: the native CLI only
// touches the Reminders and Calendar stores.
type PermissionDomain string

const (
	// DomainReminders covers access to the Reminders store. It is also the
	// default domain for any action that is not calendar-specific.
	DomainReminders PermissionDomain = "reminders"

	// DomainCalendars covers access to the Calendar (EventKit events) store.
	DomainCalendars PermissionDomain = "calendars"
)

// IsValid returns true if the domain is one of the defined constants.
func (d PermissionDomain) IsValid() bool {
	switch d {
	case DomainReminders, DomainCalendars:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (d PermissionDomain) String() string {
	return string(d)
}

// AppName returns the macOS application that owns the domain's data store,
// as addressed in AppleScript ("tell application ...").
func (d PermissionDomain) AppName() string {
	if d == DomainCalendars {
		return "Calendar"
	}
	return "Reminders"
}
