// Package domain contains the entity types and error taxonomy shared across
// the service: reminders and calendar events as surfaced by the native
// EventKit CLI, the closed set of macOS permission domains that gate access
// to them, and the classified errors (permission, user, system) produced at
// the bridge boundary.
package domain
