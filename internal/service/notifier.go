// Package service implements the application-facing operations over the
// repositories: link lifecycle, user sessions, and the event log.
package service

// Notifier is the sink for lifecycle notifications. Implementations must be
// safe to call unconditionally; a disabled sink simply drops everything.
type Notifier interface {
	Info(ownerUUID, shortCode, message string)
	Expired(ownerUUID, shortCode, message string)
	LimitReached(ownerUUID, shortCode, message string)
	Error(ownerUUID, shortCode, message string)
}

// noopNotifier drops every notification.
type noopNotifier struct{}

func (noopNotifier) Info(string, string, string)         {}
func (noopNotifier) Expired(string, string, string)      {}
func (noopNotifier) LimitReached(string, string, string) {}
func (noopNotifier) Error(string, string, string)        {}
