// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import "github.com/danielhkuo/quickly-vote/voting"

var _ voting.Notifier = (*EventBus)(nil)

// TypeOf maps a session notification kind to its event type.
func TypeOf(kind voting.NotificationKind) EventType {
	return EventType(kind)
}

// Notify publishes a session notification synchronously, so subscribers see
// notifications in the order the session emitted them.
func (e *EventBus) Notify(n voting.Notification) {
	t := TypeOf(n.Kind())
	e.Publish(t, NewEvent(t, n))
}
