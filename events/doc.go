// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events is an in-process publish/subscribe bus for session
notifications.

# Publishing

EventBus implements voting.Notifier, so a session can publish directly:

	bus := events.NewEventBus(prometheus.DefaultRegisterer, slog.Default())
	session := voting.NewSession(admin, voting.WithNotifier(bus))

Publish delivers synchronously; PublishAsync hands the event to a small worker
pool and drops it when the queue is full.

# Subscribing

	_, ch := bus.Subscribe(events.TypeOf(voting.KindVoted))
	bus.SubscribeFunc(events.TypeOf(voting.KindVoterRegistered), func(evt events.Event) { ... })
	bus.RegisterSubscriber(eventType, auditLog)

A subscriber whose Deliver returns an error or panics is removed.

# Metrics

With a Prometheus registerer the bus exports
quickly_vote_events_published_total, quickly_vote_event_subscribers and
quickly_vote_event_delivery_errors_total.
*/
package events
