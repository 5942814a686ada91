// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	EventQueueSize      = 20
	AsyncQueueSize      = 1000
	AsyncWorkerPoolSize = 4
)

type EventType string

type SubscriberID int

type HandlerFunc func(Event)

type Event struct {
	ID        uuid.UUID
	Type      EventType
	Timestamp time.Time
	Data      any
}

func NewEvent(eventType EventType, data any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// Subscriber receives events from the bus. Close must be idempotent.
type Subscriber interface {
	Deliver(Event) error
	Close()
}

// channelSubscriber delivers events on a buffered channel. Deliver blocks
// when the buffer is full.
type channelSubscriber struct {
	ch     chan Event
	mu     sync.RWMutex
	closed bool
}

func newChannelSubscriber(buffer int) *channelSubscriber {
	return &channelSubscriber{ch: make(chan Event, buffer)}
}

func (c *channelSubscriber) Deliver(evt Event) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil
	}
	c.ch <- evt
	return nil
}

func (c *channelSubscriber) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}

type asyncEvent struct {
	eventType EventType
	event     Event
}

// EventBus fans events out to subscribers by type.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType]map[SubscriberID]Subscriber
	lastSubID   SubscriberID
	metrics     *busMetrics
	Logger      *slog.Logger

	asyncQueue chan asyncEvent
	asyncWg    sync.WaitGroup
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewEventBus starts the async worker pool. promRegistry may be nil.
func NewEventBus(promRegistry prometheus.Registerer, logger *slog.Logger) *EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	e := &EventBus{
		subscribers: make(map[EventType]map[SubscriberID]Subscriber),
		Logger:      logger,
		asyncQueue:  make(chan asyncEvent, AsyncQueueSize),
		stopCh:      make(chan struct{}),
	}
	if promRegistry != nil {
		e.metrics = newBusMetrics(promRegistry)
	}
	for range AsyncWorkerPoolSize {
		e.asyncWg.Add(1)
		go e.asyncWorker()
	}
	return e
}

func (e *EventBus) asyncWorker() {
	defer e.asyncWg.Done()
	for {
		select {
		case <-e.stopCh:
			return
		case ae := <-e.asyncQueue:
			e.Publish(ae.eventType, ae.event)
		}
	}
}

func subscriberKind(sub Subscriber) string {
	if _, ok := sub.(*channelSubscriber); ok {
		return "in-memory"
	}
	return "remote"
}

// Subscribe returns a channel receiving events of eventType.
func (e *EventBus) Subscribe(eventType EventType) (SubscriberID, <-chan Event) {
	sub := newChannelSubscriber(EventQueueSize)
	id := e.RegisterSubscriber(eventType, sub)
	return id, sub.ch
}

// SubscribeFunc calls handlerFunc for each event of eventType on a dedicated
// goroutine, in publish order. The goroutine exits on Unsubscribe or Stop.
func (e *EventBus) SubscribeFunc(eventType EventType, handlerFunc HandlerFunc) SubscriberID {
	id, ch := e.Subscribe(eventType)
	go func() {
		for evt := range ch {
			handlerFunc(evt)
		}
	}()
	return id
}

// RegisterSubscriber adds a custom Subscriber, such as a persistent audit log.
func (e *EventBus) RegisterSubscriber(eventType EventType, sub Subscriber) SubscriberID {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSubID++
	id := e.lastSubID
	if _, ok := e.subscribers[eventType]; !ok {
		e.subscribers[eventType] = make(map[SubscriberID]Subscriber)
	}
	e.subscribers[eventType][id] = sub
	if e.metrics != nil {
		e.metrics.subscribers.WithLabelValues(string(eventType), subscriberKind(sub)).Inc()
	}
	return id
}

func (e *EventBus) Unsubscribe(eventType EventType, id SubscriberID) {
	e.mu.Lock()
	var sub Subscriber
	if subs, ok := e.subscribers[eventType]; ok {
		if s, ok := subs[id]; ok {
			sub = s
			delete(subs, id)
			if len(subs) == 0 {
				delete(e.subscribers, eventType)
			}
			if e.metrics != nil {
				e.metrics.subscribers.WithLabelValues(string(eventType), subscriberKind(s)).Dec()
			}
		}
	}
	e.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

// Publish delivers evt synchronously to every subscriber of eventType. A
// subscriber whose Deliver fails or panics is unsubscribed.
func (e *EventBus) Publish(eventType EventType, evt Event) {
	type item struct {
		id  SubscriberID
		sub Subscriber
	}
	e.mu.RLock()
	subs := e.subscribers[eventType]
	list := make([]item, 0, len(subs))
	for id, sub := range subs {
		list = append(list, item{id, sub})
	}
	e.mu.RUnlock()

	for _, it := range list {
		err := deliver(it.sub, evt)
		if err == nil {
			continue
		}
		e.Unsubscribe(eventType, it.id)
		if e.metrics != nil {
			e.metrics.deliveryErrors.WithLabelValues(string(eventType), subscriberKind(it.sub)).Inc()
		}
		e.Logger.Warn("event delivery failed, subscriber removed", "type", eventType, "subscriber", it.id, "error", err)
	}
	if e.metrics != nil {
		e.metrics.eventsTotal.WithLabelValues(string(eventType)).Inc()
	}
}

func deliver(sub Subscriber, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber deliver panic: %v", r)
		}
	}()
	return sub.Deliver(evt)
}

// PublishAsync queues evt for the worker pool. It returns false when the bus
// is stopped or the queue is full; the event is dropped in that case.
func (e *EventBus) PublishAsync(eventType EventType, evt Event) bool {
	select {
	case <-e.stopCh:
		return false
	default:
	}
	select {
	case e.asyncQueue <- asyncEvent{eventType: eventType, event: evt}:
		return true
	default:
		e.Logger.Warn("async event queue full, dropping event", "type", eventType)
		if e.metrics != nil {
			e.metrics.deliveryErrors.WithLabelValues(string(eventType), "async-dropped").Inc()
		}
		return false
	}
}

// Stop halts the worker pool and closes every subscriber. It is safe to call
// more than once; a stopped bus delivers nothing.
func (e *EventBus) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
		e.asyncWg.Wait()

		e.mu.Lock()
		subs := e.subscribers
		e.subscribers = make(map[EventType]map[SubscriberID]Subscriber)
		e.mu.Unlock()

		for _, byID := range subs {
			for _, sub := range byID {
				sub.Close()
			}
		}
		if e.metrics != nil {
			e.metrics.subscribers.Reset()
		}
	})
}
