package events

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// InMemoryEventDispatcher routes published events to subscribed handlers
// through a buffered channel. Delivery is asynchronous: handler errors are
// logged and never surface to the publisher.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler

	running atomic.Bool
	queue   chan DomainEvent
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewInMemoryEventDispatcher(bufferSize int) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		queue:    make(chan DomainEvent, bufferSize),
		done:     make(chan struct{}),
	}
}

// Publish enqueues a single event. It fails rather than blocks when the
// queue is full, so a stalled handler cannot back-pressure request handling.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	if !d.running.Load() {
		return fmt.Errorf("event dispatcher is not running")
	}
	select {
	case d.queue <- event:
		return nil
	default:
		return fmt.Errorf("event queue is full")
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("publish %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

// Subscribe registers a handler for one event type. Registration happens at
// wiring time, before Start.
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Start launches the dispatch loop.
func (d *InMemoryEventDispatcher) Start() error {
	if !d.running.CompareAndSwap(false, true) {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.dispatchLoop()
	}()
	return nil
}

// Stop shuts the loop down after draining events already queued.
func (d *InMemoryEventDispatcher) Stop() error {
	if !d.running.CompareAndSwap(true, false) {
		return fmt.Errorf("event dispatcher is not running")
	}

	close(d.done)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) dispatchLoop() {
	for {
		select {
		case <-d.done:
			for {
				select {
				case event := <-d.queue:
					d.dispatch(event)
				default:
					return
				}
			}
		case event := <-d.queue:
			d.dispatch(event)
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		// Each handler runs in its own goroutine so one slow hook does not
		// hold up the others.
		go func(h EventHandler, e DomainEvent) {
			if err := h.Handle(e); err != nil {
				slog.Error("event handler failed",
					"event_type", e.GetEventType(),
					"aggregate_id", e.GetAggregateID(),
					"error", err)
			}
		}(handler, event)
	}
}

// SimpleEventHandler adapts a plain function to EventHandler for a single
// event type.
type SimpleEventHandler struct {
	eventType string
	fn        func(DomainEvent) error
}

func NewSimpleEventHandler(eventType string, fn func(DomainEvent) error) *SimpleEventHandler {
	return &SimpleEventHandler{eventType: eventType, fn: fn}
}

func (h *SimpleEventHandler) Handle(event DomainEvent) error {
	if h.fn == nil {
		return nil
	}
	return h.fn(event)
}

func (h *SimpleEventHandler) CanHandle(eventType string) bool {
	return h.eventType == eventType
}
