// Package ui holds the small pieces of view plumbing shared by the client's
// components: a pointer-event bus and the router.
package ui

import (
	"strings"
	"sync"
)

// PointerEvent is a click on a rendered region. Target is the slash path of
// that region, e.g. "/navbar/user/menu/logout".
type PointerEvent struct {
	Target string
}

// Within reports whether the event hit region or one of its children.
func (e PointerEvent) Within(region string) bool {
	region = strings.TrimRight(region, "/")
	return e.Target == region || strings.HasPrefix(e.Target, region+"/")
}

// EventBus fans pointer events out to subscribers.
type EventBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(PointerEvent)
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[int]func(PointerEvent))}
}

// Subscribe registers fn and returns the function that removes it. Calling
// the returned function more than once is safe.
func (b *EventBus) Subscribe(fn func(PointerEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
		})
	}
}

// Publish delivers ev to every subscriber registered at the time of the call.
// Handlers run outside the bus lock, so they may subscribe or unsubscribe.
func (b *EventBus) Publish(ev PointerEvent) {
	b.mu.Lock()
	handlers := make([]func(PointerEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(ev)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *EventBus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
