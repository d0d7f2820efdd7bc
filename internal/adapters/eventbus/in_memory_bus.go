package eventbus

import (
	"RootScope/internal/core/ports"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// listener is one registration held by the bus.
type listener struct {
	sub     ports.Subscription
	handler ports.EventHandler
	once    bool
}

// inMemoryEventBus implements the ports.EventBus interface
type inMemoryEventBus struct {
	log       zerolog.Logger
	listeners map[string][]*listener
	mu        sync.Mutex
}

// NewInMemoryEventBus creates a new, empty event bus
func NewInMemoryEventBus(baseLogger *zerolog.Logger) ports.EventBus {
	return &inMemoryEventBus{
		log:       baseLogger.With().Str("component", "in_memory_bus").Logger(),
		listeners: make(map[string][]*listener),
	}
}

// Publish delivers an event to all subscribers of a topic on the caller's goroutine.
// The recipients are fixed when Publish starts; handlers may subscribe,
// unsubscribe or publish again without affecting this delivery.
func (b *inMemoryEventBus) Publish(ctx context.Context, topic string, data any) {
	recipients := b.snapshot(topic)
	if len(recipients) == 0 {
		b.log.Trace().Str("topic", topic).Msg("Published event with no subscribers")
		return
	}

	event := ports.Event{
		Topic: topic,
		Data:  data,
	}

	for _, l := range recipients {
		if err := b.invoke(ctx, l, event); err != nil {
			b.log.Error().
				Err(err).
				Str("topic", topic).
				Str("subscription_id", l.sub.ID.String()).
				Str("owner", l.sub.Owner).
				Msg("Event handler failed")
		}
	}
}

// snapshot copies the current listeners of a topic.
// Once-listeners are removed here so a nested publish cannot reach them again.
func (b *inMemoryEventBus) snapshot(topic string) []*listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[topic]
	if len(current) == 0 {
		return nil
	}

	recipients := make([]*listener, len(current))
	copy(recipients, current)

	kept := current[:0:0]
	for _, l := range current {
		if !l.once {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(current) {
		b.store(topic, kept)
	}

	return recipients
}

// invoke runs one handler, turning a panic into an error.
func (b *inMemoryEventBus) invoke(ctx context.Context, l *listener, event ports.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return l.handler(ctx, event)
}

// Subscribe registers a handler for a specific topic
func (b *inMemoryEventBus) Subscribe(topic string, handler ports.EventHandler, opts ...ports.SubscribeOption) ports.Subscription {
	var o ports.SubscribeOptions
	for _, opt := range opts {
		opt(&o)
	}

	l := &listener{
		sub: ports.Subscription{
			ID:    uuid.New(),
			Topic: topic,
			Owner: o.Owner,
		},
		handler: handler,
		once:    o.Once,
	}

	b.mu.Lock()
	// Appending to a fresh slice keeps any snapshot handed out earlier intact.
	current := b.listeners[topic]
	next := make([]*listener, len(current), len(current)+1)
	copy(next, current)
	b.listeners[topic] = append(next, l)
	b.mu.Unlock()

	b.log.Debug().
		Str("topic", topic).
		Str("subscription_id", l.sub.ID.String()).
		Str("owner", o.Owner).
		Bool("once", o.Once).
		Msg("New handler subscribed to topic")
	return l.sub
}

// Unsubscribe removes the registration identified by sub.
func (b *inMemoryEventBus) Unsubscribe(sub ports.Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[sub.Topic]
	for i, l := range current {
		if l.sub.ID != sub.ID {
			continue
		}
		next := make([]*listener, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		b.store(sub.Topic, next)

		b.log.Debug().Str("topic", sub.Topic).Str("subscription_id", sub.ID.String()).Msg("Handler unsubscribed")
		return true
	}
	return false
}

// RemoveOwner drops every registration made with ports.WithOwner(owner).
func (b *inMemoryEventBus) RemoveOwner(owner string) int {
	if owner == "" {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for topic, current := range b.listeners {
		next := make([]*listener, 0, len(current))
		for _, l := range current {
			if l.sub.Owner == owner {
				removed++
				continue
			}
			next = append(next, l)
		}
		if len(next) != len(current) {
			b.store(topic, next)
		}
	}

	if removed > 0 {
		b.log.Debug().Str("owner", owner).Int("removed", removed).Msg("Removed owner's handlers")
	}
	return removed
}

// ListenerCount returns the number of handlers registered for a topic.
func (b *inMemoryEventBus) ListenerCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[topic])
}

// store replaces a topic's listeners, dropping empty topics. Caller holds b.mu.
func (b *inMemoryEventBus) store(topic string, next []*listener) {
	if len(next) == 0 {
		delete(b.listeners, topic)
		return
	}
	b.listeners[topic] = next
}
