package ports

import (
	"context"

	"github.com/google/uuid"
)

// Event is a generic wrapper for any event payload
type Event struct {
	Topic string
	Data  any
}

// EventHandler is a function that can handle a specific event.
// A returned error is reported by the bus; it never reaches the publisher.
type EventHandler func(ctx context.Context, event Event) error

// Subscription is the handle returned by Subscribe.
// It is the only valid argument to Unsubscribe.
type Subscription struct {
	ID    uuid.UUID
	Topic string
	Owner string
}

// SubscribeOptions holds the per-listener settings.
type SubscribeOptions struct {
	Owner string // Used by RemoveOwner
	Once  bool   // Drop the listener after its first delivery
}

// SubscribeOption configures a single Subscribe call.
type SubscribeOption func(*SubscribeOptions)

// WithOwner tags the listener so it can be removed in bulk.
func WithOwner(owner string) SubscribeOption {
	return func(o *SubscribeOptions) {
		o.Owner = owner
	}
}

// WithOnce removes the listener as soon as it is picked for a dispatch.
func WithOnce() SubscribeOption {
	return func(o *SubscribeOptions) {
		o.Once = true
	}
}

// EventBus defines the interface for our in-process pub/sub system
type EventBus interface {
	// Publish synchronously delivers data to every current subscriber of a topic,
	// in subscription order.
	Publish(ctx context.Context, topic string, data any)

	// Subscribe registers a handler for a specific topic
	Subscribe(topic string, handler EventHandler, opts ...SubscribeOption) Subscription

	// Unsubscribe removes exactly the registration behind sub.
	// It reports false if there was nothing to remove.
	Unsubscribe(sub Subscription) bool

	// RemoveOwner removes every registration tagged with owner.
	RemoveOwner(owner string) int

	// ListenerCount returns the number of registrations for a topic.
	ListenerCount(topic string) int
}
