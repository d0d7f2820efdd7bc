package hub

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/goccy/go-yaml"
)

var (
	// ErrPayloadDecode is returned when raw input does not fit a topic's payload type.
	ErrPayloadDecode = errors.New("payload does not match event")
	// ErrPayloadType is reported when a bus event carries the wrong Go type.
	ErrPayloadType = errors.New("unexpected payload type")
)

// Void is the payload of events that carry no data.
type Void struct{}

// Topic is one entry of the event catalog: an event name bound to payload type T.
// Topics can only be declared inside this package, so the set is closed.
type Topic[T any] struct {
	name string
}

// Name returns the wire name of the event, e.g. "peer_changed".
func (t Topic[T]) Name() string {
	return t.name
}

func (t Topic[T]) String() string {
	return t.name
}

// PayloadType returns the Go type carried by the event.
func (t Topic[T]) PayloadType() reflect.Type {
	return reflect.TypeFor[T]()
}

// PublishYAML decodes raw into the topic's payload type and publishes it.
// Unknown fields and mismatched types are rejected.
func (t Topic[T]) PublishYAML(ctx context.Context, h *Hub, raw []byte) error {
	var payload T
	if err := yaml.UnmarshalWithOptions(raw, &payload, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w %q: %v", ErrPayloadDecode, t.name, err)
	}
	Publish(ctx, h, t, payload)
	return nil
}

// Entry is the type-erased view of a Topic, used where code has to
// work with an event name known only at runtime.
type Entry interface {
	Name() string
	PayloadType() reflect.Type
	PublishYAML(ctx context.Context, h *Hub, raw []byte) error
}

var (
	catalog []Entry
	byName  = map[string]Entry{}
)

// declare adds a topic to the catalog. Names must be unique.
func declare[T any](name string) Topic[T] {
	if _, dup := byName[name]; dup {
		panic(fmt.Sprintf("hub: event %q declared twice", name))
	}
	t := Topic[T]{name: name}
	catalog = append(catalog, t)
	byName[name] = t
	return t
}

// Catalog returns every declared event in declaration order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by event name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}
