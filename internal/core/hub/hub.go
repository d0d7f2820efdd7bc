// Package hub is the typed front door of the event bus.
//
// Every cross-subsystem notification goes through Publish and Subscribe,
// which only accept the topics declared in catalog.go, so the payload type of
// each event is checked by the compiler. The Hub also keeps a few fields that
// are folded from past events (session, per-transport connection status,
// settings) plus the overlay and idle flags.
package hub

import (
	"RootScope/internal/core/domain"
	"RootScope/internal/core/ports"
	"RootScope/internal/shared/config"
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler receives the payload of one event.
type Handler[T any] func(ctx context.Context, payload T) error

// State is a copy of everything the Hub derives from events.
type State struct {
	MyID             int64                                    `yaml:"my_id"`
	Session          domain.UserAuth                          `yaml:"session"`
	ConnectionStatus map[string]domain.ConnectionStatusChange `yaml:"connection_status"`
	Settings         map[string]any                           `yaml:"settings"`
	OverlayActive    bool                                     `yaml:"overlay_active"`
	Idle             bool                                     `yaml:"idle"`
}

// Hub couples an EventBus with the event catalog and the derived state.
type Hub struct {
	bus          ports.EventBus
	log          zerolog.Logger
	trace        bool
	traceExclude map[string]struct{}
	// own holds the Hub's own subscriptions. They live as long as the Hub
	// and are only written in New.
	own map[uuid.UUID]struct{}

	mu               sync.RWMutex
	session          domain.UserAuth
	connectionStatus map[string]domain.ConnectionStatusChange
	settings         map[string]any
	overlayActive    bool
	idle             bool
}

// New creates a Hub on top of bus and subscribes it to the events
// it derives state from.
func New(bus ports.EventBus, cfg config.HubConfig, baseLogger *zerolog.Logger) *Hub {
	h := &Hub{
		bus:              bus,
		log:              baseLogger.With().Str("component", "event_hub").Logger(),
		trace:            cfg.TracePublishes,
		traceExclude:     make(map[string]struct{}, len(cfg.TraceExclude)),
		own:              make(map[uuid.UUID]struct{}, 3),
		connectionStatus: make(map[string]domain.ConnectionStatusChange),
		settings:         make(map[string]any),
	}

	for _, name := range cfg.TraceExclude {
		if _, ok := Lookup(name); !ok {
			h.log.Warn().Str("topic", name).Msg("Trace exclusion names an unknown event")
		}
		h.traceExclude[name] = struct{}{}
	}

	// No owner tag, so UnsubscribeOwner can never reach these.
	for _, sub := range []ports.Subscription{
		Subscribe(h, UserAuth, h.onUserAuth),
		Subscribe(h, ConnectionStatusChange, h.onConnectionStatusChange),
		Subscribe(h, SettingsUpdated, h.onSettingsUpdated),
	} {
		h.own[sub.ID] = struct{}{}
	}

	h.log.Info().Int("events", len(catalog)).Bool("trace", h.trace).Msg("Event hub initialized")
	return h
}

// Publish delivers payload to every current subscriber of topic before returning.
func Publish[T any](ctx context.Context, h *Hub, topic Topic[T], payload T) {
	if topic.name == "" {
		h.log.Warn().Msg("Dropped publish on an undeclared topic")
		return
	}
	h.traceBroadcast(topic.name, payload)
	h.bus.Publish(ctx, topic.name, payload)
}

// Subscribe registers fn for topic. The returned handle is the only way to
// remove this registration again.
func Subscribe[T any](h *Hub, topic Topic[T], fn Handler[T], opts ...ports.SubscribeOption) ports.Subscription {
	if topic.name == "" {
		h.log.Warn().Msg("Ignored subscribe on an undeclared topic")
		return ports.Subscription{}
	}
	return h.bus.Subscribe(topic.name, typed(topic, fn), opts...)
}

// SubscribeOnce registers fn for the next delivery of topic only.
func SubscribeOnce[T any](h *Hub, topic Topic[T], fn Handler[T], opts ...ports.SubscribeOption) ports.Subscription {
	return Subscribe(h, topic, fn, append(opts, ports.WithOnce())...)
}

// typed adapts a payload handler to the bus.
func typed[T any](topic Topic[T], fn Handler[T]) ports.EventHandler {
	return func(ctx context.Context, event ports.Event) error {
		payload, ok := event.Data.(T)
		if !ok {
			return fmt.Errorf("%w for %q: %T", ErrPayloadType, topic.name, event.Data)
		}
		return fn(ctx, payload)
	}
}

// Unsubscribe removes one registration. Unknown handles and the Hub's
// own subscriptions are ignored.
func (h *Hub) Unsubscribe(sub ports.Subscription) bool {
	if _, ok := h.own[sub.ID]; ok {
		h.log.Warn().Str("topic", sub.Topic).Msg("Refused to remove a hub subscription")
		return false
	}
	return h.bus.Unsubscribe(sub)
}

// UnsubscribeOwner removes every registration made with ports.WithOwner(owner).
func (h *Hub) UnsubscribeOwner(owner string) int {
	return h.bus.RemoveOwner(owner)
}

func (h *Hub) traceBroadcast(name string, payload any) {
	if !h.trace {
		return
	}
	if _, skip := h.traceExclude[name]; skip {
		return
	}
	h.log.Debug().
		Str("topic", name).
		Int("listeners", h.bus.ListenerCount(name)).
		Interface("payload", payload).
		Msg("Broadcasting event")
}

func (h *Hub) onUserAuth(ctx context.Context, auth domain.UserAuth) error {
	h.mu.Lock()
	h.session = auth
	h.mu.Unlock()
	return nil
}

func (h *Hub) onConnectionStatusChange(ctx context.Context, status domain.ConnectionStatusChange) error {
	h.mu.Lock()
	h.connectionStatus[status.Name] = status
	h.mu.Unlock()
	return nil
}

func (h *Hub) onSettingsUpdated(ctx context.Context, s domain.SettingsUpdated) error {
	h.mu.Lock()
	h.settings[s.Key] = s.Value
	h.mu.Unlock()
	return nil
}

// MyID is the user id of the current session, 0 before user_auth.
func (h *Hub) MyID() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session.UserID
}

// Session returns the payload of the latest user_auth event.
func (h *Hub) Session() domain.UserAuth {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// ConnectionStatus returns the last reported status of every transport.
func (h *Hub) ConnectionStatus() map[string]domain.ConnectionStatusChange {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.connectionStatus)
}

// ConnectionStatusOf returns the last reported status of one transport.
func (h *Hub) ConnectionStatusOf(name string) (domain.ConnectionStatusChange, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	status, ok := h.connectionStatus[name]
	return status, ok
}

// Setting returns the last value seen for key on settings_updated.
func (h *Hub) Setting(key string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.settings[key]
	return v, ok
}

// Settings returns every setting seen so far.
func (h *Hub) Settings() map[string]any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.settings)
}

// SetOverlayActive stores the flag and then publishes overlay_toggle with the same value.
// Like every publisher it belongs on the application's event loop: two goroutines
// calling it at once may deliver their toggles in the opposite order of the stores.
// No lock is held during delivery, so an overlay_toggle handler may call it again.
func (h *Hub) SetOverlayActive(ctx context.Context, active bool) {
	h.mu.Lock()
	h.overlayActive = active
	h.mu.Unlock()

	Publish(ctx, h, OverlayToggle, active)
}

// IsOverlayActive reports the last value passed to SetOverlayActive.
func (h *Hub) IsOverlayActive() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.overlayActive
}

// SetIdle marks the application as idle or active. No event is published.
func (h *Hub) SetIdle(idle bool) {
	h.mu.Lock()
	h.idle = idle
	h.mu.Unlock()
}

// IsIdle reports the last value passed to SetIdle.
func (h *Hub) IsIdle() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.idle
}

// Snapshot copies all derived state at once.
func (h *Hub) Snapshot() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return State{
		MyID:             h.session.UserID,
		Session:          h.session,
		ConnectionStatus: maps.Clone(h.connectionStatus),
		Settings:         maps.Clone(h.settings),
		OverlayActive:    h.overlayActive,
		Idle:             h.idle,
	}
}
