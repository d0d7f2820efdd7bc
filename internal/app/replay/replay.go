// Package replay drives a Hub from a YAML script of events.
//
// A script is a list of steps, each doing exactly one thing:
//
//	steps:
//	  - event: user_auth
//	    payload: {user_id: 42}
//	  - event: connection_status_change
//	    payload: {name: websocket, connected: false}
//	  - overlay: true
//	  - idle: true
package replay

import (
	"RootScope/internal/core/hub"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownEvent is returned for a step naming an event outside the catalog.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrInvalidStep is returned for a step that does not do exactly one thing.
	ErrInvalidStep = errors.New("invalid step")
)

// Payload holds a step's payload exactly as written in the script.
// It is decoded only once, into the event's own payload type, so
// integer map keys and other typed scalars survive.
type Payload []byte

// UnmarshalYAML keeps the raw YAML of the node.
func (p *Payload) UnmarshalYAML(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

// Step is one line of a script.
type Step struct {
	Event   string  `yaml:"event"`
	Payload Payload `yaml:"payload"`
	Overlay *bool   `yaml:"overlay"`
	Idle    *bool   `yaml:"idle"`
}

// Script is a validated list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load parses and validates a script.
func Load(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read script: %w", err)
	}

	var s Script
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("could not parse script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	actions := 0
	if s.Event != "" {
		actions++
		if _, ok := hub.Lookup(s.Event); !ok {
			return fmt.Errorf("%w %q", ErrUnknownEvent, s.Event)
		}
	}
	if s.Overlay != nil {
		actions++
	}
	if s.Idle != nil {
		actions++
	}
	if actions != 1 {
		return fmt.Errorf("%w: want exactly one of event, overlay, idle; got %d", ErrInvalidStep, actions)
	}
	if s.Event == "" && len(s.Payload) > 0 {
		return fmt.Errorf("%w: payload without event", ErrInvalidStep)
	}
	return nil
}

// Run executes the steps in order against h.
// It stops at the first payload that does not match its event.
func (s *Script) Run(ctx context.Context, h *hub.Hub) error {
	log := zerolog.Ctx(ctx)

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch {
		case step.Event != "":
			entry, ok := hub.Lookup(step.Event)
			if !ok {
				return fmt.Errorf("step %d: %w %q", i, ErrUnknownEvent, step.Event)
			}
			raw := []byte(step.Payload)
			if len(raw) == 0 {
				raw = []byte("null")
			}
			if err := entry.PublishYAML(ctx, h, raw); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			log.Debug().Int("step", i).Str("event", step.Event).Msg("Replayed event")
		case step.Overlay != nil:
			h.SetOverlayActive(ctx, *step.Overlay)
			log.Debug().Int("step", i).Bool("overlay", *step.Overlay).Msg("Replayed overlay toggle")
		case step.Idle != nil:
			h.SetIdle(*step.Idle)
			log.Debug().Int("step", i).Bool("idle", *step.Idle).Msg("Replayed idle flag")
		}
	}
	return nil
}
