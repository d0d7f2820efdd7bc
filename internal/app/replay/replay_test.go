package replay

import (
	"RootScope/internal/adapters/eventbus"
	"RootScope/internal/core/domain"
	"RootScope/internal/core/hub"
	"RootScope/internal/core/ports"
	"RootScope/internal/shared/config"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *hub.Hub {
	nopLogger := zerolog.Nop()
	return hub.New(eventbus.NewInMemoryEventBus(&nopLogger), config.HubConfig{}, &nopLogger)
}

const sessionScript = `
steps:
  - event: user_auth
    payload: {user_id: 42, dc_id: 2}
  - event: connection_status_change
    payload: {name: websocket, connected: false}
  - event: connection_status_change
    payload: {name: long-poll, connected: true}
  - event: messages_pending
  - overlay: true
  - idle: true
`

func TestScript_Run(t *testing.T) {
	ctx := context.Background()
	h := newTestHub()

	pending := 0
	hub.Subscribe(h, hub.MessagesPending, func(ctx context.Context, _ hub.Void) error {
		pending++
		return nil
	})
	var overlay []bool
	hub.Subscribe(h, hub.OverlayToggle, func(ctx context.Context, active bool) error {
		overlay = append(overlay, active)
		return nil
	})

	script, err := Load(strings.NewReader(sessionScript))
	require.NoError(t, err)
	require.Len(t, script.Steps, 6)

	require.NoError(t, script.Run(ctx, h))

	state := h.Snapshot()
	assert.Equal(t, int64(42), state.MyID)
	assert.Equal(t, 2, state.Session.DCID)
	assert.Equal(t, map[string]domain.ConnectionStatusChange{
		"websocket": {Name: "websocket", Connected: false},
		"long-poll": {Name: "long-poll", Connected: true},
	}, state.ConnectionStatus)
	assert.True(t, state.OverlayActive)
	assert.True(t, state.Idle)
	assert.Equal(t, 1, pending)
	assert.Equal(t, []bool{true}, overlay)
}

func TestLoad_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		script  string
		wantErr error
	}{
		{
			name:    "Unknown event",
			script:  "steps:\n  - event: peer_exploded\n",
			wantErr: ErrUnknownEvent,
		},
		{
			name:    "Two actions in one step",
			script:  "steps:\n  - event: im_mount\n    overlay: true\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "Empty step",
			script:  "steps:\n  - {}\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "Payload without event",
			script:  "steps:\n  - idle: true\n    payload: 1\n",
			wantErr: ErrInvalidStep,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.script))
			require.ErrorIs(t, err, tc.wantErr)
			t.Logf("Got expected load error: %v", err)
		})
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("steps:\n  - evnt: im_mount\n"))
	require.Error(t, err)
}

func TestScript_Run_StopsOnBadPayload(t *testing.T) {
	h := newTestHub()

	script, err := Load(strings.NewReader(`
steps:
  - event: peer_changed
    payload: {not: a-peer-id}
  - idle: true
`))
	require.NoError(t, err)

	err = script.Run(context.Background(), h)
	require.ErrorIs(t, err, hub.ErrPayloadDecode)
	assert.False(t, h.IsIdle(), "steps after the failure must not run")
}

func TestScript_Run_CancelledContext(t *testing.T) {
	h := newTestHub()
	script, err := Load(strings.NewReader("steps:\n  - idle: true\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, script.Run(ctx, h), context.Canceled)
	assert.False(t, h.IsIdle())
}

func TestScript_Run_IntegerKeyedPayloads(t *testing.T) {
	ctx := context.Background()
	h := newTestHub()

	var deleted domain.HistoryDelete
	hub.Subscribe(h, hub.HistoryDelete, func(ctx context.Context, p domain.HistoryDelete) error {
		deleted = p
		return nil
	})
	var appended domain.NewMessages
	hub.Subscribe(h, hub.HistoryMultiappend, func(ctx context.Context, p domain.NewMessages) error {
		appended = p
		return nil
	})

	script, err := Load(strings.NewReader(`
steps:
  - event: history_delete
    payload: {peer_id: 1, msgs: {5: true}}
  - event: history_multiappend
    payload: {1: [2, 3], -5: [4]}
`))
	require.NoError(t, err)
	require.NoError(t, script.Run(ctx, h))

	assert.Equal(t, domain.PeerID(1), deleted.PeerID)
	assert.Equal(t, map[domain.MessageID]bool{5: true}, deleted.MIDs)
	assert.Equal(t, domain.NewMessages{1: {2, 3}, -5: {4}}, appended)
}

func TestScript_Run_EveryEvent(t *testing.T) {
	ctx := context.Background()
	nopLogger := zerolog.Nop()
	bus := eventbus.NewInMemoryEventBus(&nopLogger)
	h := hub.New(bus, config.HubConfig{}, &nopLogger)

	f, err := os.Open("testdata/every_event.yaml")
	require.NoError(t, err)
	defer f.Close()

	script, err := Load(f)
	require.NoError(t, err)

	delivered := make(map[string]int)
	for _, e := range hub.Catalog() {
		bus.Subscribe(e.Name(), func(ctx context.Context, event ports.Event) error {
			delivered[event.Topic]++
			return nil
		})
	}

	require.NoError(t, script.Run(ctx, h))

	require.Len(t, script.Steps, len(hub.Catalog()))
	for _, e := range hub.Catalog() {
		assert.Equal(t, 1, delivered[e.Name()], "deliveries of %q", e.Name())
	}
}
