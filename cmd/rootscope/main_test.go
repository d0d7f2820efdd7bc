package main

import (
	"RootScope/internal/core/hub"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestCatalogCmd(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "Text",
			args: []string{"catalog"},
			want: []string{"EVENT", "peer_changed", "domain.PeerID", "overlay_toggle", "hub.Void"},
		},
		{
			name: "YAML",
			args: []string{"catalog", "--format", "yaml"},
			want: []string{"name: user_auth", "payload: domain.UserAuth"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCatalogCmd_TextListsEveryEvent(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	for _, e := range hub.Catalog() {
		assert.Contains(t, out, e.Name())
		assert.Contains(t, out, e.PayloadType().String())
	}
}

func TestCatalogCmd_BadFormat(t *testing.T) {
	_, err := run(t, "catalog", "--format", "xml")
	require.Error(t, err)
}

func TestReplayCmd(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "session.yaml")
	script := `
steps:
  - event: user_auth
    payload: {user_id: 42}
  - event: connection_status_change
    payload: {name: websocket, connected: true}
  - overlay: true
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	out, err := run(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "my_id: 42")
	assert.Contains(t, out, "websocket:")
	assert.Contains(t, out, "overlay_active: true")
}

func TestReplayCmd_MissingFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	_, err := run(t, "replay", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
