package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

func TestListCommand(t *testing.T) {
	steam := fixtureSteamDir(t)

	tests := []struct {
		name        string
		setup       func()
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "text",
			wantContain: []string{"USER", "Anki", "LibreOffice Calc", "Second Life", "Total: 4 shortcuts"},
			wantMissing: []string{"STEAMID"},
		},
		{
			name:        "with ids",
			setup:       func() { listIDs = true },
			wantContain: []string{"STEAMID", "Anki"},
		},
		{
			name:        "single user",
			setup:       func() { listUser = "200" },
			wantContain: []string{"Second Life", "Total: 1 shortcuts"},
			wantMissing: []string{"Anki"},
		},
		{
			name:        "quiet hides total",
			setup:       func() { quiet = true },
			wantContain: []string{"Anki"},
			wantMissing: []string{"Total:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, steam)
			if tt.setup != nil {
				tt.setup()
			}
			out, err := captureOutput(t, func() error { return runList(context.Background()) })
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				require.Contains(t, out, want)
			}
			for _, dont := range tt.wantMissing {
				require.NotContains(t, out, dont)
			}
		})
	}
}

func TestListJSON(t *testing.T) {
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)
	jsonOut = true
	listIDs = true

	out, err := captureOutput(t, func() error { return runList(context.Background()) })
	require.NoError(t, err)

	var rows []listedShortcut
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)
	require.Equal(t, "100", rows[0].UserID)
	require.Equal(t, "Anki", rows[0].AppName)
	require.Equal(t, rows[0].Shortcut.SteamID(), rows[0].SteamID)
	require.Equal(t, "200", rows[3].UserID)
	require.Equal(t, uint32(2931025216), rows[3].AppID)
}

func TestListYAML(t *testing.T) {
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)
	listFormat = "yaml"

	out, err := captureOutput(t, func() error { return runList(context.Background()) })
	require.NoError(t, err)

	var rows []struct {
		shortcut.Shortcut `yaml:",inline"`
		UserID            string `yaml:"user_id"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)
	require.Equal(t, "foo.sh", rows[2].AppName)
	require.Equal(t, `"/usr/local/bin/"`, rows[2].StartDir)
}

func TestListErrors(t *testing.T) {
	resetFlags(t, "/nonexistent/steam")
	_, err := captureOutput(t, func() error { return runList(context.Background()) })
	require.ErrorContains(t, err, "no Steam installation found")

	resetFlags(t, fixtureSteamDir(t))
	listFormat = "xml"
	_, err = captureOutput(t, func() error { return runList(context.Background()) })
	require.ErrorContains(t, err, "unknown output format")
}
