package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/internal/catalog"
	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

func TestIndexThenQuery(t *testing.T) {
	ctx := context.Background()
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)

	out, err := captureOutput(t, func() error { return runIndex(ctx) })
	require.NoError(t, err)
	require.Contains(t, out, "Indexed 4 shortcuts from 2 files")
	require.Contains(t, out, "Skipped 1 unreadable files")

	out, err = captureOutput(t, func() error { return runQuery(ctx) })
	require.NoError(t, err)
	require.Contains(t, out, "Anki")
	require.Contains(t, out, "Second Life")
	require.Contains(t, out, "Total: 4 shortcuts")

	queryUser = "200"
	queryFormat = "json"
	out, err = captureOutput(t, func() error { return runQuery(ctx) })
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "Second Life", entries[0].AppName)
}

func TestQueryBySteamID(t *testing.T) {
	ctx := context.Background()
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)

	_, err := captureOutput(t, func() error { return runIndex(ctx) })
	require.NoError(t, err)

	id := shortcut.SteamID(`"libreoffice"`, "LibreOffice Calc")
	querySteamID = fmt.Sprintf("0x%x", id)
	queryFormat = "json"
	out, err := captureOutput(t, func() error { return runQuery(ctx) })
	require.NoError(t, err)

	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, id, entries[0].SteamID)

	queryUser = "200"
	out, err = captureOutput(t, func() error { return runQuery(ctx) })
	require.NoError(t, err)
	require.JSONEq(t, "[]", out)

	querySteamID = "not-a-number"
	_, err = captureOutput(t, func() error { return runQuery(ctx) })
	require.ErrorContains(t, err, "invalid --steam-id")
}

func TestIndexJSONAndDBFlag(t *testing.T) {
	ctx := context.Background()
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)
	jsonOut = true
	indexDB = t.TempDir() + "/override.db"

	out, err := captureOutput(t, func() error { return runIndex(ctx) })
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, indexDB, got["db"])
	require.EqualValues(t, 4, got["shortcuts"])
	require.EqualValues(t, 1, got["skipped"])
}

func TestIndexRemovesDeletedUsers(t *testing.T) {
	ctx := context.Background()
	steam := fixtureSteamDir(t)
	resetFlags(t, steam)

	_, err := captureOutput(t, func() error { return runIndex(ctx) })
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(steam, "userdata", "200")))
	out, err := captureOutput(t, func() error { return runIndex(ctx) })
	require.NoError(t, err)
	require.Contains(t, out, "Indexed 3 shortcuts from 1 files")
	require.Contains(t, out, "Removed 1 shortcuts of files that no longer exist")

	queryUser = "200"
	queryFormat = "json"
	out, err = captureOutput(t, func() error { return runQuery(ctx) })
	require.NoError(t, err)
	require.JSONEq(t, "[]", out)
}
