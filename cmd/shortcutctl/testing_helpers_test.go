package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/vdfkit/internal/config"
	"github.com/joshuapare/vdfkit/internal/testutil"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// resetFlags restores every global flag and points the config at steamDir
// and a catalog in a temporary directory.
func resetFlags(t *testing.T, steamDir string) {
	t.Helper()

	_ = teardown()
	t.Cleanup(func() { _ = teardown() })

	verbose, quiet, jsonOut = false, false, false
	cfgPath, logLevel = "", ""
	steamDirs = nil
	listFormat, listIDs, listUser = "text", false, ""
	parseFormat, parseArgv = "text", false
	indexDB = ""
	queryFormat, queryUser, querySteamID = "text", "", ""
	watchIndex, watchDebounce = false, 0
	configForce = false

	cfg = config.DefaultConfig()
	cfg.SteamDirs = []string{steamDir}
	cfg.Catalog = filepath.Join(t.TempDir(), "catalog.db")
}

// fixtureSteamDir lays out a Steam directory with the repository fixtures:
// user 100 has three shortcuts, 200 has one and 300 has a corrupt file.
func fixtureSteamDir(t *testing.T) string {
	t.Helper()
	return testutil.NewSteamDir(t, map[string][]byte{
		"100": testutil.ReadFixture(t, testutil.ShortcutsFixture),
		"200": testutil.ReadFixture(t, testutil.ShortcutsKeyCaseFixture),
		"300": []byte("\x00shortcuts\x00\x000\x00\x02appid\x00\x01\x02"),
	})
}
