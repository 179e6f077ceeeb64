package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/vdfkit/internal/format"
)

// ReadFixture returns the contents of a fixture under testdata/.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	data := testutil.ReadFixture(t, testutil.ShortcutsFixture)
func ReadFixture(t *testing.T, relativePath string) []byte {
	t.Helper()

	data, err := os.ReadFile(resolveTestPath(t, relativePath))
	if err != nil {
		t.Fatalf("read fixture %s: %v", relativePath, err)
	}
	return data
}

// NewSteamDir lays out a Steam installation in a temporary directory with one
// userdata/<user>/config/shortcuts.vdf per map entry. A nil value creates the
// user directory without a shortcuts file. Returns the Steam root.
func NewSteamDir(t *testing.T, users map[string][]byte) string {
	t.Helper()

	root := t.TempDir()
	for user, data := range users {
		configDir := filepath.Join(root, format.UserdataDir, user, format.ConfigDir)
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", configDir, err)
		}
		if data == nil {
			continue
		}
		WriteShortcuts(t, root, user, data)
	}
	return root
}

// WriteShortcuts (re)writes the shortcuts file of user below steamDir and
// returns its path.
func WriteShortcuts(t *testing.T, steamDir, user string, data []byte) string {
	t.Helper()

	path := ShortcutsPath(steamDir, user)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ShortcutsPath returns where Steam keeps the shortcuts file of user.
func ShortcutsPath(steamDir, user string) string {
	return filepath.Join(steamDir, format.UserdataDir, user, format.ConfigDir, format.ShortcutsFileName)
}

// resolveTestPath resolves a path relative to the repository root from the
// package directory the test runs in.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../../" + relativePath,       // From package two levels deep (e.g., internal/reader/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}
