package testutil

// Fixture paths relative to the repository root.
const (
	// ShortcutsFixture holds three entries written by a current Steam client.
	ShortcutsFixture = "testdata/shortcuts.vdf"

	// ShortcutsKeyCaseFixture holds one entry whose key names use a
	// different capitalisation (APPID, appname, exe, startdir).
	ShortcutsKeyCaseFixture = "testdata/shortcuts_different_key_case.vdf"
)
