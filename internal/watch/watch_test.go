package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/internal/testutil"
)

const testDebounce = 150 * time.Millisecond

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) add(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func startWatcher(t *testing.T, steamDirs ...string) (*Watcher, *recorder) {
	t.Helper()
	w, err := New(steamDirs, WithDebounce(testDebounce))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, rec.add) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
		_ = w.Close()
	})
	return w, rec
}

func TestNewWatchesExistingUsers(t *testing.T) {
	steam := testutil.NewSteamDir(t, map[string][]byte{"100": nil, "200": []byte("x")})
	w, err := New([]string{steam, filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	defer w.Close()

	userdata := filepath.Join(steam, "userdata")
	require.Equal(t, []string{
		userdata,
		filepath.Join(userdata, "100"),
		filepath.Join(userdata, "100", "config"),
		filepath.Join(userdata, "200"),
		filepath.Join(userdata, "200", "config"),
	}, w.Dirs())
}

func TestNewWithoutUserdata(t *testing.T) {
	_, err := New([]string{t.TempDir()})
	require.Error(t, err)
}

func TestRunDebouncesWrites(t *testing.T) {
	steam := testutil.NewSteamDir(t, map[string][]byte{"100": []byte("a")})
	_, rec := startWatcher(t, steam)

	for _, body := range []string{"b", "c", "d"} {
		testutil.WriteShortcuts(t, steam, "100", []byte(body))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(3 * testDebounce)

	events := rec.snapshot()
	require.Len(t, events, 1)
	require.Equal(t, Event{
		SteamDir: steam,
		UserID:   "100",
		Path:     testutil.ShortcutsPath(steam, "100"),
	}, events[0])
}

func TestRunIgnoresOtherFiles(t *testing.T) {
	steam := testutil.NewSteamDir(t, map[string][]byte{"100": nil})
	_, rec := startWatcher(t, steam)

	other := filepath.Join(steam, "userdata", "100", "config", "localconfig.vdf")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	time.Sleep(4 * testDebounce)
	require.Empty(t, rec.snapshot())

	testutil.WriteShortcuts(t, steam, "100", []byte("x"))
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestRunPicksUpNewUsers(t *testing.T) {
	steam := testutil.NewSteamDir(t, map[string][]byte{"100": nil})
	w, rec := startWatcher(t, steam)

	userDir := filepath.Join(steam, "userdata", "999")
	require.NoError(t, os.Mkdir(userDir, 0o755))
	require.Eventually(t, func() bool {
		return slices.Contains(w.Dirs(), userDir)
	}, 5*time.Second, 20*time.Millisecond)

	configDir := filepath.Join(userDir, "config")
	require.NoError(t, os.Mkdir(configDir, 0o755))
	require.Eventually(t, func() bool {
		return slices.Contains(w.Dirs(), configDir)
	}, 5*time.Second, 20*time.Millisecond)

	testutil.WriteShortcuts(t, steam, "999", []byte("x"))
	require.Eventually(t, func() bool {
		events := rec.snapshot()
		return len(events) == 1 && events[0].UserID == "999"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWithDebounceIgnoresNonPositive(t *testing.T) {
	w := &Watcher{debounce: DefaultDebounce}
	WithDebounce(0)(w)
	WithDebounce(-time.Second)(w)
	require.Equal(t, DefaultDebounce, w.debounce)
	WithDebounce(time.Second)(w)
	require.Equal(t, time.Second, w.debounce)
}

func TestRunReturnsWhenClosedWithPendingChange(t *testing.T) {
	steam := testutil.NewSteamDir(t, map[string][]byte{"100": []byte("a")})
	w, err := New([]string{steam}, WithDebounce(time.Hour))
	require.NoError(t, err)

	rec := &recorder{}
	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), rec.add) }()

	testutil.WriteShortcuts(t, steam, "100", []byte("b"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, w.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
	require.Empty(t, rec.snapshot())
}
