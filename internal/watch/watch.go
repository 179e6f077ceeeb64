// Package watch reports changes to the shortcuts files of Steam users.
//
// Steam rewrites shortcuts.vdf in several steps when the library changes, so
// events are debounced per file: a callback fires once the file has been quiet
// for the debounce window.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/joshuapare/vdfkit/internal/format"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// Event names a shortcuts file that changed.
type Event struct {
	SteamDir string
	UserID   string
	Path     string
}

type role int

const (
	roleUserdata role = iota
	roleUser
	roleConfig
)

type watched struct {
	role     role
	steamDir string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Non-positive values select
// DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger routes watcher diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher follows <steamDir>/userdata/<user>/config for every given Steam
// installation, including users that appear after New returns.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger

	mu   sync.Mutex
	dirs map[string]watched
}

// New starts watching steamDirs. A Steam directory without a userdata
// directory is skipped with a debug log; New fails only when no directory at
// all could be watched or fsnotify itself cannot start.
func New(steamDirs []string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		fs:       fsw,
		debounce: DefaultDebounce,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		dirs:     make(map[string]watched),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, steamDir := range steamDirs {
		userdata := filepath.Join(steamDir, format.UserdataDir)
		if err := w.add(userdata, watched{role: roleUserdata, steamDir: steamDir}); err != nil {
			w.log.Debug("not watching steam dir", "steam_dir", steamDir, "err", err)
			continue
		}
		entries, err := os.ReadDir(userdata)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				w.addUser(filepath.Join(userdata, e.Name()), steamDir)
			}
		}
	}

	if len(w.Dirs()) == 0 {
		_ = fsw.Close()
		return nil, errors.New("watch: no userdata directory found")
	}
	return w, nil
}

// Dirs returns the watched directories in lexical order.
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.dirs))
	for d := range w.dirs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run delivers debounced events to fn until ctx is done or the watcher is
// closed. fn is called from the Run goroutine, one event at a time.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	done := make(chan struct{})
	deb := newDebouncer(w.debounce, done)
	defer func() {
		close(done)
		deb.stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if path, ok := w.handle(ev); ok {
				deb.touch(path)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)

		case f := <-deb.fire:
			if !deb.accept(f) {
				continue
			}
			configDir := filepath.Dir(f.path)
			w.mu.Lock()
			info := w.dirs[configDir]
			w.mu.Unlock()
			w.log.Debug("shortcuts file changed", "path", f.path)
			fn(Event{
				SteamDir: info.steamDir,
				UserID:   filepath.Base(filepath.Dir(configDir)),
				Path:     f.path,
			})
		}
	}
}

// handle tracks new user and config directories and reports whether ev
// touches a shortcuts file.
func (w *Watcher) handle(ev fsnotify.Event) (string, bool) {
	dir := filepath.Dir(ev.Name)
	w.mu.Lock()
	parent, known := w.dirs[dir]
	w.mu.Unlock()
	if !known {
		return "", false
	}

	switch parent.role {
	case roleUserdata:
		if ev.Has(fsnotify.Create) && isDir(ev.Name) {
			w.addUser(ev.Name, parent.steamDir)
		}
	case roleUser:
		if ev.Has(fsnotify.Create) && filepath.Base(ev.Name) == format.ConfigDir && isDir(ev.Name) {
			if err := w.add(ev.Name, watched{role: roleConfig, steamDir: parent.steamDir}); err != nil {
				w.log.Warn("cannot watch config dir", "path", ev.Name, "err", err)
			}
		}
	case roleConfig:
		if filepath.Base(ev.Name) == format.ShortcutsFileName &&
			ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
			return ev.Name, true
		}
	}
	return "", false
}

// addUser watches a user directory and, if it already has one, its config
// directory.
func (w *Watcher) addUser(userDir, steamDir string) {
	if err := w.add(userDir, watched{role: roleUser, steamDir: steamDir}); err != nil {
		w.log.Warn("cannot watch user dir", "path", userDir, "err", err)
		return
	}
	configDir := filepath.Join(userDir, format.ConfigDir)
	if !isDir(configDir) {
		return
	}
	if err := w.add(configDir, watched{role: roleConfig, steamDir: steamDir}); err != nil {
		w.log.Warn("cannot watch config dir", "path", configDir, "err", err)
	}
}

func (w *Watcher) add(dir string, info watched) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = info
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
