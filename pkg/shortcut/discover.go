package shortcut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/joshuapare/vdfkit/internal/format"
	"github.com/joshuapare/vdfkit/internal/mmfile"
)

// Source is one shortcuts.vdf file found below a Steam installation.
type Source struct {
	UserID    string     // name of the userdata/<account> directory
	Path      string     // full path of the shortcuts file
	Shortcuts []Shortcut // nil when Err is set
	Err       error      // why the file contributed nothing, if it did not
}

// Scan parses the shortcuts file of every user below
// <steamDir>/userdata/<account>/config/shortcuts.vdf.
//
// Users are visited in lexical order of their directory names and the result
// keeps that order regardless of how many files are parsed concurrently. A
// user without a shortcuts file is skipped. A file that cannot be read or
// parsed is still reported, with Err set and no shortcuts, and does not affect
// the others. A missing or unreadable userdata directory yields no sources.
// The returned error is non-nil only when ctx is done.
func Scan(ctx context.Context, steamDir string, opts ...Option) ([]Source, error) {
	o := newOptions(opts)
	log := o.logger.With("steam_dir", steamDir)

	candidates := findCandidates(steamDir, log)
	sources := make([]Source, len(candidates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.workers)
	for i, c := range candidates {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Go(func() {
			defer func() { <-sem }()
			sources[i] = loadSource(c)
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, src := range sources {
		if src.Err != nil {
			log.Warn("skipping shortcuts file", "user", src.UserID, "path", src.Path, "err", src.Err)
			continue
		}
		log.Debug("parsed shortcuts file", "user", src.UserID, "path", src.Path, "count", len(src.Shortcuts))
	}
	return sources, nil
}

// Discover returns the shortcuts of every user below steamDir, ordered by
// user directory name and then by position in each file. Files that cannot
// be read or parsed contribute nothing; Discover itself never fails.
func Discover(steamDir string, opts ...Option) []Shortcut {
	sources, err := Scan(context.Background(), steamDir, opts...)
	if err != nil {
		return nil
	}
	return Flatten(sources)
}

// Flatten concatenates the shortcuts of every source without an error.
func Flatten(sources []Source) []Shortcut {
	var out []Shortcut
	for _, src := range sources {
		if src.Err == nil {
			out = append(out, src.Shortcuts...)
		}
	}
	return out
}

// ParseFile reads and parses a single shortcuts.vdf file.
func ParseFile(path string) ([]Shortcut, error) {
	data, err := mmfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shortcut: read %s: %w", path, err)
	}
	return Parse(data)
}

type candidate struct {
	user string
	path string
}

func findCandidates(steamDir string, log *slog.Logger) []candidate {
	userdata := filepath.Join(steamDir, format.UserdataDir)

	// os.ReadDir sorts by file name, which fixes the order across users.
	entries, err := os.ReadDir(userdata)
	if err != nil {
		log.Debug("no userdata directory", "path", userdata, "err", err)
		return nil
	}

	var out []candidate
	for _, entry := range entries {
		path := filepath.Join(userdata, entry.Name(), format.ConfigDir, format.ShortcutsFileName)
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Debug("cannot stat shortcuts file", "path", path, "err", err)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		out = append(out, candidate{user: entry.Name(), path: path})
	}
	return out
}

func loadSource(c candidate) Source {
	src := Source{UserID: c.user, Path: c.path}
	shortcuts, err := ParseFile(c.path)
	if err != nil {
		src.Err = err
		return src
	}
	src.Shortcuts = shortcuts
	return src
}
