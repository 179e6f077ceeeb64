// Package config loads and saves the YAML configuration of the vdfkit tools.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	maxConfigFileBytes int64 = 1 << 20 // 1MB

	appDirName     = "vdfkit"
	configFileName = "config.yaml"
	catalogName    = "catalog.db"

	// EnvPath overrides DefaultPath when set.
	EnvPath = "VDFKIT_CONFIG"

	defaultDebounce = 500 * time.Millisecond
)

var userHomeDirFn = os.UserHomeDir
var userConfigDirFn = os.UserConfigDir

// Config is the vdfkit runtime configuration.
type Config struct {
	// SteamDirs lists Steam installation roots to search. Empty means the
	// platform defaults.
	SteamDirs []string `yaml:"steam_dirs" json:"steam_dirs"`
	// Catalog is the SQLite database written by `shortcutctl index`.
	Catalog string      `yaml:"catalog" json:"catalog"`
	Log     LogConfig   `yaml:"log" json:"log"`
	Watch   WatchConfig `yaml:"watch" json:"watch"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn or error
	Format string `yaml:"format" json:"format"` // text or json
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// WatchConfig tunes `shortcutctl watch`.
type WatchConfig struct {
	// Debounce is how long a shortcuts file must stay quiet before it is
	// parsed again. Steam rewrites the file in several steps.
	Debounce time.Duration `yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		SteamDirs: DefaultSteamDirs(),
		Catalog:   defaultCatalogPath(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{Debounce: defaultDebounce},
	}
}

// DefaultPath resolves the config file path: $VDFKIT_CONFIG when set,
// otherwise vdfkit/config.yaml under the user configuration directory.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	return filepath.Join(configBaseDir(), appDirName, configFileName)
}

// DefaultSteamDirs returns the places Steam installs itself on this platform.
func DefaultSteamDirs() []string {
	home, err := userHomeDirFn()
	if err != nil {
		home = ""
	}
	return steamDirsFor(runtime.GOOS, home)
}

func steamDirsFor(goos, home string) []string {
	switch goos {
	case "windows":
		return []string{`C:\Program Files (x86)\Steam`, `C:\Program Files\Steam`}
	case "darwin":
		if home == "" {
			return nil
		}
		return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
	default:
		if home == "" {
			return nil
		}
		return []string{
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		}
	}
}

// Load reads the config file at path. If the file does not exist, defaults
// are returned. Fields left out of the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, errors.New("config path required")
	}

	raw, err := readLimitedFile(path, maxConfigFileBytes)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if err := applyDefaultsAndValidate(&cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save validates cfg and writes it to path, replacing any existing file.
func Save(path string, cfg Config) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return cfg, errors.New("config path required")
	}
	if err := applyDefaultsAndValidate(&cfg); err != nil {
		return cfg, fmt.Errorf("save config: %w", err)
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return cfg, fmt.Errorf("save config: marshal: %w", err)
	}
	if err := atomicWrite(path, raw); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ExistingSteamDirs returns the configured Steam roots that exist, with
// symlinked duplicates (~/.steam/steam usually points at
// ~/.local/share/Steam) collapsed onto their first occurrence.
func (c Config) ExistingSteamDirs() []string {
	var out []string
	seen := make(map[string]struct{}, len(c.SteamDirs))
	for _, dir := range c.SteamDirs {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			continue
		}
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, dir)
	}
	return out
}

func applyDefaultsAndValidate(cfg *Config) error {
	defaults := DefaultConfig()

	cleaned := make([]string, 0, len(cfg.SteamDirs))
	for _, dir := range cfg.SteamDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" || slices.Contains(cleaned, dir) {
			continue
		}
		cleaned = append(cleaned, dir)
	}
	cfg.SteamDirs = cleaned
	if len(cfg.SteamDirs) == 0 {
		cfg.SteamDirs = defaults.SteamDirs
	}

	cfg.Catalog = strings.TrimSpace(cfg.Catalog)
	if cfg.Catalog == "" {
		cfg.Catalog = defaults.Catalog
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	switch cfg.Log.Level {
	case "":
		cfg.Log.Level = defaults.Log.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}

	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	switch cfg.Log.Format {
	case "":
		cfg.Log.Format = defaults.Log.Format
	case "text", "json":
	default:
		return fmt.Errorf("log.format: must be text or json, got %q", cfg.Log.Format)
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %s", cfg.Watch.Debounce)
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = defaults.Watch.Debounce
	}
	return nil
}

// atomicWrite writes data through a temp file and a rename in the same
// directory so readers never observe a partial file.
func atomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("save config: mkdir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".config.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("save config: create temp: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("save config: write: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		return fmt.Errorf("save config: sync: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("save config: close: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save config: rename: %w", err)
	}
	return nil
}

func readLimitedFile(path string, maxBytes int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	limited := io.LimitReader(file, maxBytes+1)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > maxBytes {
		return nil, fmt.Errorf("config file exceeds %d bytes", maxBytes)
	}
	return raw, nil
}

func configBaseDir() string {
	if dir, err := userConfigDirFn(); err == nil {
		return dir
	}
	if home, err := userHomeDirFn(); err == nil {
		return filepath.Join(home, ".config")
	}
	return os.TempDir()
}

func defaultCatalogPath() string {
	return filepath.Join(configBaseDir(), appDirName, catalogName)
}
