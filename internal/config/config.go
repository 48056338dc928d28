// Package config handles configuration loading and persistence for the
// viewer: a TOML file holding the Chroma theme the UI palette derives from,
// optional per-role color overrides, and the state store toggle.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// DefaultSyntaxTheme is used when the config names no theme.
const DefaultSyntaxTheme = "github-dark"

// Config is the root configuration structure.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Theme ThemeConfig `toml:"theme"`
	Store StoreConfig `toml:"store"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme the UI palette is derived from.
	SyntaxTheme string `toml:"syntax_theme"`
}

// SyntaxThemeOrDefault returns the configured theme or the default if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return DefaultSyntaxTheme
	}
	return u.SyntaxTheme
}

// ThemeConfig holds optional "#rrggbb" overrides for individual UI roles.
// Empty values defer to the derived palette.
type ThemeConfig struct {
	SearchFg   string `toml:"search_fg"`
	SearchBg   string `toml:"search_bg"`
	SelectedFg string `toml:"selected_fg"`
	SelectedBg string `toml:"selected_bg"`
	StatusOk   string `toml:"status_ok"`
	StatusErr  string `toml:"status_err"`
}

// StoreConfig holds state-store settings.
type StoreConfig struct {
	// Disabled turns off position/search-term persistence entirely.
	Disabled bool `toml:"disabled"`
}

// Load reads configuration from path, applies environment overrides, and
// validates. A missing file is not an error: defaults are returned and
// written out best-effort so the user has something to edit.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	if _, err := os.Stat(path); err != nil {
		writeDefaults(path, cfg)
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to path.
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error
	for name, v := range map[string]string{
		"theme.search_fg":   c.Theme.SearchFg,
		"theme.search_bg":   c.Theme.SearchBg,
		"theme.selected_fg": c.Theme.SelectedFg,
		"theme.selected_bg": c.Theme.SelectedBg,
		"theme.status_ok":   c.Theme.StatusOk,
		"theme.status_err":  c.Theme.StatusErr,
	} {
		if v == "" {
			continue
		}
		if err := validateHex(v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q is invalid: %v", name, v, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateHex(v string) error {
	if len(v) != 7 || v[0] != '#' {
		return errors.New("want \"#rrggbb\"")
	}
	for _, c := range v[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return errors.New("want \"#rrggbb\"")
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"LINED_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// writeDefaults persists the default configuration. Best-effort: failures are
// logged, never fatal.
func writeDefaults(path string, cfg *Config) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Warn().Err(err).Msg("failed to create config dir")
		return
	}
	if err := Save(path, cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to write default config")
	}
}

// DefaultPath returns the path of the config file inside the data directory.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir returns the path to the lined data directory (~/.config/lined).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lined"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	return dir, nil
}
