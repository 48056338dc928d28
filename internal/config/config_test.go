package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.UI.SyntaxThemeOrDefault(); got != DefaultSyntaxTheme {
		t.Errorf("theme = %q, want %q", got, DefaultSyntaxTheme)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config was not written: %v", err)
	}
}

func TestLoadParsesConfig(t *testing.T) {
	path := writeConfigFile(t, `
[ui]
syntax_theme = "dracula"

[theme]
search_bg = "#ffcc00"

[store]
disabled = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SyntaxTheme != "dracula" {
		t.Errorf("syntax_theme = %q, want dracula", cfg.UI.SyntaxTheme)
	}
	if cfg.Theme.SearchBg != "#ffcc00" {
		t.Errorf("search_bg = %q, want #ffcc00", cfg.Theme.SearchBg)
	}
	if !cfg.Store.Disabled {
		t.Error("store.disabled = false, want true")
	}
}

func TestLoadRejectsBadHex(t *testing.T) {
	path := writeConfigFile(t, `
[theme]
status_ok = "green"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a non-hex color")
	} else if !strings.Contains(err.Error(), "status_ok") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestEnvOverridesTheme(t *testing.T) {
	t.Setenv("LINED_THEME", "monokai")
	path := writeConfigFile(t, `
[ui]
syntax_theme = "dracula"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SyntaxTheme != "monokai" {
		t.Errorf("syntax_theme = %q, want env override monokai", cfg.UI.SyntaxTheme)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{}
	cfg.UI.SyntaxTheme = "nord"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.SyntaxTheme != "nord" {
		t.Errorf("syntax_theme = %q, want nord", loaded.UI.SyntaxTheme)
	}
}

func TestValidateHexTable(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"#000000", true},
		{"#AABBCC", true},
		{"#abcdef", true},
		{"abcdef", false},
		{"#abcde", false},
		{"#gghhii", false},
		{"#1234567", false},
	}
	for _, tt := range tests {
		err := validateHex(tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("validateHex(%q) err=%v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}
