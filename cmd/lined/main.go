package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/lined/internal/config"
	"github.com/xonecas/lined/internal/store"
	"github.com/xonecas/lined/internal/tui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	path := os.Args[1]

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lined: %v\n", err)
		os.Exit(1)
	}

	// Log to a file: stderr belongs to the terminal UI.
	setupLogging(dataDir)

	cfgPath := filepath.Join(dataDir, "config.toml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn().Err(err).Msg("config load failed, using defaults")
		cfg = &config.Config{}
	}

	var st *store.Store
	if !cfg.Store.Disabled {
		st, err = store.Open(filepath.Join(dataDir, "state.db"))
		if err != nil {
			log.Warn().Err(err).Msg("state store unavailable")
			st = nil
		}
	}
	defer st.Close()

	m, err := tui.New(path, cfg, cfgPath, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lined: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lined: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes the global logger to lined.log in the data dir.
// Falls back to discarding logs if the file cannot be opened.
func setupLogging(dataDir string) {
	f, err := os.OpenFile(filepath.Join(dataDir, "lined.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
}
