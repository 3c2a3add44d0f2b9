package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/app"
	"github.com/abhisek/hanzi/internal/logging"
	"github.com/abhisek/hanzi/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// Logs go to a file while the TUI owns the terminal.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := logging.New(logFile, cfg.Log, false)

	entries, err := loadEntries(cmd, cfg)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prefs := st.PreferenceRepo()
	kidMode, err := prefs.KidMode(ctx)
	if err != nil {
		return fmt.Errorf("read kid mode: %w", err)
	}

	d, err := newDeck(entries, cfg, log)
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	wsPath, _ := cmd.Flags().GetString("worksheet-out")

	log.Info("starting tui", "entries", len(entries), "db", dbPath, "kid_mode", kidMode,
		"session_id", d.Session().ID())

	return app.Run(ctx, app.Options{
		Deck:          d,
		Prefs:         prefs,
		KidMode:       kidMode,
		WorksheetPath: wsPath,
		Logger:        log,
		SkipSplash:    noSplash,
	})
}
