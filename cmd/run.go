package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxcolbe/studentsky-svet/internal/app"
	"github.com/maxcolbe/studentsky-svet/internal/config"
	"github.com/maxcolbe/studentsky-svet/internal/content"
	"github.com/maxcolbe/studentsky-svet/internal/progress"
	"github.com/maxcolbe/studentsky-svet/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.ContentDir)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so warnings go to a file.
	logFile, err := os.OpenFile(cfg.ResolveLogPath(dbPath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	st, gw, err := openProgress(dbPath, logger, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	defer gw.Close()

	return app.Run(app.Options{
		Catalog:  catalog,
		Progress: gw,
	})
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SVET_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	return cfg.ResolveDBPath(p)
}

// openProgress opens the database at dbPath and starts a progress gateway
// over it. Callers close the gateway before the store.
func openProgress(dbPath string, logger *log.Logger, cfg config.Config) (*store.Store, *progress.Gateway, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, progress.NewGateway(st.KV(), logger, cfg.Gateway()), nil
}

// openCLI is openProgress for subcommands, which log to stderr.
func openCLI(cmd *cobra.Command) (*store.Store, *progress.Gateway, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return openProgress(dbPath, cliLogger(cmd.ErrOrStderr()), cfg)
}

func cliLogger(w io.Writer) *log.Logger {
	return log.New(w, "svet: ", 0)
}

// loadCatalog loads content from dir, or the embedded set when dir is empty.
func loadCatalog(dir string) (*content.Catalog, error) {
	if dir == "" {
		c, err := content.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load embedded content: %w", err)
		}
		return c, nil
	}
	c, err := content.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}
	return c, nil
}
