// main is the entry point of the student-records tool.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env overrides, defaults)
//  2. Initialise the logger
//  3. Construct the snapshot backend (JSON file or SQLite)
//  4. Load any previously saved records into a fresh store
//  5. Run the interactive shell until the user exits
//
// RUNNING THE TOOL:
//
//	go run ./cmd/student-records
//
// or with an explicit config:
//
//	go run ./cmd/student-records --config=config/local.yaml
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-records
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/shell"
	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-records/internal/storage/sqlite"
	"github.com/aanand-mishra/student-records/internal/store"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad returns defaults when no config file is named; if this
	// returns, the config is usable.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21). The handler
	// set here becomes the process default, so the storage and shell
	// packages log through it without carrying a logger around.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-records",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Storage.Backend),
		slog.String("path", cfg.Storage.Path),
	)

	// ── 3. Initialise the Snapshot Backend ────────────────────────────────
	// We keep the result as the storage.Snapshot INTERFACE, not the
	// concrete type — the rest of the program only knows the interface,
	// so adding another backend touches this switch and nothing else.
	var snap storage.Snapshot
	switch cfg.Storage.Backend {
	case "sqlite":
		db, err := sqlite.New(cfg.Storage.Path)
		if err != nil {
			log.Error("failed to open sqlite snapshot",
				slog.String("path", cfg.Storage.Path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		snap = db
	case "json", "":
		snap = jsonfile.New(cfg.Storage.Path)
	default:
		log.Error("unknown storage backend",
			slog.String("backend", cfg.Storage.Backend))
		os.Exit(1)
	}

	// ── 4. Load the Saved Records ─────────────────────────────────────────
	// The JSON backend never errors here (missing or corrupt files load
	// as empty); SQLite can, e.g. when the file is not a database.
	records, err := snap.Load()
	if err != nil {
		log.Error("failed to load records",
			slog.String("path", cfg.Storage.Path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	st := store.NewFrom(records)
	log.Info("records loaded", slog.Int("count", st.Len()))

	// ── 5. Run the Shell ──────────────────────────────────────────────────
	// Run blocks until the user exits. It only returns an error when a
	// save the user explicitly asked for on exit could not be written —
	// that is worth a non-zero exit code, the rest already got reported
	// interactively.
	sh := shell.New(st, snap, cfg.Storage.Path, os.Stdin, os.Stdout)
	if err := sh.Run(); err != nil {
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		// Logs go to stderr so they never interleave with the menu and
		// tables the shell prints on stdout.
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
