package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/substance/internal/assetdb"
	"github.com/vmunix/substance/internal/config"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/internal/importer"
	"github.com/vmunix/substance/internal/migrations"
	"github.com/vmunix/substance/internal/server"
	_ "modernc.org/sqlite"
)

// project is an opened project: its config, catalog, and asset database.
type project struct {
	cfg    *config.Config
	db     *sql.DB
	assets *assetdb.DB
	logger *slog.Logger
}

func (p *project) Close() error {
	return p.db.Close()
}

// importerConfig maps the loaded configuration onto the importer's.
func (p *project) importerConfig() importer.Config {
	return importer.Config{
		ProjectRoot:    p.cfg.Project.Root,
		ModelsPath:     p.cfg.ModelsPath(),
		GeometryExt:    p.cfg.Import.GeometryExt,
		MaterialDefExt: p.cfg.Import.MaterialDefExt,
		Shading: importer.Shading{
			SmoothnessRemapMax: p.cfg.Shading.SmoothnessRemapMax,
			NormalScale:        p.cfg.Shading.NormalScale,
			EmissiveIntensity:  p.cfg.Shading.EmissiveIntensity,
			EmissiveColor:      colorFrom(p.cfg.Shading.EmissiveColor),
		},
	}
}

// runnerConfig maps the loaded configuration onto the import runner's.
func (p *project) runnerConfig() server.Config {
	return server.Config{
		EventBuffer:  p.cfg.Events.Buffer,
		RetainEvents: p.cfg.EventRetention(),
	}
}

// colorFrom converts an RGBA config value. Validation guarantees four
// components.
func colorFrom(c []float64) host.Color {
	if len(c) != 4 {
		return host.Red
	}
	return host.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig loads the --config file, or the discovered one.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return nil, fmt.Errorf("%w (run 'substance init' to create one)", err)
		}
	}
	return config.Load(path)
}

// openProject loads the config and opens the catalog, applying the schema.
// Logs go to logOut.
func openProject(logOut io.Writer, picker assetdb.Picker) (*project, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	return &project{
		cfg:    cfg,
		db:     db,
		assets: assetdb.New(cfg.Project.Root, db, picker, logger.With("component", "assetdb")),
		logger: logger,
	}, nil
}

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
