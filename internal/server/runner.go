// Package server runs an import together with the components that watch it.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/importer"
	"golang.org/x/sync/errgroup"
)

// ModelImporter runs one model import.
type ModelImporter interface {
	Import(ctx context.Context, geometryPath string) (*importer.ImportResult, error)
}

// Config for the runner.
type Config struct {
	// EventBuffer is the subscriber channel size. Zero means 64.
	EventBuffer int
	// RetainEvents prunes logged events older than this before a run.
	// Zero keeps everything.
	RetainEvents time.Duration
}

// Runner owns the event bus for import runs.
type Runner struct {
	log    *events.EventLog
	bus    *events.Bus
	config Config
	logger *slog.Logger
}

// NewRunner creates a new runner whose events are persisted to db.
func NewRunner(db *sql.DB, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 64
	}
	eventLog := events.NewEventLog(db)
	return &Runner{
		log:    eventLog,
		bus:    events.NewBus(eventLog, logger.With("component", "bus")),
		config: cfg,
		logger: logger,
	}
}

// Bus returns the bus importers should publish to.
func (r *Runner) Bus() *events.Bus {
	return r.bus
}

// Run imports geometryPath with imp while handle receives the events the
// import publishes, in order. Events are persisted to the log as they are
// published; handle misses any published while it is more than EventBuffer
// events behind. Run returns once the import has finished and every
// delivered event has been handled. handle may be nil.
func (r *Runner) Run(ctx context.Context, imp ModelImporter, geometryPath string, handle func(events.Event)) (*importer.ImportResult, error) {
	if r.config.RetainEvents > 0 {
		n, err := r.log.Prune(r.config.RetainEvents)
		if err != nil {
			r.logger.Warn("prune events failed", "error", err)
		} else if n > 0 {
			r.logger.Debug("pruned events", "count", n)
		}
	}

	ch := r.bus.SubscribeAll(r.config.EventBuffer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for e := range ch {
			if handle != nil {
				handle(e)
			}
		}
		return nil
	})

	var result *importer.ImportResult
	g.Go(func() error {
		defer r.bus.Unsubscribe(ch)
		var err error
		result, err = imp.Import(ctx, geometryPath)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Close shuts down the bus.
func (r *Runner) Close() error {
	return r.bus.Close()
}
