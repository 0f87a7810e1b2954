package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"indgo_crew/internal/database"
	"indgo_crew/internal/fleet"
	"indgo_crew/internal/routesheet"
	"indgo_crew/internal/scheduler"
	"indgo_crew/internal/tasks"
)

// Daemon keeps the local fleet and route mirror up to date
type Daemon struct {
	ctx        context.Context
	cancel     context.CancelFunc
	scheduler  *scheduler.Scheduler
	database   *database.DB
	definition fleet.Definition
	done       chan struct{}
}

// Config holds daemon configuration
type Config struct {
	DBPath        string           // Path to SQLite database
	Fleet         fleet.Definition // Ladder, seed catalog and deduction families
	RouteSheetURL string           // Published route sheet CSV; empty disables syncing
	SyncInterval  time.Duration    // Time between route sheet syncs
	FetchTimeout  time.Duration    // Per-attempt HTTP timeout
	MaxRetries    int              // Extra fetch attempts per sync
}

// New opens the database, seeds the catalog mirror and prepares the scheduled tasks
func New(cfg Config) (*Daemon, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DBPath is required")
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	aircraft := db.AircraftRepository()
	if _, err := database.SeedCatalog(aircraft, cfg.Fleet); err != nil {
		db.Close()
		return nil, err
	}

	def, err := database.MirroredDefinition(aircraft, cfg.Fleet)
	if err != nil {
		db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := scheduler.New(ctx)

	if cfg.RouteSheetURL != "" {
		interval := time.Hour
		if cfg.SyncInterval > 0 {
			interval = cfg.SyncInterval
		}
		timeout := 10 * time.Second
		if cfg.FetchTimeout > 0 {
			timeout = cfg.FetchTimeout
		}

		client := routesheet.NewClient(cfg.RouteSheetURL, timeout, cfg.MaxRetries)
		sched.AddTask(tasks.NewRouteSyncWithInterval(client, db.RouteRepository(), interval))
	} else {
		slog.Info("No route sheet URL configured, route sync disabled")
	}

	return &Daemon{
		ctx:        ctx,
		cancel:     cancel,
		scheduler:  sched,
		database:   db,
		definition: def,
		done:       make(chan struct{}),
	}, nil
}

func (d *Daemon) Start() error {
	slog.Info("Starting daemon",
		"ranks", d.definition.Ladder.Len(),
		"aircraft", d.definition.Catalog.Len(),
	)

	d.scheduler.Start()

	go func() {
		<-d.ctx.Done()
		close(d.done)
	}()

	slog.Info("Daemon started successfully")
	return nil
}

// Resync asks for an immediate route sheet sync; false when syncing is disabled
func (d *Daemon) Resync() bool {
	return d.scheduler.Trigger(tasks.RouteSyncName)
}

// Definition is the fleet definition in effect, with the mirrored catalog
func (d *Daemon) Definition() fleet.Definition {
	return d.definition
}

// Stop gracefully stops the daemon
func (d *Daemon) Stop() error {
	slog.Info("Stopping daemon")
	d.cancel()
	<-d.done

	d.scheduler.Stop()

	if err := d.database.Close(); err != nil {
		slog.Error("Error closing database", "error", err)
	}

	slog.Info("Daemon stopped")
	return nil
}
