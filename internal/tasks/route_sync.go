package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"indgo_crew/internal/database"
	"indgo_crew/internal/models"
)

// RouteSyncName is the scheduler name of the route sheet sync task
const RouteSyncName = "route_sheet_sync"

// RouteFetcher downloads the current route sheet
type RouteFetcher interface {
	Fetch(ctx context.Context) ([]models.Route, error)
}

// RouteSync mirrors the published route sheet into the local database
type RouteSync struct {
	fetcher  RouteFetcher
	repo     database.RouteRepository
	interval time.Duration
}

// Default interval is one hour
func NewRouteSync(fetcher RouteFetcher, repo database.RouteRepository) *RouteSync {
	return NewRouteSyncWithInterval(fetcher, repo, time.Hour)
}

func NewRouteSyncWithInterval(fetcher RouteFetcher, repo database.RouteRepository, interval time.Duration) *RouteSync {
	return &RouteSync{
		fetcher:  fetcher,
		repo:     repo,
		interval: interval,
	}
}

func (r *RouteSync) Name() string {
	return RouteSyncName
}

func (r *RouteSync) Interval() time.Duration {
	return r.interval
}

// Run fetches the sheet and replaces the stored routes. An empty sheet is treated
// as a publishing mistake and leaves the stored routes untouched.
func (r *RouteSync) Run(ctx context.Context) error {
	routes, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch route sheet: %w", err)
	}

	if len(routes) == 0 {
		slog.Warn("Route sheet is empty, keeping stored routes")
		return nil
	}

	if err := r.repo.ReplaceAll(routes); err != nil {
		return fmt.Errorf("failed to store routes: %w", err)
	}

	slog.Info("Synced route sheet", "route_count", len(routes))
	return nil
}
