package tasks

import (
	"context"
	"testing"
	"time"

	"indgo_crew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFetcher returns canned routes or an error
type mockFetcher struct {
	routes []models.Route
	err    error
	calls  int
}

func (m *mockFetcher) Fetch(context.Context) ([]models.Route, error) {
	m.calls++
	return m.routes, m.err
}

// mockRouteRepository is a simple mock implementation of database.RouteRepository
type mockRouteRepository struct {
	stored   []models.Route
	replaced int
	err      error
}

func (m *mockRouteRepository) ReplaceAll(routes []models.Route) error {
	if m.err != nil {
		return m.err
	}
	m.replaced++
	m.stored = routes
	return nil
}

func (m *mockRouteRepository) ForAirport(icao string) ([]models.Route, error) {
	var out []models.Route
	for _, r := range m.stored {
		if r.Touches(icao) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRouteRepository) Count() (int, error) {
	return len(m.stored), nil
}

var sampleRoutes = []models.Route{
	{Callsign: "IGO1", Origin: "VIDP", Destination: "VABB", Aircraft: "A320"},
	{Callsign: "IGO2", Origin: "VABB", Destination: "VOBL", Aircraft: "B738"},
}

func TestNewRouteSync(t *testing.T) {
	task := NewRouteSync(&mockFetcher{}, &mockRouteRepository{})

	require.NotNil(t, task)
	assert.Equal(t, RouteSyncName, task.Name())
	assert.Equal(t, time.Hour, task.Interval())

	task = NewRouteSyncWithInterval(&mockFetcher{}, &mockRouteRepository{}, 5*time.Minute)
	assert.Equal(t, 5*time.Minute, task.Interval())
}

func TestRouteSync_Run(t *testing.T) {
	fetcher := &mockFetcher{routes: sampleRoutes}
	repo := &mockRouteRepository{}

	err := NewRouteSync(fetcher, repo).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, sampleRoutes, repo.stored)
}

func TestRouteSync_FetchError(t *testing.T) {
	repo := &mockRouteRepository{stored: sampleRoutes}

	err := NewRouteSync(&mockFetcher{err: assert.AnError}, repo).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, repo.replaced)
	assert.Equal(t, sampleRoutes, repo.stored)
}

func TestRouteSync_EmptySheetKeepsRoutes(t *testing.T) {
	repo := &mockRouteRepository{stored: sampleRoutes}

	err := NewRouteSync(&mockFetcher{}, repo).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, repo.replaced)
	assert.Equal(t, sampleRoutes, repo.stored)
}

func TestRouteSync_StoreError(t *testing.T) {
	repo := &mockRouteRepository{err: assert.AnError}

	err := NewRouteSync(&mockFetcher{routes: sampleRoutes}, repo).Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
