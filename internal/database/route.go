package database

import (
	"database/sql"
	"fmt"

	"indgo_crew/internal/models"
)

type RouteRepository interface {
	ReplaceAll(routes []models.Route) error
	ForAirport(icao string) ([]models.Route, error)
	Count() (int, error)
}

type routeRepository struct {
	db *sql.DB
}

func NewRouteRepository(db *sql.DB) RouteRepository {
	return &routeRepository{db: db}
}

// ReplaceAll swaps the stored route sheet for routes in a single transaction,
// so readers see either the previous sheet or the new one.
func (r *routeRepository) ReplaceAll(routes []models.Route) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM routes`); err != nil {
		return fmt.Errorf("failed to clear routes: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO routes (
		callsign, origin, destination, aircraft, distance, flight_time
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rt := range routes {
		if _, err := stmt.Exec(
			rt.Callsign,
			rt.Origin,
			rt.Destination,
			rt.Aircraft,
			rt.Distance,
			rt.FlightTime,
		); err != nil {
			return fmt.Errorf("failed to insert route %s: %w", rt.Callsign, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ForAirport returns routes departing from or arriving at icao, in sheet order
func (r *routeRepository) ForAirport(icao string) ([]models.Route, error) {
	rows, err := r.db.Query(`SELECT callsign, origin, destination, aircraft, distance, flight_time
		FROM routes WHERE origin = ? OR destination = ? ORDER BY id`, icao, icao)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var out []models.Route
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.Callsign, &rt.Origin, &rt.Destination, &rt.Aircraft, &rt.Distance, &rt.FlightTime); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read routes: %w", err)
	}
	return out, nil
}

func (r *routeRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM routes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count routes: %w", err)
	}
	return n, nil
}
