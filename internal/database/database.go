package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the local sqlite mirror of the fleet catalog and the route sheet
type DB struct {
	db *sql.DB
}

// New creates and initializes a new database connection
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite sets pragmas for a single-writer daemon with concurrent CLI readers
func optimizeSQLite(db *sql.DB) error {
	pragmas := []string{
		// WAL lets CLI lookups read while the daemon rewrites the route table
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// AircraftRepository returns the repository for the fleet catalog mirror
func (d *DB) AircraftRepository() AircraftRepository {
	return NewAircraftRepository(d.db)
}

// RouteRepository returns the repository for synced route sheet rows
func (d *DB) RouteRepository() RouteRepository {
	return NewRouteRepository(d.db)
}

// initSchema creates the database schema if it doesn't exist
func (d *DB) initSchema() error {
	schemas := []struct {
		name string
		ddl  string
	}{
		{"aircraft_types", `CREATE TABLE IF NOT EXISTS aircraft_types (
			code TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			min_rank TEXT NOT NULL,
			operator TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`},
		{"routes", `CREATE TABLE IF NOT EXISTS routes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			callsign TEXT NOT NULL,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			aircraft TEXT,
			distance TEXT,
			flight_time TEXT,
			synced_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`},
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_aircraft_types_position ON aircraft_types(position)`,
		`CREATE INDEX IF NOT EXISTS idx_routes_origin ON routes(origin)`,
		`CREATE INDEX IF NOT EXISTS idx_routes_destination ON routes(destination)`,
	}

	for _, s := range schemas {
		if _, err := d.db.Exec(s.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", s.name, err)
		}
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
