package database

import (
	"fmt"
	"log/slog"

	"indgo_crew/internal/fleet"
)

// SeedCatalog fills an empty catalog mirror from def. It reports whether it wrote anything.
func SeedCatalog(repo AircraftRepository, def fleet.Definition) (bool, error) {
	populated, err := repo.IsTablePopulated()
	if err != nil {
		return false, err
	}
	if populated {
		return false, nil
	}

	if err := repo.InsertBatch(def.Catalog.All()); err != nil {
		return false, fmt.Errorf("failed to seed fleet catalog: %w", err)
	}
	slog.Info("Seeded fleet catalog", "aircraft_count", def.Catalog.Len())
	return true, nil
}

// MirroredDefinition swaps def's catalog for the one stored in the mirror, validated
// against def's ladder. An empty mirror leaves def unchanged.
func MirroredDefinition(repo AircraftRepository, def fleet.Definition) (fleet.Definition, error) {
	rows, err := repo.All()
	if err != nil {
		return fleet.Definition{}, err
	}
	if len(rows) == 0 {
		return def, nil
	}

	catalog, err := fleet.NewCatalog(def.Ladder, rows...)
	if err != nil {
		return fleet.Definition{}, fmt.Errorf("stored fleet catalog is invalid: %w", err)
	}
	return def.WithCatalog(catalog), nil
}
