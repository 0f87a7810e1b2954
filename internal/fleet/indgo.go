package fleet

import (
	"fmt"

	"indgo_crew/internal/models"
)

// IndGoRanks is the IndGo Air Virtual pilot ladder, lowest first
var IndGoRanks = []string{
	"IndGo Cadet",
	"Skyline Observer",
	"Route Explorer",
	"Skyline Officer",
	"Command Captain",
	"Elite Captain",
	"Blue Eagle",
	"Line Instructor",
	"Chief Flight Instructor",
	"IndGo SkyMaster",
	"Blue Legacy Commander",
}

// IndGoFleet is the IndGo Air Virtual fleet with its rank gates
var IndGoFleet = []models.AircraftType{
	{Code: "Q400", Name: "De Havilland Dash 8 Q400", MinRank: "IndGo Cadet"},
	{Code: "A320", Name: "Airbus A320", MinRank: "IndGo Cadet"},
	{Code: "B738", Name: "Boeing 737-800", MinRank: "IndGo Cadet"},

	{Code: "A321", Name: "Airbus A321", MinRank: "Skyline Observer"},
	{Code: "B737", Name: "Boeing 737 (family)", MinRank: "Skyline Observer"},

	{Code: "A330", Name: "Airbus A330-300", MinRank: "Route Explorer"},
	{Code: "B38M", Name: "Boeing 737 MAX 8", MinRank: "Route Explorer"},

	{Code: "B788", Name: "Boeing 787-8", MinRank: "Skyline Officer"},
	{Code: "B77L", Name: "Boeing 777-200LR", MinRank: "Skyline Officer"},

	{Code: "B789", Name: "Boeing 787-9", MinRank: "Command Captain"},
	{Code: "B77W", Name: "Boeing 777-300ER", MinRank: "Command Captain"},

	{Code: "A350", Name: "Airbus A350-900", MinRank: "Elite Captain"},

	{Code: "A380", Name: "Airbus A380-800", MinRank: "Blue Eagle"},
	{Code: "B744", Name: "Boeing 747-400", MinRank: "Blue Eagle"},
}

// IndGoFamilies mirrors the backend's aircraft-to-rank deduction.
// Entry-level families come first so common types resolve before wide-bodies.
var IndGoFamilies = []Family{
	{Rank: "IndGo Cadet", Markers: []string{"Q400", "A320", "B738"}},
	{Rank: "Skyline Observer", Markers: []string{"A321", "B737"}},
	{Rank: "Route Explorer", Markers: []string{"A330", "B38M"}},
	{Rank: "Skyline Officer", Markers: []string{"787-8", "B788", "777-200LR", "B77L"}},
	{Rank: "Command Captain", Markers: []string{"787-9", "B789", "777-300ER", "B77W"}},
	{Rank: "Elite Captain", Markers: []string{"A350"}},
	{Rank: "Blue Eagle", Markers: []string{"A380", "747", "744", "B744"}},
}

// Definition bundles a validated ladder and catalog with the gate and deducer built on them
type Definition struct {
	Ladder  models.Ladder
	Catalog Catalog
	Gate    Gate
	Deducer Deducer
}

// NewDefinition validates ranks and aircraft and wires the gate and deducer
func NewDefinition(ranks []string, aircraft []models.AircraftType, families []Family) (Definition, error) {
	ladder, err := models.NewLadder(ranks...)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to build rank ladder: %w", err)
	}
	catalog, err := NewCatalog(ladder, aircraft...)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to build fleet catalog: %w", err)
	}
	for _, f := range families {
		if !ladder.Contains(f.Rank) {
			return Definition{}, fmt.Errorf("aircraft family maps to unknown rank %q: %w", f.Rank, models.ErrInvalidDefinition)
		}
	}
	return Definition{
		Ladder:  ladder,
		Catalog: catalog,
		Gate:    NewGate(ladder, catalog),
		Deducer: NewDeducer(families...),
	}, nil
}

// WithCatalog returns a copy of d gated by a different catalog over the same ladder
func (d Definition) WithCatalog(catalog Catalog) Definition {
	d.Catalog = catalog
	d.Gate = NewGate(d.Ladder, catalog)
	return d
}

// IndGo returns the built-in IndGo Air Virtual definition
func IndGo() Definition {
	def, err := NewDefinition(IndGoRanks, IndGoFleet, IndGoFamilies)
	if err != nil {
		panic(fmt.Sprintf("built-in fleet definition is invalid: %v", err))
	}
	return def
}
