// Package fleet gates aircraft by pilot rank.
//
// Every lookup here is a pure function over an immutable ladder and catalog.
// Unknown ranks, codes and descriptions resolve to a negative answer, never an error.
package fleet

import (
	"fmt"
	"strings"

	"indgo_crew/internal/models"
)

// Catalog is the ordered, read-only list of flyable aircraft types
type Catalog struct {
	types  []models.AircraftType
	byCode map[string]int
}

// NewCatalog validates the aircraft types against ladder and keeps them in declared order.
// Codes must be non-empty and unique, and every MinRank must be on the ladder.
func NewCatalog(ladder models.Ladder, types ...models.AircraftType) (Catalog, error) {
	c := Catalog{
		types:  make([]models.AircraftType, 0, len(types)),
		byCode: make(map[string]int, len(types)),
	}
	for i, ac := range types {
		if strings.TrimSpace(ac.Code) == "" {
			return Catalog{}, fmt.Errorf("aircraft %d has no code: %w", i, models.ErrInvalidDefinition)
		}
		if _, dup := c.byCode[ac.Code]; dup {
			return Catalog{}, fmt.Errorf("aircraft code %q declared twice: %w", ac.Code, models.ErrInvalidDefinition)
		}
		if !ladder.Contains(ac.MinRank) {
			return Catalog{}, fmt.Errorf("aircraft %q requires unknown rank %q: %w", ac.Code, ac.MinRank, models.ErrInvalidDefinition)
		}
		c.byCode[ac.Code] = len(c.types)
		c.types = append(c.types, ac.WithDefaults())
	}
	return c, nil
}

// Find looks up an aircraft by exact code; codes are not case-folded
func (c Catalog) Find(code string) (models.AircraftType, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return models.AircraftType{}, false
	}
	return c.types[i], true
}

// All returns the catalog in declared order
func (c Catalog) All() []models.AircraftType {
	out := make([]models.AircraftType, len(c.types))
	copy(out, c.types)
	return out
}

func (c Catalog) Len() int {
	return len(c.types)
}
