package fleet

import "indgo_crew/internal/models"

// Gate answers rank-based aircraft eligibility against an injected ladder and catalog
type Gate struct {
	ladder  models.Ladder
	catalog Catalog
}

func NewGate(ladder models.Ladder, catalog Catalog) Gate {
	return Gate{ladder: ladder, catalog: catalog}
}

// CanFly reports whether pilotRank may fly the aircraft with the given catalog code.
// Unknown aircraft and unknown or empty ranks are never authorised.
func (g Gate) CanFly(pilotRank, aircraftCode string) bool {
	ac, ok := g.catalog.Find(aircraftCode)
	if !ok {
		return false
	}
	return g.ladder.AtOrAbove(pilotRank, ac.MinRank)
}

// AllowedFleet returns the catalog entries pilotRank may fly, in catalog order.
// The result is rebuilt on every call so a promotion takes effect immediately.
func (g Gate) AllowedFleet(pilotRank string) []models.AircraftType {
	allowed := make([]models.AircraftType, 0, g.catalog.Len())
	for _, ac := range g.catalog.All() {
		if g.CanFly(pilotRank, ac.Code) {
			allowed = append(allowed, ac)
		}
	}
	return allowed
}

func (g Gate) Ladder() models.Ladder {
	return g.ladder
}

func (g Gate) Catalog() Catalog {
	return g.catalog
}
