package fleetfile

import (
	"fmt"
	"strings"

	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"
)

// MapFleet validates a decoded fleet file and builds the definition it describes.
// A file-level operator fills aircraft that name none; otherwise models.DefaultOperator applies.
func MapFleet(path string, yf YAMLFleet) (fleet.Definition, error) {
	if len(yf.Ranks) == 0 {
		return fleet.Definition{}, invalidField(path, "ranks", "at least one rank is required")
	}

	aircraft := make([]models.AircraftType, 0, len(yf.Aircraft))
	for i, a := range yf.Aircraft {
		fieldPrefix := fmt.Sprintf("aircraft[%d]", i)
		if strings.TrimSpace(a.Code) == "" {
			return fleet.Definition{}, invalidField(path, fieldPrefix+".code", "code is required")
		}
		if strings.TrimSpace(a.MinRank) == "" {
			return fleet.Definition{}, invalidField(path, fieldPrefix+".min_rank", "min_rank is required")
		}

		op := strings.TrimSpace(a.Operator)
		if op == "" {
			op = strings.TrimSpace(yf.Operator)
		}
		aircraft = append(aircraft, models.AircraftType{
			Code:     strings.TrimSpace(a.Code),
			Name:     strings.TrimSpace(a.Name),
			MinRank:  strings.TrimSpace(a.MinRank),
			Operator: op,
		})
	}

	families := make([]fleet.Family, 0, len(yf.Families))
	for i, f := range yf.Families {
		if len(f.Match) == 0 {
			return fleet.Definition{}, invalidField(path, fmt.Sprintf("families[%d].match", i), "at least one marker is required")
		}
		families = append(families, fleet.Family{Rank: strings.TrimSpace(f.Rank), Markers: f.Match})
	}

	def, err := fleet.NewDefinition(yf.Ranks, aircraft, families)
	if err != nil {
		return fleet.Definition{}, fmt.Errorf("fleet file %s: %w", path, err)
	}
	return def, nil
}

func invalidField(path, field, msg string) error {
	return fmt.Errorf("fleet file %s: field %s: %s: %w", path, field, msg, models.ErrInvalidDefinition)
}
