package models

// DefaultOperator is the operating entity used when an aircraft, leg or report names none
const DefaultOperator = "IndGo Air Virtual"

// AircraftType is one flyable airframe in the fleet catalog
type AircraftType struct {
	Code     string // Unique catalog key, e.g. "A320"
	Name     string // Display name, e.g. "Airbus A320"
	MinRank  string // Lowest rank allowed to fly it
	Operator string // Operating entity; DefaultOperator when empty
}

// WithDefaults returns a copy with an empty Operator replaced by DefaultOperator
func (a AircraftType) WithDefaults() AircraftType {
	if a.Operator == "" {
		a.Operator = DefaultOperator
	}
	return a
}
