package models

// Roster is a duty day made of ordered legs, as served by the crew backend
type Roster struct {
	ID       string
	Name     string
	Operator string // Optional; legs without an operator inherit it
	Legs     []RosterLeg
}

// RosterLeg is a single flight inside a roster
type RosterLeg struct {
	FlightNumber string
	Departure    string // ICAO
	Arrival      string // ICAO
	Aircraft     string // Free text, not necessarily a catalog code
	Operator     string // Optional
	RankUnlock   string // Optional authoritative rank requirement
}

// Pirep is a filed pilot report
type Pirep struct {
	FlightNumber string
	Aircraft     string // Free text as entered by the pilot
	Operator     string
	RosterID     string // Set when filed against a roster leg
	Status       string
	FlightTime   float64 // hours
}
