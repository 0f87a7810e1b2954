package models

// NotAvailable fills route sheet columns that were left blank
const NotAvailable = "N/A"

// Route is a scheduled city pair from the published route sheet
type Route struct {
	Callsign    string
	Origin      string // ICAO
	Destination string // ICAO
	Aircraft    string // Free text
	Distance    string // As published, e.g. "1150nm"
	FlightTime  string // As published, e.g. "02:35"
}

// Touches reports whether the route departs from or arrives at icao
func (r Route) Touches(icao string) bool {
	return r.Origin == icao || r.Destination == icao
}
