// Package routesheet reads the published route sheet (a CSV export) into routes
package routesheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"indgo_crew/internal/models"
)

// Column order of the published sheet
const (
	colCallsign = iota
	colOrigin
	colDestination
	colAircraft
	colDistance
	colFlightTime
)

var icaoPrefix = regexp.MustCompile(`^([A-Z]{4})`)

// headerCells mark header rows by their first cell (lowercased)
var headerCells = map[string]bool{
	"callsign":      true,
	"flight number": true,
}

// Parse reads route rows from r. Blank rows, rows with an empty first cell and header
// rows are skipped, as are rows without both an origin and a destination.
func Parse(r io.Reader) ([]models.Route, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true    // Sheet exports are not always well quoted
	reader.FieldsPerRecord = -1 // Trailing columns are often missing

	var routes []models.Route
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read route sheet: %w", err)
		}

		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		if headerCells[strings.ToLower(strings.TrimSpace(record[0]))] {
			continue
		}

		route := models.Route{
			Callsign:    textField(record, colCallsign),
			Origin:      airportCode(field(record, colOrigin)),
			Destination: airportCode(field(record, colDestination)),
			Aircraft:    textField(record, colAircraft),
			Distance:    textField(record, colDistance),
			FlightTime:  textField(record, colFlightTime),
		}
		if route.Origin == "" || route.Destination == "" {
			continue
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// ForAirport returns the routes departing from or arriving at icao, in sheet order
func ForAirport(routes []models.Route, icao string) []models.Route {
	var out []models.Route
	for _, r := range routes {
		if r.Touches(icao) {
			out = append(out, r)
		}
	}
	return out
}

// airportCode takes the leading ICAO code of cells like "VIDP - Delhi",
// falling back to the whole cell uppercased.
func airportCode(cell string) string {
	if m := icaoPrefix.FindStringSubmatch(cell); m != nil {
		return m[1]
	}
	return strings.ToUpper(strings.TrimSpace(cell))
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

func textField(record []string, idx int) string {
	if v := strings.TrimSpace(field(record, idx)); v != "" {
		return v
	}
	return models.NotAvailable
}
