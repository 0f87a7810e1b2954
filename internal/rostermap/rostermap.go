// Package rostermap keeps the route lines and airport markers of the roster map and
// tracks which roster is highlighted. Drawing is left to the front end; this package
// only owns the association between rosters, segments and markers and their styles.
package rostermap

import (
	"math"

	"indgo_crew/internal/models"
)

// PilotZoom is the zoom level used when centring on the pilot's airport
const PilotZoom = 5

// boundsPadding grows highlighted bounds by this fraction on every side
const boundsPadding = 0.2

// Airport is a map-plottable airport
type Airport struct {
	ICAO string
	Name string
	Lat  float64
	Lon  float64
}

// Style is the visual state of a line or circle marker
type Style struct {
	Color       string
	FillColor   string
	Weight      int
	Radius      int
	Opacity     float64
	FillOpacity float64
}

var (
	DefaultLineStyle      = Style{Color: "#5a6a9c", Weight: 2, Opacity: 0.7}
	HighlightLineStyle    = Style{Color: "#FFA500", Weight: 3, Opacity: 1}
	DefaultAirportStyle   = Style{Color: "#fff", FillColor: "#00BFFF", Weight: 1, Radius: 4, Opacity: 1, FillOpacity: 0.8}
	HighlightAirportStyle = Style{Color: "#fff", FillColor: "#FFA500", Weight: 1, Radius: 6, Opacity: 1, FillOpacity: 1}
)

// Segment is the line drawn for one roster leg
type Segment struct {
	FlightNumber string
	From         Airport
	To           Airport
	Style        Style
}

// Marker is an airport circle; one marker exists per ICAO no matter how many rosters use it
type Marker struct {
	Airport Airport
	Style   Style
}

// View is a map centre and zoom
type View struct {
	Lat  float64
	Lon  float64
	Zoom int
}

// Bounds is a lat/lon rectangle
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

type layer struct {
	segments []*Segment
	markers  []*Marker
}

// Map holds the plotted rosters. It is not safe for concurrent use.
type Map struct {
	airports    map[string]Airport
	layers      map[string]*layer
	markers     map[string]*Marker
	highlighted string
}

func New(airports map[string]Airport) *Map {
	return &Map{
		airports: airports,
		layers:   make(map[string]*layer),
		markers:  make(map[string]*Marker),
	}
}

// Plot replaces everything on the map with the given rosters. Legs whose airports are
// unknown get no segment. The returned view centres on the pilot's airport when known.
func (m *Map) Plot(pilotLocation string, rosters []models.Roster) (View, bool) {
	m.clear()

	for _, roster := range rosters {
		l := &layer{}
		m.layers[roster.ID] = l

		var icaos []string
		seen := make(map[string]bool)
		for _, leg := range roster.Legs {
			for _, icao := range []string{leg.Departure, leg.Arrival} {
				if !seen[icao] {
					seen[icao] = true
					icaos = append(icaos, icao)
				}
			}

			dep, okDep := m.airports[leg.Departure]
			arr, okArr := m.airports[leg.Arrival]
			if okDep && okArr {
				l.segments = append(l.segments, &Segment{
					FlightNumber: leg.FlightNumber,
					From:         dep,
					To:           arr,
					Style:        DefaultLineStyle,
				})
			}
		}

		for _, icao := range icaos {
			ap, ok := m.airports[icao]
			if !ok {
				continue
			}
			mk, exists := m.markers[icao]
			if !exists {
				mk = &Marker{Airport: ap, Style: DefaultAirportStyle}
				m.markers[icao] = mk
			}
			l.markers = append(l.markers, mk)
		}
	}

	if ap, ok := m.airports[pilotLocation]; ok {
		return View{Lat: ap.Lat, Lon: ap.Lon, Zoom: PilotZoom}, true
	}
	return View{}, false
}

// Reset returns every segment and marker to its default style
func (m *Map) Reset() {
	for _, l := range m.layers {
		for _, s := range l.segments {
			s.Style = DefaultLineStyle
		}
	}
	for _, mk := range m.markers {
		mk.Style = DefaultAirportStyle
	}
	m.highlighted = ""
}

// Highlight resets the map, then highlights one roster's segments and markers.
// It returns the padded bounds of the highlighted features, or false when the roster
// is unknown or has nothing plotted.
func (m *Map) Highlight(rosterID string) (Bounds, bool) {
	m.Reset()

	l, ok := m.layers[rosterID]
	if !ok {
		return Bounds{}, false
	}
	m.highlighted = rosterID

	points := make([]Airport, 0, 2*len(l.segments)+len(l.markers))
	for _, s := range l.segments {
		s.Style = HighlightLineStyle
		points = append(points, s.From, s.To)
	}
	for _, mk := range l.markers {
		mk.Style = HighlightAirportStyle
		points = append(points, mk.Airport)
	}
	if len(points) == 0 {
		return Bounds{}, false
	}
	return padded(points), true
}

// Highlighted returns the highlighted roster ID, or "" when none is
func (m *Map) Highlighted() string {
	return m.highlighted
}

// Segments returns the segments plotted for a roster
func (m *Map) Segments(rosterID string) []Segment {
	l, ok := m.layers[rosterID]
	if !ok {
		return nil
	}
	out := make([]Segment, 0, len(l.segments))
	for _, s := range l.segments {
		out = append(out, *s)
	}
	return out
}

// MarkerStyle returns the current style of an airport marker
func (m *Map) MarkerStyle(icao string) (Style, bool) {
	mk, ok := m.markers[icao]
	if !ok {
		return Style{}, false
	}
	return mk.Style, true
}

// MarkerCount is the number of distinct airport markers on the map
func (m *Map) MarkerCount() int {
	return len(m.markers)
}

func (m *Map) clear() {
	m.layers = make(map[string]*layer)
	m.markers = make(map[string]*Marker)
	m.highlighted = ""
}

func padded(points []Airport) Bounds {
	b := Bounds{South: math.Inf(1), West: math.Inf(1), North: math.Inf(-1), East: math.Inf(-1)}
	for _, p := range points {
		b.South = math.Min(b.South, p.Lat)
		b.North = math.Max(b.North, p.Lat)
		b.West = math.Min(b.West, p.Lon)
		b.East = math.Max(b.East, p.Lon)
	}
	dLat := (b.North - b.South) * boundsPadding
	dLon := (b.East - b.West) * boundsPadding
	return Bounds{
		South: b.South - dLat,
		West:  b.West - dLon,
		North: b.North + dLat,
		East:  b.East + dLon,
	}
}
