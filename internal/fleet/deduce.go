package fleet

import "strings"

// UnknownRank is the badge text for aircraft descriptions no family recognises
const UnknownRank = "Unknown"

// Family ties a set of airframe markers to the rank historically needed to fly them
type Family struct {
	Rank    string
	Markers []string // Alternate substrings, any one of which identifies the family
}

// Deducer guesses a rank badge from a free-text aircraft description.
// Its answer is cosmetic and must never be fed to Gate.CanFly.
type Deducer struct {
	families []Family
}

// NewDeducer keeps families in the given priority order; the first match wins.
func NewDeducer(families ...Family) Deducer {
	fs := make([]Family, 0, len(families))
	for _, f := range families {
		markers := make([]string, 0, len(f.Markers))
		for _, m := range f.Markers {
			if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
				markers = append(markers, m)
			}
		}
		fs = append(fs, Family{Rank: f.Rank, Markers: markers})
	}
	return Deducer{families: fs}
}

// DeduceRank returns the rank of the first family matching text, or UnknownRank
func (d Deducer) DeduceRank(text string) string {
	s := strings.ToUpper(text)
	if strings.TrimSpace(s) == "" {
		return UnknownRank
	}
	for _, f := range d.families {
		for _, m := range f.Markers {
			if strings.Contains(s, m) {
				return f.Rank
			}
		}
	}
	return UnknownRank
}

// Families returns the families in priority order
func (d Deducer) Families() []Family {
	out := make([]Family, len(d.families))
	copy(out, d.families)
	return out
}
