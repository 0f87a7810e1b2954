// Package crew builds the duty checklist and badge text shown in the crew center
package crew

import (
	"strings"

	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"
)

// RankDeducer guesses a display rank from free-text aircraft descriptions
type RankDeducer interface {
	DeduceRank(text string) string
}

var _ RankDeducer = fleet.Deducer{}

// Badge is the operator and required-rank chip pair rendered next to a leg or report
type Badge struct {
	Operator     string
	RequiredRank string
}

// LegStatus is one checklist row for an on-duty roster
type LegStatus struct {
	Leg       models.RosterLeg
	Completed bool
	Badge     Badge
}

// LegOperator resolves the operator for a leg: the leg's own, then the roster's, then the default
func LegOperator(leg models.RosterLeg, roster models.Roster) string {
	if op := strings.TrimSpace(leg.Operator); op != "" {
		return op
	}
	if op := strings.TrimSpace(roster.Operator); op != "" {
		return op
	}
	return models.DefaultOperator
}

// LegRequiredRank prefers the leg's authoritative RankUnlock and falls back to deduction
func LegRequiredRank(leg models.RosterLeg, deducer RankDeducer) string {
	if r := strings.TrimSpace(leg.RankUnlock); r != "" {
		return r
	}
	return deducer.DeduceRank(leg.Aircraft)
}

// DutyChecklist lists the roster's legs in order, marking those already covered by a PIREP
// filed against this roster.
func DutyChecklist(roster models.Roster, pireps []models.Pirep, deducer RankDeducer) []LegStatus {
	filed := make(map[string]struct{}, len(pireps))
	for _, p := range pireps {
		if p.RosterID == roster.ID {
			filed[p.FlightNumber] = struct{}{}
		}
	}

	out := make([]LegStatus, 0, len(roster.Legs))
	for _, leg := range roster.Legs {
		_, done := filed[leg.FlightNumber]
		out = append(out, LegStatus{
			Leg:       leg,
			Completed: done,
			Badge: Badge{
				Operator:     LegOperator(leg, roster),
				RequiredRank: LegRequiredRank(leg, deducer),
			},
		})
	}
	return out
}

// Remaining counts the legs still to be flown
func Remaining(checklist []LegStatus) int {
	n := 0
	for _, s := range checklist {
		if !s.Completed {
			n++
		}
	}
	return n
}

// PirepBadge builds the history chips for a filed report
func PirepBadge(p models.Pirep, deducer RankDeducer) Badge {
	op := strings.TrimSpace(p.Operator)
	if op == "" {
		op = models.DefaultOperator
	}
	return Badge{
		Operator:     op,
		RequiredRank: deducer.DeduceRank(p.Aircraft),
	}
}
