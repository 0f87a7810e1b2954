package models

import (
	"errors"
	"fmt"
	"strings"
)

// RankNotFound is returned by Ladder.IndexOf for names that are not on the ladder
const RankNotFound = -1

// ErrInvalidDefinition marks a rank ladder, fleet catalog or fleet file that breaks its invariants
var ErrInvalidDefinition = errors.New("invalid fleet definition")

// Ladder is an immutable, totally ordered list of pilot ranks (lowest first)
type Ladder struct {
	names []string
	index map[string]int
}

// NewLadder builds a ladder from rank names ordered from lowest to highest.
// Names are trimmed; empty and duplicate names are rejected.
func NewLadder(names ...string) (Ladder, error) {
	l := Ladder{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return Ladder{}, fmt.Errorf("rank %d is empty: %w", i, ErrInvalidDefinition)
		}
		if prev, ok := l.index[name]; ok {
			return Ladder{}, fmt.Errorf("rank %q declared at positions %d and %d: %w", name, prev, i, ErrInvalidDefinition)
		}
		l.index[name] = len(l.names)
		l.names = append(l.names, name)
	}
	return l, nil
}

// IndexOf returns the zero-based position of a rank, or RankNotFound
func (l Ladder) IndexOf(name string) int {
	if i, ok := l.index[strings.TrimSpace(name)]; ok {
		return i
	}
	return RankNotFound
}

// Contains reports whether name is a rank on the ladder
func (l Ladder) Contains(name string) bool {
	return l.IndexOf(name) != RankNotFound
}

// AtOrAbove reports whether rank a sits at or above rank b.
// Either rank being unknown yields false.
func (l Ladder) AtOrAbove(a, b string) bool {
	ai := l.IndexOf(a)
	bi := l.IndexOf(b)
	if ai == RankNotFound || bi == RankNotFound {
		return false
	}
	return ai >= bi
}

// Ranks returns a copy of the rank names, lowest first
func (l Ladder) Ranks() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l Ladder) Len() int {
	return len(l.names)
}

// Lowest returns the entry rank, or "" for an empty ladder
func (l Ladder) Lowest() string {
	if len(l.names) == 0 {
		return ""
	}
	return l.names[0]
}

// Highest returns the top rank, or "" for an empty ladder
func (l Ladder) Highest() string {
	if len(l.names) == 0 {
		return ""
	}
	return l.names[len(l.names)-1]
}
