package fleet

import (
	"testing"

	"indgo_crew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(types []models.AircraftType) []string {
	out := make([]string, 0, len(types))
	for _, ac := range types {
		out = append(out, ac.Code)
	}
	return out
}

func twoRankGate(t *testing.T) Gate {
	ladder, err := models.NewLadder("Cadet", "Eagle")
	require.NoError(t, err)
	catalog, err := NewCatalog(ladder,
		models.AircraftType{Code: "Q400", Name: "Dash 8 Q400", MinRank: "Cadet"},
		models.AircraftType{Code: "A380", Name: "Airbus A380", MinRank: "Eagle"},
	)
	require.NoError(t, err)
	return NewGate(ladder, catalog)
}

func TestNewCatalog(t *testing.T) {
	ladder, err := models.NewLadder("Cadet", "Eagle")
	require.NoError(t, err)

	tests := []struct {
		name    string
		types   []models.AircraftType
		wantErr bool
	}{
		{
			name:  "valid catalog",
			types: []models.AircraftType{{Code: "Q400", MinRank: "Cadet"}, {Code: "A380", MinRank: "Eagle"}},
		},
		{
			name:    "missing code",
			types:   []models.AircraftType{{Code: " ", MinRank: "Cadet"}},
			wantErr: true,
		},
		{
			name:    "duplicate code",
			types:   []models.AircraftType{{Code: "Q400", MinRank: "Cadet"}, {Code: "Q400", MinRank: "Eagle"}},
			wantErr: true,
		},
		{
			name:    "rank not on ladder",
			types:   []models.AircraftType{{Code: "B744", MinRank: "Commander"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(ladder, tt.types...)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidDefinition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.types), c.Len())
		})
	}
}

func TestCatalog_Find(t *testing.T) {
	g := twoRankGate(t)

	ac, ok := g.Catalog().Find("Q400")
	require.True(t, ok)
	assert.Equal(t, "Cadet", ac.MinRank)
	assert.Equal(t, models.DefaultOperator, ac.Operator)

	_, ok = g.Catalog().Find("q400")
	assert.False(t, ok, "codes are matched exactly")

	_, ok = g.Catalog().Find("NON_EXISTENT_CODE")
	assert.False(t, ok)
}

func TestGate_TwoRankScenario(t *testing.T) {
	g := twoRankGate(t)

	assert.Equal(t, []string{"Q400"}, codes(g.AllowedFleet("Cadet")))
	assert.Equal(t, []string{"Q400", "A380"}, codes(g.AllowedFleet("Eagle")))
	assert.False(t, g.CanFly("Cadet", "A380"))
	assert.True(t, g.CanFly("Eagle", "Q400"))
}

func TestGate_CanFly(t *testing.T) {
	g := IndGo().Gate

	tests := []struct {
		name     string
		rank     string
		code     string
		expected bool
	}{
		{name: "cadet entry aircraft", rank: "IndGo Cadet", code: "A320", expected: true},
		{name: "cadet wide-body", rank: "IndGo Cadet", code: "B77W", expected: false},
		{name: "exact gate rank", rank: "Elite Captain", code: "A350", expected: true},
		{name: "one rank short", rank: "Command Captain", code: "A350", expected: false},
		{name: "top rank flagship", rank: "Blue Legacy Commander", code: "B744", expected: true},
		{name: "rank with whitespace", rank: "  Blue Eagle ", code: "A380", expected: true},
		{name: "unknown aircraft", rank: "Blue Legacy Commander", code: "NON_EXISTENT_CODE", expected: false},
		{name: "lowercase code", rank: "Blue Legacy Commander", code: "a320", expected: false},
		{name: "empty rank", rank: "", code: "Q400", expected: false},
		{name: "unknown rank", rank: "Captain", code: "Q400", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.CanFly(tt.rank, tt.code))
		})
	}
}

func TestGate_CanFlyMatchesLadderOrder(t *testing.T) {
	def := IndGo()

	for _, rank := range def.Ladder.Ranks() {
		for _, ac := range def.Catalog.All() {
			expected := def.Ladder.IndexOf(rank) >= def.Ladder.IndexOf(ac.MinRank)
			assert.Equal(t, expected, def.Gate.CanFly(rank, ac.Code), "%s flying %s", rank, ac.Code)
		}
	}
}

func TestGate_AllowedFleet(t *testing.T) {
	def := IndGo()
	g := def.Gate

	t.Run("lowest rank gets only entry aircraft", func(t *testing.T) {
		assert.Equal(t, []string{"Q400", "A320", "B738"}, codes(g.AllowedFleet(def.Ladder.Lowest())))
	})

	t.Run("highest rank gets the whole catalog", func(t *testing.T) {
		assert.Equal(t, codes(def.Catalog.All()), codes(g.AllowedFleet(def.Ladder.Highest())))
	})

	t.Run("result is an ordered subsequence of the catalog", func(t *testing.T) {
		all := codes(def.Catalog.All())
		for _, rank := range def.Ladder.Ranks() {
			pos := -1
			for _, code := range codes(g.AllowedFleet(rank)) {
				next := indexOf(all, code)
				require.Greater(t, next, pos, "rank %s", rank)
				pos = next
			}
		}
	})

	t.Run("unknown rank gets an empty list", func(t *testing.T) {
		allowed := g.AllowedFleet("Nobody")
		assert.NotNil(t, allowed)
		assert.Empty(t, allowed)
		assert.Empty(t, g.AllowedFleet(""))
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		assert.Equal(t, g.AllowedFleet("Route Explorer"), g.AllowedFleet("Route Explorer"))
	})

	t.Run("mutating a result leaves the catalog alone", func(t *testing.T) {
		allowed := g.AllowedFleet("Blue Eagle")
		allowed[0].Code = "XXXX"
		assert.True(t, g.CanFly("Blue Eagle", "Q400"))
		assert.Equal(t, "Q400", g.AllowedFleet("Blue Eagle")[0].Code)
	})
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestNewDefinition(t *testing.T) {
	_, err := NewDefinition([]string{"Cadet"}, nil, []Family{{Rank: "Eagle", Markers: []string{"A380"}}})
	assert.ErrorIs(t, err, models.ErrInvalidDefinition)

	_, err = NewDefinition([]string{"Cadet", "Cadet"}, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidDefinition)

	def, err := NewDefinition(IndGoRanks, IndGoFleet, IndGoFamilies)
	require.NoError(t, err)
	assert.Equal(t, 11, def.Ladder.Len())
	assert.Equal(t, 14, def.Catalog.Len())
}

func TestDefinition_WithCatalog(t *testing.T) {
	def := IndGo()
	small, err := NewCatalog(def.Ladder, models.AircraftType{Code: "A350", MinRank: "Elite Captain"})
	require.NoError(t, err)

	narrowed := def.WithCatalog(small)
	assert.False(t, narrowed.Gate.CanFly("Blue Eagle", "A380"))
	assert.True(t, narrowed.Gate.CanFly("Blue Eagle", "A350"))
	assert.True(t, def.Gate.CanFly("Blue Eagle", "A380"), "original definition is untouched")
}
