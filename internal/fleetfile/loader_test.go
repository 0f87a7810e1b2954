package fleetfile

import (
	"os"
	"path/filepath"
	"testing"

	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFleet = `
operator: IndGo Connect
ranks:
  - Cadet
  - Officer
  - Eagle
aircraft:
  - code: Q400
    name: Dash 8 Q400
    min_rank: Cadet
  - code: A380
    name: Airbus A380-800
    min_rank: Eagle
    operator: IndGo Air Virtual
families:
  - rank: Cadet
    match: [Q400, dash 8]
  - rank: Eagle
    match: [A380, "747"]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFleet), 0o644))

	def, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cadet", "Officer", "Eagle"}, def.Ladder.Ranks())

	q400, ok := def.Catalog.Find("Q400")
	require.True(t, ok)
	assert.Equal(t, "IndGo Connect", q400.Operator, "file operator fills the gap")

	a380, ok := def.Catalog.Find("A380")
	require.True(t, ok)
	assert.Equal(t, models.DefaultOperator, a380.Operator)

	assert.True(t, def.Gate.CanFly("Officer", "Q400"))
	assert.False(t, def.Gate.CanFly("Officer", "A380"))
	assert.Equal(t, "Cadet", def.Deducer.DeduceRank("DHC Dash 8"))
	assert.Equal(t, "Eagle", def.Deducer.DeduceRank("Boeing 747-8"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "no ranks",
			yaml:    "aircraft: []",
			wantMsg: "ranks",
		},
		{
			name:    "aircraft without code",
			yaml:    "ranks: [Cadet]\naircraft:\n  - min_rank: Cadet\n",
			wantMsg: "aircraft[0].code",
		},
		{
			name:    "aircraft without rank",
			yaml:    "ranks: [Cadet]\naircraft:\n  - code: Q400\n",
			wantMsg: "aircraft[0].min_rank",
		},
		{
			name:    "aircraft with unknown rank",
			yaml:    "ranks: [Cadet]\naircraft:\n  - code: A380\n    min_rank: Eagle\n",
			wantMsg: "unknown rank",
		},
		{
			name:    "family without markers",
			yaml:    "ranks: [Cadet]\nfamilies:\n  - rank: Cadet\n",
			wantMsg: "families[0].match",
		},
		{
			name:    "duplicate ranks",
			yaml:    "ranks: [Cadet, Cadet]\n",
			wantMsg: "Cadet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("fleet.yaml", []byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidDefinition)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("fleet.yaml", []byte("ranks: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidDefinition)
}

func TestResolve_BuiltIn(t *testing.T) {
	def, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, fleet.IndGoRanks, def.Ladder.Ranks())
	assert.Equal(t, len(fleet.IndGoFleet), def.Catalog.Len())
}
