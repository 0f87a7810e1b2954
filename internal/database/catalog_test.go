package database

import (
	"testing"

	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	repo := setupTestDB(t).AircraftRepository()
	def := fleet.IndGo()

	seeded, err := SeedCatalog(repo, def)
	require.NoError(t, err)
	assert.True(t, seeded)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, def.Catalog.All(), all)

	seeded, err = SeedCatalog(repo, def)
	require.NoError(t, err)
	assert.False(t, seeded, "a populated mirror is left alone")
}

func TestMirroredDefinition(t *testing.T) {
	repo := setupTestDB(t).AircraftRepository()
	def := fleet.IndGo()

	same, err := MirroredDefinition(repo, def)
	require.NoError(t, err)
	assert.Equal(t, def.Catalog.Len(), same.Catalog.Len(), "empty mirror keeps the configured catalog")

	require.NoError(t, repo.ReplaceAll([]models.AircraftType{
		{Code: "A350", Name: "Airbus A350-900", MinRank: "Elite Captain"},
		{Code: "Q400", Name: "Dash 8 Q400", MinRank: "Skyline Observer"},
	}))

	mirrored, err := MirroredDefinition(repo, def)
	require.NoError(t, err)
	assert.Equal(t, 2, mirrored.Catalog.Len())
	assert.False(t, mirrored.Gate.CanFly("IndGo Cadet", "Q400"), "stored rank gate wins")
	assert.True(t, mirrored.Gate.CanFly("Skyline Observer", "Q400"))
	assert.False(t, mirrored.Gate.CanFly("Blue Legacy Commander", "A380"))
}

func TestMirroredDefinition_InvalidRank(t *testing.T) {
	repo := setupTestDB(t).AircraftRepository()
	require.NoError(t, repo.ReplaceAll([]models.AircraftType{{Code: "C172", MinRank: "Student"}}))

	_, err := MirroredDefinition(repo, fleet.IndGo())
	assert.ErrorIs(t, err, models.ErrInvalidDefinition)
}
