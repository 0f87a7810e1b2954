// Package fleetfile loads rank ladders, fleet catalogs and deduction families from YAML
package fleetfile

import (
	"fmt"
	"os"

	"indgo_crew/internal/fleet"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the fleet definition at path
func Load(path string) (fleet.Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return fleet.Definition{}, fmt.Errorf("failed to read fleet file: %w", err)
	}
	return Decode(path, b)
}

// Decode parses YAML bytes; path is only used in error messages
func Decode(path string, b []byte) (fleet.Definition, error) {
	var yf YAMLFleet
	if err := yaml.Unmarshal(b, &yf); err != nil {
		return fleet.Definition{}, fmt.Errorf("failed to parse fleet file %s: %w", path, err)
	}
	return MapFleet(path, yf)
}

// Resolve loads path, or returns the built-in IndGo definition when path is empty
func Resolve(path string) (fleet.Definition, error) {
	if path == "" {
		return fleet.IndGo(), nil
	}
	return Load(path)
}
