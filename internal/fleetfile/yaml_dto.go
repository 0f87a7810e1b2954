package fleetfile

// YAMLFleet is the on-disk shape of a fleet definition file
type YAMLFleet struct {
	Operator string         `yaml:"operator"`
	Ranks    []string       `yaml:"ranks"`
	Aircraft []YAMLAircraft `yaml:"aircraft"`
	Families []YAMLFamily   `yaml:"families"`
}

type YAMLAircraft struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	MinRank  string `yaml:"min_rank"`
	Operator string `yaml:"operator"`
}

type YAMLFamily struct {
	Rank  string   `yaml:"rank"`
	Match []string `yaml:"match"`
}
