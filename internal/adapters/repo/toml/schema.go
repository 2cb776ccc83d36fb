package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported seed schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	Kind        string  `toml:"kind"`
	FirstName   string  `toml:"first_name"`
	LastName    string  `toml:"last_name"`
	DOB         string  `toml:"dob"`
	Balance     float64 `toml:"balance"`
	Campus      string  `toml:"campus,omitempty"`
	Loyal       bool    `toml:"loyal,omitempty"`
	Withdrawals int     `toml:"withdrawals,omitempty"`
}
