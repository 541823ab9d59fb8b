package config

import (
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/roster"
)

// LoadRoster returns the roster from ROSTER_FILE, or the built-in list when
// no file is configured
func (c *Config) LoadRoster() (*roster.Roster, error) {
	if c.RosterFile == "" {
		return roster.Default(), nil
	}

	r, err := roster.LoadFile(c.RosterFile)
	if err != nil {
		return nil, err
	}
	logging.Info("Roster loaded", "file", c.RosterFile, "pilots", r.Len())
	return r, nil
}
