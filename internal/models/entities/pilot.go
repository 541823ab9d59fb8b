package entities

import "atn-virtual/crewcenter/internal/constants"

// PilotRecord is one entry of the static local roster
type PilotRecord struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Grade        constants.Grade     `json:"grade"`
	Role         constants.PilotRole `json:"role"`
	FsHubID      string              `json:"fshub_id,omitempty"`
	DefaultHours string              `json:"default_hours"`
}

// IsStaff reports whether the pilot belongs to the airline staff
func (p PilotRecord) IsStaff() bool { return p.Role == constants.RoleStaff }

// HasProfile reports whether an fsHub profile is linked
func (p PilotRecord) HasProfile() bool { return p.FsHubID != "" }

// RosterEntry is a roster pilot with the best available hours value
type RosterEntry struct {
	Pilot    PilotRecord `json:"pilot"`
	Hours    string      `json:"hours"`
	Synced   bool        `json:"synced"` // hours came from fsHub rather than the local default
	Inactive bool        `json:"inactive"`
}

// LeaderboardEntry keeps the display string next to the parsed value used for ranking
type LeaderboardEntry struct {
	Rank  int             `json:"rank"`
	Name  string          `json:"name"`
	Grade constants.Grade `json:"grade"`
	Hours string          `json:"hours"`
	Value float64         `json:"-"`
}
