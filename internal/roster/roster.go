// Package roster holds the static local roster. The table is built once at
// start-up and is read-only afterwards, so it is safe to share.
package roster

import (
	"fmt"
	"os"
	"strings"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/models/entities"

	"gopkg.in/yaml.v3"
)

// Roster is the read-only pilot table
type Roster struct {
	pilots []entities.PilotRecord
	byID   map[string]int
}

// New builds a roster from records. Identifiers must be unique and non-empty.
func New(records []entities.PilotRecord) (*Roster, error) {
	r := &Roster{
		pilots: make([]entities.PilotRecord, 0, len(records)),
		byID:   make(map[string]int, len(records)),
	}
	for _, p := range records {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("roster: pilot %q has no identifier", p.Name)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("roster: duplicate identifier %s", p.ID)
		}
		if p.Role == "" {
			p.Role = constants.RoleRegular
		}
		r.byID[p.ID] = len(r.pilots)
		r.pilots = append(r.pilots, p)
	}
	return r, nil
}

// Default returns the roster the crew center ships with
func Default() *Roster {
	r, err := New(defaultPilots)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the pilots in declaration order. The slice is a copy.
func (r *Roster) All() []entities.PilotRecord {
	out := make([]entities.PilotRecord, len(r.pilots))
	copy(out, r.pilots)
	return out
}

// Find looks a pilot up by identifier
func (r *Roster) Find(id string) (entities.PilotRecord, bool) {
	idx, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return entities.PilotRecord{}, false
	}
	return r.pilots[idx], true
}

// Len returns the number of pilots
func (r *Roster) Len() int { return len(r.pilots) }

type rosterFile struct {
	Pilots []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Grade   string `yaml:"grade"`
		Role    string `yaml:"role"`
		FsHubID string `yaml:"fshub_id"`
		Default string `yaml:"default"`
	} `yaml:"pilots"`
}

// LoadFile reads a roster from a YAML file of the form
//
//	pilots:
//	  - {id: THT1001, name: Guillaume B., grade: CDB, role: staff, fshub_id: "23309", default: 232h}
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML roster document
func Parse(data []byte) (*Roster, error) {
	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(doc.Pilots) == 0 {
		return nil, fmt.Errorf("parse roster: no pilots declared")
	}

	records := make([]entities.PilotRecord, 0, len(doc.Pilots))
	for _, p := range doc.Pilots {
		grade := constants.Grade(strings.ToUpper(strings.TrimSpace(p.Grade)))
		if !grade.Valid() {
			return nil, fmt.Errorf("parse roster: pilot %s has unknown grade %q", p.ID, p.Grade)
		}
		records = append(records, entities.PilotRecord{
			ID:           p.ID,
			Name:         p.Name,
			Grade:        grade,
			Role:         constants.ParsePilotRole(p.Role),
			FsHubID:      strings.TrimSpace(p.FsHubID),
			DefaultHours: p.Default,
		})
	}
	return New(records)
}
