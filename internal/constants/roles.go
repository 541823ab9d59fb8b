package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// PilotRole is the crew function of a roster pilot
type PilotRole string

const (
	RoleRegular PilotRole = "regular"
	RoleStaff   PilotRole = "staff"
)

func (r PilotRole) String() string { return string(r) }

// ParsePilotRole accepts the roster spellings ("STAFF", "Pilote", ...) and maps
// anything that isn't staff to a regular pilot.
func ParsePilotRole(s string) PilotRole {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleStaff)) {
		return RoleStaff
	}
	return RoleRegular
}

// Grade is the pilot rank tag shown on the roster
type Grade string

const (
	GradeEP  Grade = "EP"
	GradePPL Grade = "PPL"
	GradeCPL Grade = "CPL"
	GradeCDB Grade = "CDB"
)

func (g Grade) String() string { return string(g) }

// Valid reports whether g is one of the known grades
func (g Grade) Valid() bool {
	switch g {
	case GradeEP, GradePPL, GradeCPL, GradeCDB:
		return true
	}
	return false
}

// ParticipationStatus mirrors the event_participations.status column
type ParticipationStatus string

const (
	ParticipationPresent ParticipationStatus = "present"
	ParticipationMaybe   ParticipationStatus = "maybe"
	ParticipationAbsent  ParticipationStatus = "absent"
)

func (s ParticipationStatus) String() string { return string(s) }

// Valid reports whether s is one of the three RSVP answers
func (s ParticipationStatus) Valid() bool {
	switch s {
	case ParticipationPresent, ParticipationMaybe, ParticipationAbsent:
		return true
	}
	return false
}

/* ---------- DB adapters so gorm scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (s *ParticipationStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = ParticipationStatus(v)
	case []byte:
		*s = ParticipationStatus(v)
	default:
		return fmt.Errorf("ParticipationStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s ParticipationStatus) Value() (driver.Value, error) { return string(s), nil }
