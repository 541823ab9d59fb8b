package gorm

import (
	"time"

	"atn-virtual/crewcenter/internal/constants"
)

// EventParticipation stores one pilot's RSVP for one event
type EventParticipation struct {
	ID        uint                          `gorm:"column:id;primaryKey;autoIncrement"`
	EventID   string                        `gorm:"column:event_id;size:64;not null;uniqueIndex:idx_event_pilot"`
	PilotID   string                        `gorm:"column:pilot_id;size:32;not null;uniqueIndex:idx_event_pilot"`
	Status    constants.ParticipationStatus `gorm:"column:status;size:16;not null"`
	CreatedAt time.Time                     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                     `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (EventParticipation) TableName() string {
	return "event_participations"
}
