package entities

import "atn-virtual/crewcenter/internal/constants"

// EventParticipation is one pilot's answer to an event invitation
type EventParticipation struct {
	EventID string                        `json:"event_id"`
	PilotID string                        `json:"pilot_id"`
	Status  constants.ParticipationStatus `json:"status"`
}
