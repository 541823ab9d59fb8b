package services

import (
	"context"
	"strings"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/models/dtos"
	"atn-virtual/crewcenter/internal/models/entities"
	models "atn-virtual/crewcenter/internal/models/gorm"
)

// ParticipationStore is implemented by repositories.EventParticipationRepository
type ParticipationStore interface {
	Upsert(ctx context.Context, p *models.EventParticipation) error
	GetByEvent(ctx context.Context, eventID string) ([]models.EventParticipation, error)
	GetByEventAndPilot(ctx context.Context, eventID, pilotID string) (*models.EventParticipation, error)
}

// EventService records event RSVPs
type EventService struct {
	store ParticipationStore
}

func NewEventService(store ParticipationStore) *EventService {
	return &EventService{store: store}
}

// Vote records pilotID's answer for eventID. A later vote replaces the earlier one.
func (s *EventService) Vote(ctx context.Context, eventID, pilotID, status string) (*entities.EventParticipation, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, newValidationError("event", "event identifier is required")
	}
	if pilotID == "" {
		return nil, newValidationError("pilot", "pilot identifier is required")
	}
	st := constants.ParticipationStatus(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, newValidationError("status", "must be one of present, maybe, absent")
	}

	row := &models.EventParticipation{EventID: eventID, PilotID: pilotID, Status: st}
	if err := s.store.Upsert(ctx, row); err != nil {
		logging.Error("Failed to record RSVP", "event", eventID, "pilot", pilotID, "error", err)
		return nil, newServiceError(constants.ErrCodeStorageFailure, err)
	}

	logging.Info("RSVP recorded", "event", eventID, "pilot", pilotID, "status", st)
	return &entities.EventParticipation{EventID: eventID, PilotID: pilotID, Status: st}, nil
}

// AnswerOf returns pilotID's answer for eventID. Status is empty when the
// pilot hasn't answered yet.
func (s *EventService) AnswerOf(ctx context.Context, eventID, pilotID string) (*entities.EventParticipation, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, newValidationError("event", "event identifier is required")
	}

	row, err := s.store.GetByEventAndPilot(ctx, eventID, pilotID)
	if err != nil {
		return nil, newServiceError(constants.ErrCodeStorageFailure, err)
	}

	answer := &entities.EventParticipation{EventID: eventID, PilotID: pilotID}
	if row != nil {
		answer.Status = row.Status
	}
	return answer, nil
}

// Participants groups the answers for eventID by status
func (s *EventService) Participants(ctx context.Context, eventID string) (*dtos.ParticipantsResponse, error) {
	rows, err := s.store.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, newServiceError(constants.ErrCodeStorageFailure, err)
	}

	resp := &dtos.ParticipantsResponse{
		EventID: eventID,
		Present: []string{},
		Maybe:   []string{},
		Absent:  []string{},
		Votes:   make([]entities.EventParticipation, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Votes = append(resp.Votes, entities.EventParticipation{EventID: r.EventID, PilotID: r.PilotID, Status: r.Status})
		switch r.Status {
		case constants.ParticipationPresent:
			resp.Present = append(resp.Present, r.PilotID)
		case constants.ParticipationMaybe:
			resp.Maybe = append(resp.Maybe, r.PilotID)
		case constants.ParticipationAbsent:
			resp.Absent = append(resp.Absent, r.PilotID)
		}
	}
	return resp, nil
}
