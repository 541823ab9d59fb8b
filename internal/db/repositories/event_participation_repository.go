package repositories

import (
	"context"
	"fmt"

	models "atn-virtual/crewcenter/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventParticipationRepository manages event RSVPs with GORM
type EventParticipationRepository struct {
	db *gorm.DB
}

// NewEventParticipationRepository creates a new RSVP repository
func NewEventParticipationRepository(db *gorm.DB) *EventParticipationRepository {
	return &EventParticipationRepository{db: db}
}

// Upsert records a pilot's answer, replacing any earlier answer for the same event
func (r *EventParticipationRepository) Upsert(ctx context.Context, p *models.EventParticipation) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "pilot_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}
	return nil
}

// GetByEvent returns every answer for an event, oldest first
func (r *EventParticipationRepository) GetByEvent(ctx context.Context, eventID string) ([]models.EventParticipation, error) {
	var rows []models.EventParticipation

	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participations: %w", err)
	}

	return rows, nil
}

// GetByEventAndPilot returns one pilot's answer, or nil when there is none
func (r *EventParticipationRepository) GetByEventAndPilot(ctx context.Context, eventID, pilotID string) (*models.EventParticipation, error) {
	var row models.EventParticipation

	err := r.db.WithContext(ctx).
		Where("event_id = ? AND pilot_id = ?", eventID, pilotID).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch participation: %w", err)
	}

	return &row, nil
}
