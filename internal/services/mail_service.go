package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/dtos"

	"github.com/google/uuid"
)

// MailService turns form submissions into messages for the staff mailbox and
// places them on the outbox. Delivery happens in the mail worker.
type MailService struct {
	queue   common.MailQueue
	to      string
	metrics *metrics.MetricsRegistry
}

func NewMailService(queue common.MailQueue, to string, m *metrics.MetricsRegistry) *MailService {
	return &MailService{queue: queue, to: to, metrics: m}
}

// SubmitPirep queues a manual flight report
func (s *MailService) SubmitPirep(ctx context.Context, sender string, req dtos.PirepRequest) (*common.MailMessage, error) {
	subject, body, err := ComposePirep(sender, req)
	if err != nil {
		return nil, err
	}
	return s.enqueue(ctx, common.MailKindPirep, sender, subject, body)
}

// SubmitTourValidation queues a tour-leg validation request
func (s *MailService) SubmitTourValidation(ctx context.Context, sender string, req dtos.TourValidationRequest) (*common.MailMessage, error) {
	subject, body, err := ComposeTourValidation(sender, req)
	if err != nil {
		return nil, err
	}
	return s.enqueue(ctx, common.MailKindTour, sender, subject, body)
}

// SubmitContact queues a free-form message to the staff
func (s *MailService) SubmitContact(ctx context.Context, sender string, req dtos.ContactRequest) (*common.MailMessage, error) {
	subject, body, err := ComposeContact(sender, req)
	if err != nil {
		return nil, err
	}
	return s.enqueue(ctx, common.MailKindContact, sender, subject, body)
}

func (s *MailService) enqueue(ctx context.Context, kind common.MailKind, sender, subject, body string) (*common.MailMessage, error) {
	msg := &common.MailMessage{
		ID:        uuid.New().String(),
		Kind:      kind,
		Sender:    sender,
		To:        s.to,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.queue.Enqueue(ctx, msg); err != nil {
		logging.Error("Failed to queue mail", "kind", kind, "sender", sender, "error", err)
		return nil, newServiceError(constants.ErrCodeQueueFailure, err)
	}

	if s.metrics != nil {
		s.metrics.MailEnqueuedTotal.WithLabelValues(string(kind)).Inc()
	}
	logging.Info("Mail queued", "id", msg.ID, "kind", kind, "subject", subject)
	return msg, nil
}

// ComposePirep builds "[PIREP] {flight} : {dep}-{arr}" and its body
func ComposePirep(sender string, req dtos.PirepRequest) (string, string, error) {
	flight := strings.TrimSpace(req.FlightNumber)
	dep := common.NormalizeICAO(req.Departure)
	arr := common.NormalizeICAO(req.Arrival)
	switch {
	case flight == "":
		return "", "", newValidationError("flight_number", "flight number is required")
	case dep == "":
		return "", "", newValidationError("departure", "departure airport is required")
	case arr == "":
		return "", "", newValidationError("arrival", "arrival airport is required")
	}

	subject := headerLine(fmt.Sprintf("[PIREP] %s : %s-%s", flight, dep, arr))
	body := fmt.Sprintf("PILOTE: %s\nVOL: %s\nAVION: %s\nDEPART: %s le %s à %sz\nARRIVEE: %s le %s à %sz\nLANDING: %d fpm\nREMARQUES: %s",
		sender, flight, req.Aircraft,
		dep, req.DepartureDate, req.DepartureTime,
		arr, req.ArrivalDate, req.ArrivalTime,
		req.LandingRate, req.Remarks)
	return subject, body, nil
}

// ComposeTourValidation builds "VALIDATION TOUR - {tour} - Etape {leg} - {user}"
func ComposeTourValidation(sender string, req dtos.TourValidationRequest) (string, string, error) {
	if !constants.IsKnownTour(req.Tour) {
		return "", "", newValidationError("tour", "unknown tour")
	}
	if req.Leg < constants.MinTourLeg || req.Leg > constants.MaxTourLeg {
		return "", "", newValidationError("leg", fmt.Sprintf("must be between %d and %d", constants.MinTourLeg, constants.MaxTourLeg))
	}

	subject := headerLine(fmt.Sprintf("VALIDATION TOUR - %s - Etape %d - %s", req.Tour, req.Leg, sender))
	body := fmt.Sprintf("PILOTE: %s\nTOUR: %s\nETAPE: %d\nAVION: %s\nDEPART: %s\nARRIVEE: %s\nDATE: %s\nTEMPS: %s\nREMARQUES: %s",
		sender, req.Tour, req.Leg, req.Aircraft,
		common.NormalizeICAO(req.Departure), common.NormalizeICAO(req.Arrival),
		req.FlightDate, req.BlockTime, req.Remarks)
	return subject, body, nil
}

// ComposeContact builds "[Crew Center] {subject}", or a generic subject when
// none was given
func ComposeContact(sender string, req dtos.ContactRequest) (string, string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", "", newValidationError("message", "message is required")
	}

	subject := "[Crew Center] Nouvelle demande"
	if s := strings.TrimSpace(req.Subject); s != "" {
		subject = headerLine("[Crew Center] " + s)
	}
	body := fmt.Sprintf("De: %s\n\n%s", sender, req.Message)
	return subject, body, nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerLine flattens s onto one line so it can be used as a mail header
func headerLine(s string) string {
	return lineBreaks.Replace(s)
}
