package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/models/dtos"
)

func TestComposePirep(t *testing.T) {
	subject, body, err := ComposePirep("THT1001", dtos.PirepRequest{
		FlightNumber:  "TN08",
		Aircraft:      "B789",
		LandingRate:   -180,
		Departure:     "ntaa",
		Arrival:       "KLAX",
		DepartureDate: "2024-01-01",
		DepartureTime: "10:00",
		ArrivalDate:   "2024-01-01",
		ArrivalTime:   "18:20",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if subject != "[PIREP] TN08 : NTAA-KLAX" {
		t.Errorf("Unexpected subject %q", subject)
	}
	if !strings.Contains(body, "PILOTE: THT1001") || !strings.Contains(body, "LANDING: -180 fpm") {
		t.Errorf("Unexpected body %q", body)
	}

	if _, _, err := ComposePirep("THT1001", dtos.PirepRequest{Departure: "NTAA", Arrival: "KLAX"}); err == nil {
		t.Error("Expected validation error for missing flight number")
	}
}

func TestComposeTourValidation(t *testing.T) {
	req := dtos.TourValidationRequest{Tour: "Tiare IFR Tour", Leg: 3, Departure: "NTAA", Arrival: "NTTB"}

	subject, _, err := ComposeTourValidation("THT1004", req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if subject != "VALIDATION TOUR - Tiare IFR Tour - Etape 3 - THT1004" {
		t.Errorf("Unexpected subject %q", subject)
	}

	for _, leg := range []int{0, 13} {
		req.Leg = leg
		_, _, err := ComposeTourValidation("THT1004", req)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "leg" {
			t.Errorf("Expected leg validation error for %d, got %v", leg, err)
		}
	}

	req.Leg = 1
	req.Tour = "Unknown Tour"
	if _, _, err := ComposeTourValidation("THT1004", req); err == nil {
		t.Error("Expected unknown tour to be rejected")
	}
}

func TestComposeContact(t *testing.T) {
	subject, body, _ := ComposeContact("THT1002", dtos.ContactRequest{Subject: "Problème PIREP", Message: "Bonjour"})
	if subject != "[Crew Center] Problème PIREP" {
		t.Errorf("Unexpected subject %q", subject)
	}
	if body != "De: THT1002\n\nBonjour" {
		t.Errorf("Unexpected body %q", body)
	}

	subject, _, _ = ComposeContact("THT1002", dtos.ContactRequest{Subject: "  ", Message: "Bonjour"})
	if subject != "[Crew Center] Nouvelle demande" {
		t.Errorf("Unexpected default subject %q", subject)
	}

	if _, _, err := ComposeContact("THT1002", dtos.ContactRequest{}); err == nil {
		t.Error("Expected empty message to be rejected")
	}
}

func TestMailService_Enqueues(t *testing.T) {
	queue := common.NewChannelMailQueue(4)
	svc := NewMailService(queue, "staff@atn-virtual.test", metrics.Nop())

	msg, err := svc.SubmitContact(context.Background(), "THT1002", dtos.ContactRequest{Message: "Bonjour"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg.ID == "" || msg.To != "staff@atn-virtual.test" || msg.Kind != common.MailKindContact {
		t.Errorf("Unexpected message %+v", msg)
	}

	got, _, err := queue.Dequeue(context.Background(), 10*time.Millisecond)
	if err != nil || got == nil || got.ID != msg.ID {
		t.Errorf("Expected queued message, got %+v, %v", got, err)
	}
}

func TestMailService_QueueFull(t *testing.T) {
	queue := common.NewChannelMailQueue(1)
	svc := NewMailService(queue, "staff@atn-virtual.test", metrics.Nop())
	req := dtos.ContactRequest{Message: "Bonjour"}

	if _, err := svc.SubmitContact(context.Background(), "THT1002", req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_, err := svc.SubmitContact(context.Background(), "THT1002", req)
	var serr *ServiceError
	if !errors.As(err, &serr) || !errors.Is(err, common.ErrQueueFull) {
		t.Errorf("Expected queue failure, got %v", err)
	}
}

func TestComposeSubjectsStayOnOneLine(t *testing.T) {
	pirepSubject, _, err := ComposePirep("THT1004", dtos.PirepRequest{
		FlightNumber: "TN101\r\nBcc: someone@example.com",
		Departure:    "NTAA",
		Arrival:      "NTTB",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	contactSubject, _, err := ComposeContact("THT1004", dtos.ContactRequest{
		Subject: "Hello\nBcc: someone@example.com",
		Message: "Bonjour",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, subject := range []string{pirepSubject, contactSubject} {
		if strings.ContainsAny(subject, "\r\n") {
			t.Errorf("Expected a single-line subject, got %q", subject)
		}
	}
	if pirepSubject != "[PIREP] TN101 Bcc: someone@example.com : NTAA-NTTB" {
		t.Errorf("Unexpected subject %q", pirepSubject)
	}
}
