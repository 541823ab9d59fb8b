package common

import (
	"context"
	"testing"
	"time"
)

func TestChannelMailQueue(t *testing.T) {
	q := NewChannelMailQueue(1)
	ctx := context.Background()

	msg := &MailMessage{ID: "m1", Kind: MailKindContact, Subject: "[Crew Center] Nouvelle demande"}
	if err := q.Enqueue(ctx, msg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := q.Enqueue(ctx, &MailMessage{ID: "m2"}); err != ErrQueueFull {
		t.Errorf("Expected ErrQueueFull, got %v", err)
	}

	got, receipt, err := q.Dequeue(ctx, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil || got.ID != "m1" || receipt != "m1" {
		t.Fatalf("Unexpected message %+v (%s)", got, receipt)
	}

	got, _, err = q.Dequeue(ctx, 10*time.Millisecond)
	if err != nil || got != nil {
		t.Errorf("Expected empty dequeue, got %+v, %v", got, err)
	}
}
