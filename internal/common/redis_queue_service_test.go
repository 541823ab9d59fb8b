package common

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisQueue(t *testing.T) *RedisMailQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	q := NewRedisMailQueue(client, "test-worker")
	if err := q.CreateConsumerGroup(context.Background()); err != nil {
		t.Fatalf("Failed to create consumer group: %v", err)
	}
	// second call hits BUSYGROUP
	if err := q.CreateConsumerGroup(context.Background()); err != nil {
		t.Fatalf("Expected existing group to be accepted, got %v", err)
	}
	return q
}

func TestRedisMailQueue_AckShrinksOutbox(t *testing.T) {
	q := newTestRedisQueue(t)
	ctx := context.Background()

	for _, id := range []string{"m1", "m2"} {
		if err := q.Enqueue(ctx, &MailMessage{ID: id, Kind: MailKindPirep, Subject: "[PIREP] TN101 : NTAA-NTTB"}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if n, err := q.Len(ctx); err != nil || n != 2 {
		t.Fatalf("Expected 2 pending messages, got %d, %v", n, err)
	}

	msg, receipt, err := q.Dequeue(ctx, 50*time.Millisecond)
	if err != nil || msg == nil {
		t.Fatalf("Expected a message, got %+v, %v", msg, err)
	}
	if msg.ID != "m1" || msg.Subject != "[PIREP] TN101 : NTAA-NTTB" {
		t.Errorf("Unexpected message %+v", msg)
	}

	if err := q.Ack(ctx, receipt); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n, err := q.Len(ctx); err != nil || n != 1 {
		t.Errorf("Expected 1 pending message after ack, got %d, %v", n, err)
	}
}
