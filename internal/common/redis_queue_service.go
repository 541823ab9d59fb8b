package common

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MailStream        = "crewcenter:mail"
	MailConsumerGroup = "mail-workers"
)

// RedisMailQueue provides the mail outbox using a Redis Stream, so queued
// messages survive a restart and can be drained by several workers.
type RedisMailQueue struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
}

var _ MailQueue = (*RedisMailQueue)(nil)

// NewRedisMailQueue creates a new Redis queue service for one consumer
func NewRedisMailQueue(client *redis.Client, consumer string) *RedisMailQueue {
	return &RedisMailQueue{
		client:   client,
		stream:   MailStream,
		group:    MailConsumerGroup,
		consumer: consumer,
	}
}

// Enqueue adds a message to the stream
func (s *RedisMailQueue) Enqueue(ctx context.Context, msg *MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	// XADD stream_name * data <json>
	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}
	return nil
}

// Dequeue reads one message using the consumer group.
// Returns (message, streamID, error)
func (s *RedisMailQueue) Dequeue(ctx context.Context, block time.Duration) (*MailMessage, string, error) {
	// XREADGROUP GROUP group consumer BLOCK milliseconds COUNT 1 STREAMS stream >
	args := &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, ">"}, // ">" means new messages only
		Count:    1,
		Block:    block,
	}

	streams, err := s.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if err == redis.Nil {
			// No messages available (timeout)
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to read from stream: %w", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, "", nil
	}

	entry := streams[0].Messages[0]

	dataStr, ok := entry.Values["data"].(string)
	if !ok {
		return nil, entry.ID, fmt.Errorf("invalid message format: data field missing")
	}

	var msg MailMessage
	if err := json.Unmarshal([]byte(dataStr), &msg); err != nil {
		return nil, entry.ID, fmt.Errorf("failed to unmarshal mail message: %w", err)
	}

	return &msg, entry.ID, nil
}

// Ack acknowledges a processed message and removes it from the stream
func (s *RedisMailQueue) Ack(ctx context.Context, receipt string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAck(ctx, s.stream, s.group, receipt)
		pipe.XDel(ctx, s.stream, receipt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

// CreateConsumerGroup creates the consumer group if it doesn't exist
func (s *RedisMailQueue) CreateConsumerGroup(ctx context.Context) error {
	// XGROUP CREATE stream group 0 MKSTREAM
	err := s.client.XGroupCreateMkStream(ctx, s.stream, s.group, "0").Err()
	if err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP") {
		// Group already exists, this is fine
		return nil
	}
	return err
}

// Len returns the number of messages not yet acknowledged, in-flight ones
// included
func (s *RedisMailQueue) Len(ctx context.Context) (int64, error) {
	length, err := s.client.XLen(ctx, s.stream).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return length, nil
}
