package common

import (
	"context"
	"errors"
	"time"
)

// MailKind tags what form produced a message
type MailKind string

const (
	MailKindPirep   MailKind = "pirep"
	MailKindTour    MailKind = "tour_validation"
	MailKindContact MailKind = "contact"
)

// MailMessage is one queued outbound message
type MailMessage struct {
	ID        string    `json:"id"`
	Kind      MailKind  `json:"kind"`
	Sender    string    `json:"sender"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// MailQueue is the outbox between the form handlers and the mail worker
type MailQueue interface {
	Enqueue(ctx context.Context, msg *MailMessage) error
	// Dequeue waits up to block for a message. A nil message with a nil
	// error means nothing arrived in time.
	Dequeue(ctx context.Context, block time.Duration) (*MailMessage, string, error)
	Ack(ctx context.Context, receipt string) error
	Len(ctx context.Context) (int64, error)
}

var ErrQueueFull = errors.New("mail queue is full")

// ChannelMailQueue is the in-process outbox. Messages are lost on restart.
type ChannelMailQueue struct {
	ch chan *MailMessage
}

var _ MailQueue = (*ChannelMailQueue)(nil)

func NewChannelMailQueue(size int) *ChannelMailQueue {
	if size <= 0 {
		size = 100
	}
	return &ChannelMailQueue{ch: make(chan *MailMessage, size)}
}

func (q *ChannelMailQueue) Enqueue(ctx context.Context, msg *MailMessage) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *ChannelMailQueue) Dequeue(ctx context.Context, block time.Duration) (*MailMessage, string, error) {
	timer := time.NewTimer(block)
	defer timer.Stop()

	select {
	case msg := <-q.ch:
		return msg, msg.ID, nil
	case <-timer.C:
		return nil, "", nil
	case <-ctx.Done():
		return nil, "", ctx.Err()
	}
}

// Ack is a no-op: a message leaves the channel when it is read
func (q *ChannelMailQueue) Ack(ctx context.Context, receipt string) error {
	return nil
}

// Len returns the number of waiting messages
func (q *ChannelMailQueue) Len(ctx context.Context) (int64, error) {
	return int64(len(q.ch)), nil
}
