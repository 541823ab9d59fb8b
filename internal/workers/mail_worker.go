package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
)

const mailDequeueBlock = 5 * time.Second

// MailWorker drains the mail outbox into a Mailer
type MailWorker struct {
	workerID string
	queue    common.MailQueue
	mailer   common.Mailer
	metrics  *metrics.MetricsRegistry
}

// NewMailWorker creates a new mail outbox worker
func NewMailWorker(workerID string, queue common.MailQueue, mailer common.Mailer, m *metrics.MetricsRegistry) *MailWorker {
	return &MailWorker{
		workerID: workerID,
		queue:    queue,
		mailer:   mailer,
		metrics:  m,
	}
}

// Start runs numWorkers consumers until ctx is cancelled
func (w *MailWorker) Start(ctx context.Context, numWorkers int) {
	logging.Info("Starting mail workers", "count", numWorkers, "worker_id", w.workerID)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		workerName := fmt.Sprintf("%s-%d", w.workerID, i)
		go func() {
			defer wg.Done()
			w.processQueue(ctx, workerName)
		}()
	}

	wg.Wait()
	logging.Info("All mail workers stopped", "worker_id", w.workerID)
}

// processQueue continuously delivers messages from the outbox
func (w *MailWorker) processQueue(ctx context.Context, workerName string) {
	log := logging.Component(workerName)
	sent, failed := 0, 0

	for {
		select {
		case <-ctx.Done():
			log.Infow("Shutting down", "sent", sent, "failed", failed)
			return
		default:
		}

		msg, receipt, err := w.queue.Dequeue(ctx, mailDequeueBlock)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Warnw("Error dequeuing", "error", err)
			time.Sleep(time.Second) // Back off on error
			continue
		}
		if msg == nil {
			// No messages available (timeout)
			continue
		}

		if w.Deliver(ctx, msg) {
			sent++
		} else {
			failed++
		}

		// Acknowledged either way so a bad message isn't retried forever
		if err := w.queue.Ack(ctx, receipt); err != nil {
			log.Warnw("Error acknowledging message", "id", msg.ID, "error", err)
		}
	}
}

// Deliver hands one message to the mailer and reports whether it was accepted
func (w *MailWorker) Deliver(ctx context.Context, msg *common.MailMessage) bool {
	if err := w.mailer.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		logging.Error("Mail delivery failed",
			"id", msg.ID,
			"kind", msg.Kind,
			"subject", msg.Subject,
			"error", err.Error(),
		)
		if w.metrics != nil {
			w.metrics.MailFailedTotal.Inc()
		}
		return false
	}

	if w.metrics != nil {
		w.metrics.MailSentTotal.Inc()
	}
	return true
}
