package workers

import (
	"context"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
)

const mailWorkerCount = 2

type WorkersContainer struct {
	Mail *MailWorker
}

// InitWorkers starts the background workers. They stop when ctx is cancelled.
func InitWorkers(ctx context.Context, queue common.MailQueue, mailer common.Mailer, m *metrics.MetricsRegistry) *WorkersContainer {
	if rq, ok := queue.(*common.RedisMailQueue); ok {
		if err := rq.CreateConsumerGroup(ctx); err != nil {
			logging.Warn("Failed to create mail consumer group", "stream", common.MailStream, "error", err.Error())
		}
	}

	mail := NewMailWorker("mail", queue, mailer, m)
	go mail.Start(ctx, mailWorkerCount)

	return &WorkersContainer{Mail: mail}
}
