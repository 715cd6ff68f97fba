package notify

import (
	"context"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/jobs"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"go.uber.org/zap"
)

// Events ships circulation events to kafka from the job queue.
type Events struct {
	queue *jobs.Queue
	pub   kafka.Publisher
	cb    circuit_breaker.CircuitBreaker
	log   *zap.Logger
}

func NewEvents(queue *jobs.Queue, pub kafka.Publisher, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *Events {
	return &Events{
		queue: queue,
		pub:   pub,
		cb:    cb,
		log:   log.Named("events"),
	}
}

func (e *Events) Emit(_ context.Context, event kafka.Event) {
	err := e.queue.Enqueue(jobs.Job{
		Type: string(event.EventType),
		Run: func(context.Context) error {
			return e.cb.Call(func() error {
				return e.pub.Publish(kafka.EventTopic, event.Barcode, event)
			})
		},
	})
	if err != nil {
		e.log.Warn("emit", zap.String("type", string(event.EventType)), zap.Error(err))
	}
}
