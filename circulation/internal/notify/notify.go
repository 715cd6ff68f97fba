package notify

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/jobs"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrEmptyMessage = errors.New("empty notification message")

// Notifier delivers a message to one patron. The coordinator depends on it.
type Notifier interface {
	Notify(ctx context.Context, patronID, message string) error
}

var (
	_ Notifier = (*Alerts)(nil)
	_ Notifier = (*Kafka)(nil)
	_ Notifier = (*Async)(nil)
	_ Notifier = Multi(nil)
)

// Alerts appends messages to the patron's pending alert list.
type Alerts struct {
	patrons repository.Patrons
	log     *zap.Logger
}

func NewAlerts(patrons repository.Patrons, log *zap.Logger) *Alerts {
	return &Alerts{
		patrons: patrons,
		log:     log.Named("alerts"),
	}
}

func (a *Alerts) Notify(ctx context.Context, patronID, message string) error {
	if strings.TrimSpace(message) == "" {
		a.log.Warn("empty message", zap.String("patron", patronID))
		return ErrEmptyMessage
	}
	if !a.patrons.UpdatePatron(ctx, patronID, func(p *model.Patron) {
		p.Alerts = append(p.Alerts, message)
	}) {
		a.log.Warn("unknown patron", zap.String("patron", patronID))
		return errors.Wrapf(errs.ErrNotFound, "patron %s", patronID)
	}
	a.log.Info("notification sent", zap.String("patron", patronID), zap.String("message", message))
	return nil
}

// Kafka publishes the alert on the notification topic keyed by patron id.
type Kafka struct {
	pub kafka.Publisher
	cb  circuit_breaker.CircuitBreaker
	now func() time.Time
}

func NewKafka(pub kafka.Publisher, cb circuit_breaker.CircuitBreaker) *Kafka {
	return &Kafka{
		pub: pub,
		cb:  cb,
		now: time.Now,
	}
}

func (k *Kafka) Notify(_ context.Context, patronID, message string) error {
	return k.cb.Call(func() error {
		return k.pub.Publish(kafka.NotificationTopic, patronID, kafka.Notification{
			Timestamp: k.now().UTC(),
			PatronID:  patronID,
			Message:   message,
		})
	})
}

// Async hands delivery to a job queue. Only the enqueue itself can fail.
type Async struct {
	queue *jobs.Queue
	next  Notifier
}

func NewAsync(queue *jobs.Queue, next Notifier) *Async {
	return &Async{
		queue: queue,
		next:  next,
	}
}

func (a *Async) Notify(_ context.Context, patronID, message string) error {
	return a.queue.Enqueue(jobs.Job{
		Type: "notify",
		Run: func(ctx context.Context) error {
			return a.next.Notify(ctx, patronID, message)
		},
	})
}

// Multi delivers to every notifier in order and combines their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, patronID, message string) error {
	var err error
	for _, n := range m {
		err = multierr.Append(err, n.Notify(ctx, patronID, message))
	}
	return err
}
