package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/ledger"
	"github.com/Astemirdum/library-circulation/circulation/internal/metrics"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/jobs"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App holds the wired coordinator and its background plumbing.
type App struct {
	log     *zap.Logger
	svc     *service.Service
	metrics *metrics.Metrics

	queues    []*jobs.Queue
	producer  sarama.SyncProducer
	publisher kafka.Publisher
	consumer  sarama.ConsumerGroup
}

// New wires the coordinator. Kafka is only dialed when cfg.Kafka.Enabled is set.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{
		log:     log,
		metrics: metrics.New(),
	}

	inventory := repository.NewInventory(log)
	patrons := repository.NewPatrons(log)
	var notifier notify.Notifier = notify.NewAlerts(patrons, log)
	opts := []service.Option{
		service.WithLoanPeriod(cfg.LoanPeriod),
		service.WithMetrics(a.metrics),
	}

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, errors.Wrap(err, "kafka.NewProducer")
		}
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.CirculationConsumerGroup)
		if err != nil {
			return nil, multierr.Append(errors.Wrap(err, "kafka.NewConsumer"), producer.Close())
		}
		a.producer, a.consumer = producer, consumer

		pub := kafka.NewPublisher(producer)
		a.publisher = pub
		cb := circuit_breaker.New(cfg.CircuitBreaker)
		notifyQueue := jobs.NewQueue("notifications", cfg.Notify, log)
		eventQueue := jobs.NewQueue("events", cfg.Notify, log)
		a.queues = append(a.queues, notifyQueue, eventQueue)

		notifier = notify.Multi{notifier, notify.NewAsync(notifyQueue, notify.NewKafka(pub, cb))}
		opts = append(opts, service.WithEvents(notify.NewEvents(eventQueue, pub, cb, log)))
	}

	a.svc = service.NewService(inventory, patrons, ledger.New(log), notifier, log, opts...)
	return a, nil
}

func (a *App) Service() *service.Service {
	return a.svc
}

func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Start launches the background queues.
func (a *App) Start(ctx context.Context) {
	for _, q := range a.queues {
		q.Start(ctx)
	}
}

// Close stops the queues and releases the kafka clients.
func (a *App) Close() error {
	for _, q := range a.queues {
		q.Stop()
	}
	var err error
	if a.consumer != nil {
		err = multierr.Append(err, a.consumer.Close())
	}
	if a.producer != nil {
		err = multierr.Append(err, a.producer.Close())
	}
	return err
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	defer log.Sync() //nolint:errcheck

	a, err := New(cfg, log)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	a.Start(context.Background())

	h := handler.New(a.svc, a.metrics.Handler(), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	if a.consumer != nil {
		g.Go(func() error {
			return kafka.Consume(gCtx, a.consumer, handler.NewConsumer(a.svc.ReturnCopy, a.publisher, log), kafka.ReturnTopic)
		})
	}
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.DPanic("srv.Stop", zap.Error(err))
			return err
		}
		return nil
	})

	err = g.Wait()
	if closeErr := a.Close(); closeErr != nil {
		log.Error("close", zap.Error(closeErr))
	}
	log.Info("Graceful shutdown finished")
	return err
}
