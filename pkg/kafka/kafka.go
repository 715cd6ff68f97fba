package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	NotificationTopic = "circulation.notifications"
	EventTopic        = "circulation.events"
	ReturnTopic       = "circulation.returns"
	ReturnDeadTopic   = "circulation.returns.dead"

	CirculationConsumerGroup = "circulation"
)

type Config struct {
	Addrs   []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventCheckout       EventType = "CHECKOUT"
	EventReturn         EventType = "RETURN"
	EventReserve        EventType = "RESERVE"
	EventCancel         EventType = "CANCEL"
	EventReadyForPickup EventType = "READY_FOR_PICKUP"
)

// Event is a circulation fact published for downstream stats consumers.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     EventType `json:"eventType"`
	PatronID      string    `json:"patronId,omitempty"`
	Barcode       string    `json:"barcode,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// Notification is an alert addressed to one patron.
type Notification struct {
	Timestamp time.Time `json:"timestamp"`
	PatronID  string    `json:"patronId"`
	Message   string    `json:"message"`
}

type Publisher interface {
	Publish(topic, key string, v any) error
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisher{
		producer: producer,
	}
}

type publisher struct {
	producer sarama.SyncProducer
}

func (p *publisher) Publish(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "kafka marshal")
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return errors.Wrapf(err, "kafka send %s", topic)
	}
	return nil
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume joins the group until ctx is done. Consume is called again after every
// rebalance.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "kafka consume")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// ReturnCommand is a copy dropped in a self-service return box.
type ReturnCommand struct {
	Barcode  string    `json:"barcode"`
	Dropped  time.Time `json:"dropped"`
	Location string    `json:"location,omitempty"`
}

// DeadReturn is a return command the coordinator could not apply because of an
// internal fault. It is parked for manual replay.
type DeadReturn struct {
	Command   ReturnCommand `json:"command"`
	Reason    string        `json:"reason"`
	Partition int32         `json:"partition"`
	Offset    int64         `json:"offset"`
}
