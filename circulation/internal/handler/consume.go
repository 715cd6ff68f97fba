package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type returnCopy func(ctx context.Context, barcode string) (model.Status, error)

// Consumer applies return commands from the book drop topic. Commands that hit a
// consistency fault are parked on the dead letter topic.
type Consumer struct {
	returnHandler returnCopy
	deadLetter    kafka.Publisher
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(returnCopy returnCopy, deadLetter kafka.Publisher, log *zap.Logger) *Consumer {
	return &Consumer{
		returnHandler: returnCopy,
		deadLetter:    deadLetter,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var cmd kafka.ReturnCommand
			if err := json.Unmarshal(message.Value, &cmd); err != nil {
				consumer.log.Error("bad return command", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			status, err := consumer.returnHandler(session.Context(), cmd.Barcode)
			if err != nil {
				if errors.Is(err, errs.ErrConsistency) {
					consumer.log.Error("consumer.returnHandler", zap.String("barcode", cmd.Barcode), zap.Error(err))
					if err := consumer.park(message, cmd, err); err != nil {
						// offsets commit cumulatively, so nothing after an unparked fault may be marked
						return err
					}
					session.MarkMessage(message, "")
					continue
				}
				consumer.log.Warn("return rejected", zap.String("barcode", cmd.Barcode), zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Debug("Message claimed:",
				zap.String("barcode", cmd.Barcode), zap.String("status", string(status)),
				zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) park(message *sarama.ConsumerMessage, cmd kafka.ReturnCommand, fault error) error {
	if consumer.deadLetter == nil {
		return errors.Wrap(fault, "no dead letter topic")
	}
	if err := consumer.deadLetter.Publish(kafka.ReturnDeadTopic, cmd.Barcode, kafka.DeadReturn{
		Command:   cmd,
		Reason:    fault.Error(),
		Partition: message.Partition,
		Offset:    message.Offset,
	}); err != nil {
		consumer.log.Error("park return command", zap.String("barcode", cmd.Barcode), zap.Error(err))
		return multierr.Append(fault, err)
	}
	consumer.log.Warn("return command parked",
		zap.String("barcode", cmd.Barcode), zap.Int32("partition", message.Partition), zap.Int64("offset", message.Offset))
	return nil
}
