package bell

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of an amqp091 channel the notifier needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQNotifier struct {
	Channel Publisher
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQNotifier opens a channel on conn and declares the durable queue.
func NewRabbitMQNotifier(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.BellNotifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return NewPublisherNotifier(channel, queue, logger), nil
}

func NewPublisherNotifier(publisher Publisher, queue string, logger *zap.Logger) contracts.BellNotifier {
	return &rabbitMQNotifier{
		Channel: publisher,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *rabbitMQNotifier) Notify(ctx context.Context, event models.BellEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("rabbitMQNotifier.Notify error marshaling JSON",
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		Timestamp:    event.OccurredAt,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("rabbitMQNotifier.Notify error publishing message",
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("rabbitMQNotifier.Notify succeeded",
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
		zap.String(constvars.LoggingStatusKindKey, string(event.Kind)),
		zap.String(constvars.LoggingPreviousKindKey, string(event.PreviousKind)),
	)
	return nil
}

type logNotifier struct {
	Log *zap.Logger
}

// NewLogNotifier only records transitions in the log.
func NewLogNotifier(logger *zap.Logger) contracts.BellNotifier {
	return &logNotifier{Log: logger}
}

func (s *logNotifier) Notify(ctx context.Context, event models.BellEvent) error {
	s.Log.Info("bell transition",
		zap.String(constvars.LoggingStatusKindKey, string(event.Kind)),
		zap.String(constvars.LoggingPreviousKindKey, string(event.PreviousKind)),
		zap.Int(constvars.LoggingLessonNumberKey, event.LessonNumber),
		zap.String(constvars.LoggingCountdownKey, event.Countdown),
	)
	return nil
}
