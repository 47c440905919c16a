package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	EventBookingCreated           = "booking.created"
	EventBookingStatusUpdated     = "booking.status_updated"
	EventRoomServiceOrderCreated  = "roomservice.order_created"
	EventRoomServiceStatusUpdated = "roomservice.order_status_updated"
	EventComplaintCreated         = "complaint.created"
)

const (
	writerBatchTimeout   = 10 * time.Millisecond
	otelAttrTopic        = "kafka.topic"
	otelAttrMessageCount = "kafka.message_count"
)

// Event is the envelope written to every topic.
type Event struct {
	Name       string    `json:"event"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func NewEvent(name string, id int64, payload any) Event {
	return Event{
		Name:       name,
		ID:         id,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}

func (e *Event) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal event to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(e.ID, 10)),
		Value: jsonValue,
		Headers: []kafkaGo.Header{
			{Key: "event", Value: []byte(e.Name)},
		},
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, topic string, events ...Event) (err error)
	Close() error
}

type kafkaPublisher struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

type noopPublisher struct{}

// New returns a Kafka backed publisher, or a no-op one when no broker is configured.
func New(config *config.Config, otel otel.Otel) Publisher {
	if len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka brokers not configured, domain events are disabled")

		return &noopPublisher{}
	}

	transport := &kafkaGo.Transport{}

	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           writerBatchTimeout,
		RequiredAcks:           kafkaGo.RequireOne,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka publisher initialized")

	return &kafkaPublisher{
		writer: writer,
		otel:   otel,
	}
}

func (k *kafkaPublisher) Publish(ctx context.Context, topic string, events ...Event) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrTopic:        topic,
		otelAttrMessageCount: len(events),
	})

	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert event to Kafka message.")

			return fmt.Errorf("failed to convert event to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

func (n *noopPublisher) Publish(_ context.Context, topic string, events ...Event) error {
	log.Debug().Str("topic", topic).Int("count", len(events)).Msg("Kafka disabled, dropping events")

	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}

// PublishAsync publishes in the background, detached from the request lifetime.
func PublishAsync(ctx context.Context, publisher Publisher, topic string, events ...Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, topic, events...); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish domain event")
		}
	}()
}
