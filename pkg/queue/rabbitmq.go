package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/config"
	"vidstream/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ModerationExchange   = "moderation"
	ModerationQueueName  = "moderation_events"
	moderationRoutingKey = "moderation.#"

	EventStrikeIssued     = "strike_issued"
	EventUserBanned       = "user_banned"
	EventReportClosed     = "report_resolved"
	EventVideoDeactivated = "video_deactivated"
	EventVideoDemonetized = "video_demonetized"
)

// ErrUnprocessable marks an event that will never succeed. The consumer drops
// it instead of requeueing.
var ErrUnprocessable = errors.New("unprocessable event")

// ModerationEvent is published whenever a moderator changes data that the
// risk and credibility analytics read.
type ModerationEvent struct {
	Type         string    `json:"type"`
	ChannelID    string    `json:"channel_id,omitempty"`
	VideoID      string    `json:"video_id,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	ReportID     string    `json:"report_id,omitempty"`
	StrikeID     string    `json:"strike_id,omitempty"`
	TotalStrikes int64     `json:"total_strikes,omitempty"`
	ModeratorID  string    `json:"moderator_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RoutingKey is moderation.<type>.
func (e ModerationEvent) RoutingKey() string {
	return "moderation." + e.Type
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ModerationExchange, // name
		"topic",            // type
		true,               // durable
		false,              // auto-deleted
		false,              // internal
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		ModerationQueueName, // name
		true,                // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		ModerationQueueName,
		moderationRoutingKey,
		ModerationExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// EncodeModerationEvent builds the persistent AMQP message for event.
func EncodeModerationEvent(event ModerationEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
	}, nil
}

func (c *Client) PublishModerationEvent(ctx context.Context, event ModerationEvent) error {
	msg, err := EncodeModerationEvent(event)
	if err != nil {
		return err
	}

	routingKey := event.RoutingKey()
	if err := c.channel.PublishWithContext(ctx, ModerationExchange, routingKey, false, false, msg); err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", ModerationExchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published %s to exchange=%s, routing_key=%s", event.Type, ModerationExchange, routingKey)
	return nil
}

// DecodeModerationEvent parses a delivery body. Events without a type are
// rejected.
func DecodeModerationEvent(body []byte) (ModerationEvent, error) {
	var event ModerationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return ModerationEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Type == "" {
		return ModerationEvent{}, fmt.Errorf("event has no type: %w", ErrUnprocessable)
	}
	return event, nil
}

// ConsumeModerationEvents delivers queued events to handler until ctx is
// cancelled or the channel closes. Deliveries are acked after handler
// succeeds, dropped when they cannot be decoded or the handler returns
// ErrUnprocessable, and requeued on any other handler error.
func (c *Client) ConsumeModerationEvents(ctx context.Context, handler func(context.Context, ModerationEvent) error) error {
	msgs, err := c.channel.Consume(
		ModerationQueueName, // queue
		"",                  // consumer
		false,               // auto-ack
		false,               // exclusive
		false,               // no-local
		false,               // no-wait
		nil,                 // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", ModerationQueueName)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("[RABBITMQ] Delivery channel for %s closed", ModerationQueueName)
					return
				}
				c.deliver(ctx, msg, handler)
			}
		}
	}()

	return nil
}

func (c *Client) deliver(ctx context.Context, msg amqp.Delivery, handler func(context.Context, ModerationEvent) error) {
	event, err := DecodeModerationEvent(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping undecodable message: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(ctx, event); err != nil {
		requeue := !errors.Is(err, ErrUnprocessable)
		c.logger.Error("[RABBITMQ] Handler failed for %s (requeue=%t): %v", event.Type, requeue, err)
		msg.Nack(false, requeue)
		return
	}

	msg.Ack(false)
}
