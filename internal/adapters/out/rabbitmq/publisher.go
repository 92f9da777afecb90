package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hvacops/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeKind = "topic"

// StatusChangedMessage is the JSON body of an order status event. Previous
// fields are empty for a newly created order.
type StatusChangedMessage struct {
	OrderID          string    `json:"order_id"`
	Affiliate        string    `json:"affiliate"`
	PreviousKanban   string    `json:"previous_kanban,omitempty"`
	CurrentKanban    string    `json:"current_kanban"`
	PreviousDelivery *string   `json:"previous_delivery,omitempty"`
	CurrentDelivery  *string   `json:"current_delivery,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Publisher sends StatusChanged events as persistent JSON messages with
// routing key order.status.<kanban status>.
type Publisher struct {
	conn     ChannelOpener
	exchange string
	logger   *zap.Logger
}

func NewPublisher(conn ChannelOpener, exchange string, logger *zap.Logger) *Publisher {
	return &Publisher{
		conn:     conn,
		exchange: exchange,
		logger:   logger.With(zap.String("component", "rabbitmq_publisher")),
	}
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(newStatusChangedMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	routingKey := RoutingKey(event)
	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.OrderID.String() + "/" + event.OccurredAt.Format(time.RFC3339Nano),
		Timestamp:    event.OccurredAt,
		Type:         "order.status_changed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Status change published",
		zap.Stringer("order_id", event.OrderID),
		zap.String("routing_key", routingKey),
	)
	return nil
}

// RoutingKey is order.status.<current kanban status>.
func RoutingKey(event order.StatusChanged) string {
	return "order.status." + string(event.Current.Kanban)
}

func newStatusChangedMessage(event order.StatusChanged) StatusChangedMessage {
	return StatusChangedMessage{
		OrderID:          event.OrderID.String(),
		Affiliate:        event.Affiliate,
		PreviousKanban:   string(event.Previous.Kanban),
		CurrentKanban:    string(event.Current.Kanban),
		PreviousDelivery: deliveryString(event.Previous.Delivery),
		CurrentDelivery:  deliveryString(event.Current.Delivery),
		OccurredAt:       event.OccurredAt,
	}
}

func deliveryString(ds *order.DeliveryStatus) *string {
	if ds == nil {
		return nil
	}
	s := string(*ds)
	return &s
}

// NopPublisher drops events. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, order.StatusChanged) error {
	return nil
}
