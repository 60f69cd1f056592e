// Package notify carries order confirmations to the mail worker queue.
// Delivery is best effort: a failed publish is the caller's to log, never
// to propagate.
package notify

import (
	"context"

	"glory-event-api/internal/infra/rabbitmq"
)

type OrderConfirmation struct {
	RecipientEmail string `json:"recipient_email"`
	OrderID        uint64 `json:"order_id"`
}

type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, c OrderConfirmation) error
}

// QueueNotifier publishes confirmations to the order exchange.
type QueueNotifier struct {
	publisher  rabbitmq.PublisherInterface
	routingKey string
}

func NewQueueNotifier(p rabbitmq.PublisherInterface, routingKey string) *QueueNotifier {
	return &QueueNotifier{publisher: p, routingKey: routingKey}
}

func (n *QueueNotifier) NotifyOrderConfirmed(ctx context.Context, c OrderConfirmation) error {
	return n.publisher.Publish(ctx, n.routingKey, c)
}

var _ Notifier = (*QueueNotifier)(nil)
