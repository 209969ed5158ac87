/**
 * @description
 * This package models the SMS "delivery" capability as a notification sink.
 * The core service only builds the message and hands it to a Notifier; it
 * never depends on delivery succeeding. Two sinks exist: a log-backed one
 * that simulates delivery on the console, and an AMQP-backed one that
 * publishes the event to a topic exchange for downstream consumers.
 *
 * @dependencies
 * - context, log: Standard Go libraries.
 * - internal/domain: The SMS event envelope.
 * - pkg/rabbitmq: AMQP event producer.
 */
package notify

import (
	"context"
	"log"

	"github.com/Billal143-hu/mtn-momo-api/internal/domain"
	"github.com/Billal143-hu/mtn-momo-api/pkg/rabbitmq"
)

// Notifier is a sink for simulated SMS notifications.
type Notifier interface {
	Notify(ctx context.Context, sms domain.SMSNotification) error
}

// LogNotifier simulates SMS delivery by writing the message to the log.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notification sink.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify writes the SMS to the process log. It never fails.
func (n *LogNotifier) Notify(ctx context.Context, sms domain.SMSNotification) error {
	log.Printf("level=info component=notify msg=\"SMS sent\" phone=%s event_id=%s sms=%q", sms.Phone, sms.EventID, sms.Message)
	return nil
}

// EventNotifier publishes SMS events to RabbitMQ so other systems can react
// to them (delivery itself stays simulated).
type EventNotifier struct {
	producer   *rabbitmq.EventProducer
	routingKey string
}

// NewEventNotifier creates an AMQP-backed notification sink.
func NewEventNotifier(producer *rabbitmq.EventProducer, routingKey string) *EventNotifier {
	return &EventNotifier{producer: producer, routingKey: routingKey}
}

// Notify publishes the SMS event with the configured routing key.
func (n *EventNotifier) Notify(ctx context.Context, sms domain.SMSNotification) error {
	return n.producer.Publish(ctx, n.routingKey, sms)
}
