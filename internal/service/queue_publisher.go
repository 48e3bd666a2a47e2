// Package queue_publisher publishes domain events to RabbitMQ.  The
// broker is optional infrastructure: with no URL configured publishing
// is a silent no-op, and every failure is logged and returned without
// ever interrupting the booking flow that triggered it.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/event-ticketing/internal/queue"
)

// queueName is the durable queue booking events land on.
const queueName = "booking.created"

// brokerURL reads the broker address; empty means publishing is off.
func brokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue.  Messages are persistent and the queue is
// declared idempotently.  The function never panics; callers may
// ignore the returned error.
func PublishBookingCreated(ctx context.Context, event q.BookingCreatedEvent) error {
	url := brokerURL()
	if url == "" {
		return nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
