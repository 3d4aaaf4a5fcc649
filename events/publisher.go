package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// ReservationEvent representa un evento del ciclo de vida de una reserva
type ReservationEvent struct {
	Action       string `json:"action"` // "created", "confirmed", "cancelled", "checked_in", "checked_out"
	Reference    string `json:"reference"`
	GuestID      uint   `json:"guest_id"`
	OwnerID      uint   `json:"owner_id"`
	PropertyName string `json:"property_name"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

// Publisher publica eventos de reservas en RabbitMQ
type Publisher interface {
	PublishReservationEvent(event ReservationEvent) error
	Close() error
}

type rabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher conecta con RabbitMQ y declara la queue durable
func NewRabbitMQPublisher(rabbitURL, queueName string) (Publisher, error) {
	log.Printf("Connecting to RabbitMQ at %s", rabbitURL)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("Queue '%s' declared successfully", queueName)

	return &rabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishReservationEvent serializa el evento y lo publica como
// mensaje persistente
func (p *rabbitMQPublisher) PublishReservationEvent(event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Printf("Published reservation event: Action=%s, Reference=%s", event.Action, event.Reference)
	return nil
}

// Close cierra las conexiones de RabbitMQ
func (p *rabbitMQPublisher) Close() error {
	var errs []error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ publisher: %v", errs)
	}
	return nil
}
