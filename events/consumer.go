package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// NotificationHandler procesa un evento de reserva y genera
// las notificaciones correspondientes
type NotificationHandler interface {
	HandleReservationEvent(event ReservationEvent) error
}

// NotificationConsumer consume eventos de reservas de RabbitMQ
// y los convierte en notificaciones in-app
type NotificationConsumer struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	handler    NotificationHandler
}

// NewNotificationConsumer crea una nueva instancia del consumidor
func NewNotificationConsumer(rabbitURL, queueName string, handler NotificationHandler) (*NotificationConsumer, error) {
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

	return &NotificationConsumer{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		handler:    handler,
	}, nil
}

// Start inicia el consumo de mensajes
func (c *NotificationConsumer) Start() error {
	log.Printf("Starting notification consumer for queue '%s'", c.queueName)

	// Procesar un mensaje a la vez
	err := c.channel.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (manejamos manualmente)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.processMessage(msg)
		}
	}()

	return nil
}

// processMessage procesa un mensaje individual
func (c *NotificationConsumer) processMessage(msg amqp.Delivery) {
	var event ReservationEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Error unmarshaling event: %v", err)
		// Rechazar sin requeue si el formato es inválido
		msg.Nack(false, false)
		return
	}

	if event.Reference == "" || event.Action == "" {
		log.Printf("Error: invalid reservation event: %s", string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := c.handler.HandleReservationEvent(event); err != nil {
		log.Printf("Error processing event (Action=%s, Reference=%s): %v", event.Action, event.Reference, err)
		// Rechazar con requeue para reintentar
		msg.Nack(false, true)
		return
	}

	if err := msg.Ack(false); err != nil {
		log.Printf("Error acknowledging message: %v", err)
	}
}

// Close cierra las conexiones de RabbitMQ
func (c *NotificationConsumer) Close() error {
	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}
	if c.connection != nil {
		if err := c.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing notification consumer: %v", errs)
	}
	return nil
}
