package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	pickupExpirationExchange   = "rental_pickup_expiration_exchange"
	pickupExpirationQueue      = "rental_pickup_expiration_queue"
	pickupExpirationRoutingKey = "rental_pickup_expiration"

	billingEventsExchange = "billing_events_exchange"
	planChangedRoutingKey = "subscription.plan_changed"
)

// EventPublisher is what the application layer publishes through.
type EventPublisher interface {
	PublishPickupExpiration(msg PickupExpirationMessage) error
	PublishPlanChanged(msg PlanChangedMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

// PickupExpirationMessage is delivered once a reservation's pickup grace period is over.
type PickupExpirationMessage struct {
	OrderID    uint64    `json:"order_id"`
	MerchantID uint64    `json:"merchant_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type PlanChangedMessage struct {
	EventID          string    `json:"event_id"`
	SubscriptionID   uint64    `json:"subscription_id"`
	MerchantID       uint64    `json:"merchant_id"`
	PreviousPlanID   uint64    `json:"previous_plan_id"`
	PlanID           uint64    `json:"plan_id"`
	ChargeAmount     int64     `json:"charge_amount"`
	Currency         string    `json:"currency"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	EffectiveDate    time.Time `json:"effective_date"`
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declarePickupExpiration sets up the delayed exchange and its queue.
func declarePickupExpiration(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		pickupExpirationExchange, // name
		"x-delayed-message",      // type
		true,                     // durable
		false,                    // auto-delete
		false,                    // internal
		false,                    // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		pickupExpirationQueue, // name
		true,                  // durable
		false,                 // auto-delete
		false,                 // exclusive
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		pickupExpirationQueue,      // queue name
		pickupExpirationRoutingKey, // routing key
		pickupExpirationExchange,   // exchange
		false,                      // no-wait
		nil,                        // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declarePickupExpiration(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		billingEventsExchange, // name
		"topic",               // type
		true,                  // durable
		false,                 // auto-delete
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

func (p *Publisher) PublishPickupExpiration(msg PickupExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		pickupExpirationExchange,   // exchange
		pickupExpirationRoutingKey, // routing key
		false,                      // mandatory
		false,                      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, p.now()),
			},
		},
	)
}

func (p *Publisher) PublishPlanChanged(msg PlanChangedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		billingEventsExchange, // exchange
		planChangedRoutingKey, // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.EventID,
			Timestamp:    p.now(),
			Body:         body,
		},
	)
}

// delayMillis is the x-delay header value; past deadlines are delivered immediately.
func delayMillis(expiresAt, now time.Time) int64 {
	delay := expiresAt.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
